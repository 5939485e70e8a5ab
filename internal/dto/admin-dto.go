package dto

// Back-office CRUD payloads. These are validated with validator/v10; the
// public form endpoints keep their own plain required-field checks.

type AboutUpsertRequest struct {
	Title                string `json:"title" validate:"required"`
	Description          string `json:"description" validate:"required"`
	CompaniesServed      uint   `json:"companies_served"`
	SuccessfulPlacements uint   `json:"successful_placements"`
	CountriesCovered     uint   `json:"countries_covered"`
	ClientSatisfaction   uint   `json:"client_satisfaction" validate:"lte=100"`
}

type ServiceRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Icon        string `json:"icon"`
}

type JobRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	Location    string  `json:"location" validate:"required"`
	JobType     string  `json:"job_type" validate:"omitempty,oneof=full_time part_time contract"`
	WorkScope   string  `json:"work_scope" validate:"omitempty,oneof=inside_country outside_country remote"`
	SalaryRange *string `json:"salary_range,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

type OfficeRequest struct {
	Country       string `json:"country" validate:"required"`
	City          string `json:"city" validate:"required"`
	Address       string `json:"address" validate:"required"`
	WorkingHours  string `json:"working_hours"`
	Phone         string `json:"phone"`
	Email         string `json:"email" validate:"omitempty,email"`
	GoogleMapLink string `json:"google_map_link" validate:"omitempty,url"`
}

type BlogPostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Author  string `json:"author"`
}

type BlogVideoRequest struct {
	VideoURL *string `json:"video_url" validate:"omitempty,url"`
	Caption  *string `json:"caption,omitempty"`
}
