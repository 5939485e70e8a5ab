package domain

import "time"

const (
	JobTypeFullTime = "full_time"
	JobTypePartTime = "part_time"
	JobTypeContract = "contract"
)

const (
	WorkScopeInsideCountry  = "inside_country"
	WorkScopeOutsideCountry = "outside_country"
	WorkScopeRemote         = "remote"
)

type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Location    string    `gorm:"type:varchar(255);not null" json:"location"`
	JobType     string    `gorm:"type:varchar(20);not null;default:full_time" json:"job_type"`
	WorkScope   string    `gorm:"type:varchar(20);not null;default:inside_country" json:"work_scope"`
	SalaryRange *string   `gorm:"type:varchar(100)" json:"salary_range,omitempty"`
	PostedAt    time.Time `gorm:"autoCreateTime" json:"posted_at"`
	IsActive    bool      `gorm:"not null;default:true" json:"is_active"`

	Applications []Application `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

func ValidJobType(t string) bool {
	return t == JobTypeFullTime || t == JobTypePartTime || t == JobTypeContract
}

func ValidWorkScope(s string) bool {
	return s == WorkScopeInsideCountry || s == WorkScopeOutsideCountry || s == WorkScopeRemote
}
