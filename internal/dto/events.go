package dto

// Events published to Kafka for the external notification service.

type ApplicationReceivedEvent struct {
	ApplicationID uint   `json:"application_id"`
	JobID         uint   `json:"job_id"`
	JobTitle      string `json:"job_title"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	AppliedAt     string `json:"applied_at"`
}

type InquiryReceivedEvent struct {
	InquiryID   uint   `json:"inquiry_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	SubmittedAt string `json:"submitted_at"`
}
