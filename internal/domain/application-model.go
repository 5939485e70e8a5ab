package domain

import "time"

// Application is a public job application. Rows are created by the apply
// endpoint only and never mutated afterwards.
type Application struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	JobID       uint      `gorm:"not null;index" json:"job_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone       string    `gorm:"type:varchar(20);not null" json:"phone"`
	CV          string    `gorm:"type:varchar(512);not null" json:"cv"` // stored file reference, not the binary
	CoverLetter *string   `gorm:"type:text" json:"cover_letter,omitempty"`
	AppliedAt   time.Time `gorm:"autoCreateTime" json:"applied_at"`
}
