package domain

import "time"

// ContactInquiry is create-only from the public side. The back office can
// read inquiries but there is no mutation path after submission.
type ContactInquiry struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone       string    `gorm:"type:varchar(20)" json:"phone"`
	Message     string    `gorm:"type:text;not null" json:"message"`
	SubmittedAt time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}
