package domain

type Service struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Description string `gorm:"type:text;not null" json:"description"`
	Icon        string `gorm:"type:varchar(100)" json:"icon"` // FontAwesome/Bootstrap icon class
}
