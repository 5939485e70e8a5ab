package domain

type Office struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Country       string `gorm:"type:varchar(255);not null;index" json:"country"`
	City          string `gorm:"type:varchar(255);not null" json:"city"`
	Address       string `gorm:"type:text;not null" json:"address"` // multi-line
	WorkingHours  string `gorm:"type:varchar(255)" json:"working_hours"`
	Phone         string `gorm:"type:varchar(20)" json:"phone"`
	Email         string `gorm:"type:varchar(255)" json:"email"`
	GoogleMapLink string `gorm:"type:varchar(512)" json:"google_map_link"`
}
