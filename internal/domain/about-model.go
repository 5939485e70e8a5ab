package domain

import "time"

// AboutUsID is the fixed primary key of the single AboutUs row.
// The repository upserts against this id so a second row can never appear.
const AboutUsID uint = 1

type AboutUs struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null;default:'About Our Company'" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`

	CompaniesServed      uint `gorm:"default:0" json:"companies_served"`
	SuccessfulPlacements uint `gorm:"default:0" json:"successful_placements"`
	CountriesCovered     uint `gorm:"default:0" json:"countries_covered"`
	ClientSatisfaction   uint `gorm:"default:0" json:"client_satisfaction"` // percentage 0-100

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (AboutUs) TableName() string {
	return "about_us"
}
