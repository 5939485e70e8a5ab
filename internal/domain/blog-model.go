package domain

import "time"

type BlogPost struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	Author    string    `gorm:"type:varchar(255);not null;default:Admin" json:"author"`
	MainImage *string   `gorm:"type:varchar(512)" json:"main_image,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	Images []BlogImage `gorm:"constraint:OnDelete:CASCADE" json:"images,omitempty"`
	Videos []BlogVideo `gorm:"constraint:OnDelete:CASCADE" json:"videos,omitempty"`
}

type BlogImage struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	BlogPostID uint    `gorm:"not null;index" json:"post_id"`
	Image      string  `gorm:"type:varchar(512);not null" json:"image"`
	Caption    *string `gorm:"type:varchar(255)" json:"caption,omitempty"`
}

type BlogVideo struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	BlogPostID uint    `gorm:"not null;index" json:"post_id"`
	VideoURL   *string `gorm:"type:varchar(512)" json:"video_url,omitempty"` // e.g. YouTube link
	Caption    *string `gorm:"type:varchar(255)" json:"caption,omitempty"`
}
