package models

import "time"

// Post is an image-backed announcement; the file itself lives in object
// storage and only its URL is persisted.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	ImageURL  string    `gorm:"type:varchar(512)" json:"image_url"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
