package models

import "time"

type Restaurant struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(255);not null" json:"name"`
	// Short human-shareable code employees use to register against the
	// right restaurant. Unique across all restaurants.
	VenueCode   string    `gorm:"type:varchar(8);uniqueIndex;not null" json:"venue_code"`
	Email       string    `gorm:"type:varchar(255);not null" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(50)" json:"phone_number"`
	Status      string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
