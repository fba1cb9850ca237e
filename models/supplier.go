package models

import "time"

type Supplier struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	Email       string    `gorm:"type:varchar(255)" json:"email"`
	PhoneNumber string    `gorm:"type:varchar(50)" json:"phone_number"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
}
