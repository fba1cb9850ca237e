package models

import "time"

// Account roles and statuses. An owner is created active; an employee
// starts pending and becomes active only through owner approval.
const (
	RoleOwner    = "owner"
	RoleEmployee = "employee"

	StatusActive   = "active"
	StatusPending  = "pending"
	StatusInactive = "inactive"
)

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	FirstName    string `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string `gorm:"type:varchar(100);not null" json:"last_name"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password     string `gorm:"type:varchar(255);not null" json:"-"`
	PhoneNumber  string `gorm:"type:varchar(50)" json:"phone_number"`
	Role         string `gorm:"type:varchar(20);not null" json:"role"`
	Status       string `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	RestaurantID *uint  `gorm:"index" json:"restaurant_id"`
	// Denormalized copy of the restaurant's venue code for convenience.
	VenueCode  string     `gorm:"type:varchar(8)" json:"venue_code"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	CreatedAt  time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"not null" json:"updated_at"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
