package models

import "time"

// Notification types produced by the approval workflow.
const (
	NotifApprovalRequest = "employee_approval_request"
	NotifApprovalGranted = "approval_granted"
)

type Notification struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	UserID  uint   `gorm:"index;not null" json:"user_id"`
	User    User   `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Type    string `gorm:"type:varchar(50);not null" json:"type"`
	Message string `gorm:"type:text;not null" json:"message"`
	// Set on approval requests so the owner can act on the right account.
	EmployeeEmail *string   `gorm:"type:varchar(255)" json:"employee_email,omitempty"`
	IsRead        bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}
