package models

import "time"

// ChatRoom is the per-restaurant channel. Exactly one room exists per
// restaurant; the owner is a member from creation and approved employees
// are added by the approval workflow.
type ChatRoom struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	RestaurantID   uint          `gorm:"uniqueIndex;not null" json:"restaurant_id"`
	Restaurant     Restaurant    `gorm:"foreignKey:RestaurantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	RestaurantName string        `gorm:"type:varchar(255);not null" json:"restaurant_name"`
	Members        []User        `gorm:"many2many:chat_room_members" json:"members"`
	Messages       []ChatMessage `gorm:"foreignKey:RoomID" json:"messages,omitempty"`
	CreatedAt      time.Time     `gorm:"not null" json:"created_at"`
}

type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"index;not null" json:"room_id"`
	SenderID  uint      `gorm:"index;not null" json:"sender_id"`
	Sender    User      `gorm:"foreignKey:SenderID;references:ID" json:"-"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
