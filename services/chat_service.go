package services

import (
	"gorm.io/gorm"

	"github.com/venuehub/backend/models"
)

// ChatService backs the relay with the persisted side of chat rooms:
// membership checks before a connection may join, the message log, and
// the room snapshot rendered by the chat page.
type ChatService struct {
	DB *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{DB: db}
}

// RoomForUser returns the room whose member set contains the user,
// with members and the most recent messages preloaded. This is the
// persisted snapshot; it says nothing about who is connected right now.
func (s *ChatService) RoomForUser(userID uint) (*models.ChatRoom, error) {
	var room models.ChatRoom
	err := s.DB.
		Joins("JOIN chat_room_members m ON m.chat_room_id = chat_rooms.id").
		Where("m.user_id = ?", userID).
		Preload("Members").
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC").Limit(50)
		}).
		First(&room).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// CanAccess reports whether the user is in the room's persisted member
// set. The relay checks this before subscribing a connection.
func (s *ChatService) CanAccess(userID, roomID uint) (bool, error) {
	var count int64
	err := s.DB.Table("chat_room_members").
		Where("chat_room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error
	return count > 0, err
}

// SaveMessage appends to the room's message log.
func (s *ChatService) SaveMessage(roomID, senderID uint, body string) (*models.ChatMessage, error) {
	msg := &models.ChatMessage{
		RoomID:   roomID,
		SenderID: senderID,
		Body:     body,
	}
	if err := s.DB.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}
