package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venuehub/backend/services"
	"github.com/venuehub/backend/utils"
)

type ChatController struct {
	Chat *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{Chat: svc}
}

// Room returns the persisted snapshot of the session user's chat room:
// member list and recent messages. Live connections are a separate
// concern handled by the websocket hub.
func (cc *ChatController) Room(c *gin.Context) {
	userID := c.GetUint("user_id")

	room, err := cc.Chat.RoomForUser(userID)
	if err != nil {
		if errors.Is(err, services.ErrRoomNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Chat room", room)
}
