package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/venuehub/backend/models"
	"github.com/venuehub/backend/utils"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// List returns the session user's notifications, newest first.
func (nc *NotificationController) List(c *gin.Context) {
	userID := c.GetUint("user_id")

	var notifs []models.Notification
	if err := nc.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&notifs).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notifications", notifs)
}

// MarkRead flips the read flag on one of the session user's
// notifications.
func (nc *NotificationController) MarkRead(c *gin.Context) {
	userID := c.GetUint("user_id")
	id, _ := strconv.Atoi(c.Param("id"))

	var notif models.Notification
	if err := nc.DB.Where("id = ? AND user_id = ?", id, userID).First(&notif).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}

	notif.IsRead = true
	if err := nc.DB.Save(&notif).Error; err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", notif)
}
