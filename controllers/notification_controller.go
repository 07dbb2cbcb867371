package controllers

import (
	"net/http"
	"strconv"

	"driveport/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NotificationController serves the in-app notification feed.
type NotificationController struct {
	db *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{db: db}
}

// GetNotifications lists the caller's notifications, unread first
// GET /notifications
func (nc *NotificationController) GetNotifications(c *gin.Context) {
	userID := c.GetInt("user_id")

	query := nc.db.Where("user_id = ?", userID)
	if c.Query("unread") == "true" {
		query = query.Where("read = ?", false)
	}

	var notifications []models.Notification
	if err := query.Order("read ASC, created_at DESC").Limit(100).Find(&notifications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
		return
	}

	var unread int64
	nc.db.Model(&models.Notification{}).Where("user_id = ? AND read = ?", userID, false).Count(&unread)

	c.JSON(http.StatusOK, gin.H{
		"result":  gin.H{"notifications": notifications, "unread_count": unread},
		"success": true,
	})
}

// MarkRead marks one notification as read
// PATCH /notifications/:id/read
func (nc *NotificationController) MarkRead(c *gin.Context) {
	userID := c.GetInt("user_id")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification id"})
		return
	}

	result := nc.db.Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).Update("read", true)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id, "read": true}, "success": true})
}

// MarkAllRead marks every notification of the caller as read
// POST /notifications/read-all
func (nc *NotificationController) MarkAllRead(c *gin.Context) {
	userID := c.GetInt("user_id")

	if err := nc.db.Model(&models.Notification{}).
		Where("user_id = ? AND read = ?", userID, false).Update("read", true).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "All notifications marked as read"})
}
