package controllers

import (
	"context"
	"net/http"
	"time"

	"driveport/models"
	"driveport/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

type ProfileController struct {
	RDB *redis.Client
}

func NewProfileController(rdb *redis.Client) *ProfileController {
	return &ProfileController{RDB: rdb}
}

// GET /user/profile
func (pc *ProfileController) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}
	userIDInt, ok := userID.(int)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read user ID"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, uint(userIDInt)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"result": gin.H{
			"id":      user.ID,
			"email":   user.Email,
			"phone":   user.Phone,
			"name":    user.Name,
			"address": user.Address,
			"role":    user.Role,
		},
	})
}

type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// PUT /user/profile
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}
	userIDInt := userID.(int)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, uint(userIDInt)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if req.Name != "" {
		user.Name = &req.Name
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}
	if req.Address != "" {
		user.Address = &req.Address
	}
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated"})
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// POST /user/change-password
func (pc *ProfileController) ChangePassword(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized"})
		return
	}
	userIDInt := userID.(int)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "old_password and new_password are required"})
		return
	}

	db := utils.GetDB()
	var user models.User
	if err := db.First(&user, uint(userIDInt)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if !utils.CheckPasswordHash(req.OldPassword, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect password"})
		return
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}
	user.Password = hash
	if err := db.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed"})
}

// POST /user/logout blacklists the current token until it would have expired
func (pc *ProfileController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if len(header) <= len("Bearer ") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing token"})
		return
	}
	token := header[len("Bearer "):]

	ctx := context.Background()
	pc.RDB.Set(ctx, "blacklist:"+token, "1", 72*time.Hour)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logged out"})
}
