package controllers

import (
	"net/http"
	"strconv"

	"driveport/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// FavoriteController manages the user's saved cars.
type FavoriteController struct {
	db *gorm.DB
}

func NewFavoriteController(db *gorm.DB) *FavoriteController {
	return &FavoriteController{db: db}
}

// AddFavorite saves a car to the wishlist
// POST /favorites/:carId
func (fc *FavoriteController) AddFavorite(c *gin.Context) {
	userID := c.GetInt("user_id")
	carID, err := strconv.ParseUint(c.Param("carId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid car id"})
		return
	}

	var car models.Car
	if err := fc.db.First(&car, uint(carID)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		return
	}

	var existing models.Favorite
	if err := fc.db.Where("user_id = ? AND car_id = ?", userID, carID).First(&existing).Error; err == nil {
		c.JSON(http.StatusOK, gin.H{"result": existing, "success": true, "message": "Already in favorites"})
		return
	}

	favorite := models.Favorite{UserID: uint(userID), CarID: uint(carID)}
	if err := fc.db.Create(&favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add favorite"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": favorite, "success": true, "message": "Added to favorites"})
}

// RemoveFavorite removes a car from the wishlist
// DELETE /favorites/:carId
func (fc *FavoriteController) RemoveFavorite(c *gin.Context) {
	userID := c.GetInt("user_id")
	carID, err := strconv.ParseUint(c.Param("carId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid car id"})
		return
	}

	result := fc.db.Where("user_id = ? AND car_id = ?", userID, carID).Delete(&models.Favorite{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove favorite"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Favorite not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"car_id": carID}, "success": true, "message": "Removed from favorites"})
}

// GetFavorites lists the caller's saved cars
// GET /favorites
func (fc *FavoriteController) GetFavorites(c *gin.Context) {
	userID := c.GetInt("user_id")

	var favorites []models.Favorite
	if err := fc.db.Preload("Car").Where("user_id = ?", userID).
		Order("created_at DESC").Find(&favorites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch favorites"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": favorites, "success": true})
}
