package controllers

import (
	"net/http"
	"strconv"

	"driveport/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AnalyticsController counts catalog views for the admin dashboard.
type AnalyticsController struct {
	db *gorm.DB
}

func NewAnalyticsController(db *gorm.DB) *AnalyticsController {
	return &AnalyticsController{db: db}
}

var viewSources = map[string]bool{
	"catalog": true,
	"search":  true,
	"direct":  true,
}

// TrackView increments the view counter for a car. Called by the frontend on
// detail-page open; no auth so anonymous traffic counts too.
// POST /analytics/view
func (ac *AnalyticsController) TrackView(c *gin.Context) {
	var req struct {
		CarID  uint   `json:"car_id" binding:"required"`
		Source string `json:"source"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}
	if !viewSources[req.Source] {
		req.Source = "direct"
	}

	var car models.Car
	if err := ac.db.Select("id").First(&car, req.CarID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		return
	}

	var view models.CarView
	err := ac.db.Where("car_id = ? AND source = ?", req.CarID, req.Source).First(&view).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		view = models.CarView{CarID: req.CarID, Source: req.Source, ViewCount: 1}
		if err := ac.db.Create(&view).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
			return
		}
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
		return
	default:
		if err := ac.db.Model(&view).Update("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record view"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetTopCars returns the most viewed cars (admin)
// GET /admin/analytics/top-cars
func (ac *AnalyticsController) GetTopCars(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if limit < 1 || limit > 50 {
		limit = 10
	}

	type topRow struct {
		CarID uint  `json:"car_id"`
		Views int64 `json:"views"`
	}
	var rows []topRow
	if err := ac.db.Model(&models.CarView{}).
		Select("car_id, SUM(view_count) as views").
		Group("car_id").Order("views DESC").Limit(limit).Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	ids := make([]uint, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.CarID)
	}
	carsByID := map[uint]models.Car{}
	if len(ids) > 0 {
		var cars []models.Car
		ac.db.Where("id IN ?", ids).Find(&cars)
		for _, car := range cars {
			carsByID[car.ID] = car
		}
	}

	result := make([]gin.H, 0, len(rows))
	for _, r := range rows {
		entry := gin.H{"car_id": r.CarID, "views": r.Views}
		if car, ok := carsByID[r.CarID]; ok {
			entry["car"] = car
		}
		result = append(result, entry)
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "success": true})
}

// GetViewsBySource breaks views down per traffic source (admin)
// GET /admin/analytics/sources
func (ac *AnalyticsController) GetViewsBySource(c *gin.Context) {
	type srcRow struct {
		Source string `json:"source"`
		Views  int64  `json:"views"`
	}
	var rows []srcRow
	if err := ac.db.Model(&models.CarView{}).
		Select("source, SUM(view_count) as views").
		Group("source").Order("views DESC").Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": rows, "success": true})
}
