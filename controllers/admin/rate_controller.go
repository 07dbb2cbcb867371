package admin

import (
	"net/http"
	"strconv"

	"driveport/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RateController manages the interest rate table. Activating a rate
// deactivates any other active rate for the same duration in the same
// transaction, so at most one rate per term is ever live.
type RateController struct {
	db *gorm.DB
}

func NewRateController(db *gorm.DB) *RateController {
	return &RateController{db: db}
}

// GetRates lists every rate, active and inactive
// GET /admin/rates
func (rc *RateController) GetRates(c *gin.Context) {
	var rates []models.InterestRate
	if err := rc.db.Order("duration_years ASC, is_active DESC, updated_at DESC").Find(&rates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rates"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": rates, "success": true})
}

// CreateRate adds a rate for a term
// POST /admin/rates
func (rc *RateController) CreateRate(c *gin.Context) {
	var req models.InterestRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	rate := models.InterestRate{
		DurationYears: req.DurationYears,
		RatePercent:   req.RatePercent,
		IsActive:      active,
	}

	err := rc.db.Transaction(func(tx *gorm.DB) error {
		if active {
			if err := tx.Model(&models.InterestRate{}).
				Where("duration_years = ? AND is_active = ?", req.DurationYears, true).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(&rate).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create rate"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": rate, "success": true, "message": "Rate created"})
}

// UpdateRate changes a rate's value or activation
// PUT /admin/rates/:id
func (rc *RateController) UpdateRate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rate id"})
		return
	}

	var req models.InterestRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	var rate models.InterestRate
	if err := rc.db.First(&rate, uint(id)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch rate"})
		}
		return
	}

	rate.DurationYears = req.DurationYears
	rate.RatePercent = req.RatePercent
	if req.IsActive != nil {
		rate.IsActive = *req.IsActive
	}

	err = rc.db.Transaction(func(tx *gorm.DB) error {
		if rate.IsActive {
			if err := tx.Model(&models.InterestRate{}).
				Where("duration_years = ? AND is_active = ? AND id != ?", rate.DurationYears, true, rate.ID).
				Update("is_active", false).Error; err != nil {
				return err
			}
		}
		return tx.Save(&rate).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update rate"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": rate, "success": true, "message": "Rate updated"})
}

// DeleteRate removes a rate. An in-flight order keeps its own PaymentPlan
// snapshot, so deleting a rate never touches existing plans.
// DELETE /admin/rates/:id
func (rc *RateController) DeleteRate(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rate id"})
		return
	}

	result := rc.db.Delete(&models.InterestRate{}, uint(id))
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete rate"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rate not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}, "success": true, "message": "Rate deleted"})
}
