package controllers

import (
	"fmt"
	"net/http"
	"time"

	"driveport/models"
	"driveport/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ShippingController tracks delivery of purchased cars.
type ShippingController struct {
	db *gorm.DB
}

func NewShippingController(db *gorm.DB) *ShippingController {
	return &ShippingController{db: db}
}

var shippingStatuses = map[string]bool{
	"preparing":  true,
	"in-transit": true,
	"customs":    true,
	"delivered":  true,
}

// GetShipping returns the shipping record for an order
// GET /orders/:ref/shipping
func (sc *ShippingController) GetShipping(c *gin.Context) {
	userID := c.GetInt("user_id")
	ref := c.Param("ref")

	var order models.Order
	if err := sc.db.Where("order_ref = ?", ref).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if order.UserID != uint(userID) && c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	var shipping models.Shipping
	if err := sc.db.Where("order_ref = ?", ref).First(&shipping).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No shipping information yet"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": shipping, "success": true})
}

// UpdateShipping creates or updates the shipping record for an order (admin)
// PUT /admin/orders/:ref/shipping
func (sc *ShippingController) UpdateShipping(c *gin.Context) {
	ref := c.Param("ref")

	var req models.ShippingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	if !shippingStatuses[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown shipping status"})
		return
	}

	var order models.Order
	if err := sc.db.Where("order_ref = ?", ref).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	var eta *time.Time
	if req.ETA != "" {
		parsed, err := time.Parse("2006-01-02", req.ETA)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "eta must be YYYY-MM-DD"})
			return
		}
		eta = &parsed
	}

	var shipping models.Shipping
	err := sc.db.Where("order_ref = ?", ref).First(&shipping).Error
	if err != nil && err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch shipping"})
		return
	}

	shipping.OrderRef = ref
	shipping.Status = req.Status
	if req.Carrier != "" {
		shipping.Carrier = req.Carrier
	}
	if req.TrackingNumber != "" {
		shipping.TrackingNumber = req.TrackingNumber
	}
	if eta != nil {
		shipping.ETA = eta
	}
	if req.Notes != "" {
		shipping.Notes = req.Notes
	}

	if err := sc.db.Save(&shipping).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save shipping"})
		return
	}

	if req.Status == "delivered" {
		sc.db.Model(&order).Update("status", "delivered")
		sc.db.Model(&models.Car{}).Where("id = ?", order.CarID).Update("status", "sold")
	} else if order.Status == "paid" || order.Status == "processing" {
		sc.db.Model(&order).Update("status", "shipped")
	}

	services.Notify(sc.db, order.UserID, "Shipping update",
		fmt.Sprintf("Your order %s is now %s.", ref, req.Status), "shipping")

	c.JSON(http.StatusOK, gin.H{"result": shipping, "success": true, "message": "Shipping updated"})
}
