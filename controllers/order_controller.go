package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"driveport/models"
	"driveport/services"
	"driveport/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderController handles checkout and order history. Installment orders
// create their PaymentPlan in the same transaction as the order itself.
type OrderController struct {
	db    *gorm.DB
	rates services.RateSource
}

func NewOrderController(db *gorm.DB, rates services.RateSource) *OrderController {
	return &OrderController{db: db, rates: rates}
}

func newOrderRef() string {
	return "DP-" + strings.ToUpper(uuid.New().String()[:8])
}

// CreateOrder places an order for a car
// POST /orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	userID := c.GetInt("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	if req.PaymentType != "full" && req.PaymentType != "installment" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_type must be full or installment"})
		return
	}
	if req.DownPayment < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "down payment cannot be negative"})
		return
	}

	var car models.Car
	if err := oc.db.First(&car, req.CarID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car"})
		}
		return
	}
	if car.Status != "available" {
		c.JSON(http.StatusConflict, gin.H{"error": "Car is not available"})
		return
	}

	order := models.Order{
		UserID:      uint(userID),
		OrderRef:    newOrderRef(),
		CarID:       car.ID,
		PaymentType: req.PaymentType,
		AmountUSD:   car.PriceUSD,
		DownPayment: req.DownPayment,
		Status:      "pending",
	}

	var plan *models.PaymentPlan
	if req.PaymentType == "installment" {
		if req.DurationYears <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "duration_years is required for installment orders"})
			return
		}
		if req.DownPayment >= car.PriceUSD {
			c.JSON(http.StatusBadRequest, gin.H{"error": "down payment must be less than the car price"})
			return
		}

		rate, err := oc.rates.ActiveRate(req.DurationYears)
		if err != nil {
			if errors.Is(err, services.ErrRateNotFound) {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Financing is currently unavailable for this term"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve interest rate"})
			return
		}

		result, err := services.ComputeAmortization(car.PriceUSD, rate, req.DurationYears, req.DownPayment)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		firstDue := utils.LagosTime().AddDate(0, 1, 0)
		plan = &models.PaymentPlan{
			OrderRef:       order.OrderRef,
			UserID:         uint(userID),
			Principal:      services.Round2(result.FinancedAmount),
			RatePercent:    rate,
			DurationYears:  req.DurationYears,
			MonthlyPayment: services.Round2(result.MonthlyPayment),
			TotalPayments:  result.TotalPayments,
			TotalAmount:    services.Round2(result.TotalAmount),
			TotalInterest:  services.Round2(result.TotalInterest),
			NextDueDate:    &firstDue,
			Status:         "active",
		}
	}

	err := oc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if plan != nil {
			if err := tx.Create(plan).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Car{}).Where("id = ?", car.ID).Update("status", "reserved").Error
	})
	if err != nil {
		utils.LogError(err, "create order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	services.Notify(oc.db, uint(userID), "Order placed",
		fmt.Sprintf("Your order %s for %s %s has been placed.", order.OrderRef, car.Brand, car.CarModel), "order")

	result := gin.H{"order": toOrderResponse(order)}
	if plan != nil {
		result["payment_plan"] = plan
	}
	c.JSON(http.StatusCreated, gin.H{"result": result, "success": true, "message": "Order created"})
}

// GetUserOrders returns the caller's order history with pagination
// GET /orders
func (oc *OrderController) GetUserOrders(c *gin.Context) {
	userID := c.GetInt("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	query := oc.db.Model(&models.Order{}).Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
		return
	}

	var orders []models.Order
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"result": models.OrderListResponse{
			Orders:     responses,
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
		},
		"success": true,
	})
}

// GetMyOrderStats returns the caller's order counters
// GET /orders/stats
func (oc *OrderController) GetMyOrderStats(c *gin.Context) {
	userID := c.GetInt("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := oc.db.Model(&models.Order{}).Where("user_id = ?", userID).
		Select("status, COUNT(*) as count").
		Group("status").Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	byStatus := gin.H{}
	var total int64
	for _, r := range rows {
		byStatus[r.Status] = r.Count
		total += r.Count
	}

	var spentUSD float64
	oc.db.Model(&models.Order{}).
		Where("user_id = ? AND status IN ?", userID, []string{"paid", "processing", "shipped", "delivered"}).
		Select("COALESCE(SUM(amount_usd), 0)").Scan(&spentUSD)

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"total":     total,
			"by_status": byStatus,
			"spent_usd": services.Round2(spentUSD),
		},
		"success": true,
	})
}

// GetOrder returns one order by reference, car included
// GET /orders/:ref
func (oc *OrderController) GetOrder(c *gin.Context) {
	userID := c.GetInt("user_id")
	ref := c.Param("ref")

	var order models.Order
	if err := oc.db.Preload("Car").Where("order_ref = ?", ref).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		}
		return
	}
	if order.UserID != uint(userID) && c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	result := gin.H{"order": order}

	if order.PaymentType == "installment" {
		var plan models.PaymentPlan
		if err := oc.db.Where("order_ref = ?", ref).First(&plan).Error; err == nil {
			result["payment_plan"] = plan
		}
	}
	var shipping models.Shipping
	if err := oc.db.Where("order_ref = ?", ref).First(&shipping).Error; err == nil {
		result["shipping"] = shipping
	}

	c.JSON(http.StatusOK, gin.H{"result": result, "success": true})
}

// CancelOrder cancels a pending order and releases the car
// POST /orders/:ref/cancel
func (oc *OrderController) CancelOrder(c *gin.Context) {
	userID := c.GetInt("user_id")
	ref := c.Param("ref")

	var order models.Order
	if err := oc.db.Where("order_ref = ? AND user_id = ?", ref, userID).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		}
		return
	}
	if order.Status != "pending" {
		c.JSON(http.StatusConflict, gin.H{"error": "Only pending orders can be cancelled"})
		return
	}

	err := oc.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&order).Update("status", "cancelled").Error; err != nil {
			return err
		}
		if order.PaymentType == "installment" {
			if err := tx.Model(&models.PaymentPlan{}).Where("order_ref = ?", ref).
				Update("status", "cancelled").Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Car{}).Where("id = ? AND status = ?", order.CarID, "reserved").
			Update("status", "available").Error
	})
	if err != nil {
		utils.LogError(err, "cancel order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"order_ref": ref, "status": "cancelled"}, "success": true, "message": "Order cancelled"})
}

// GetOrderStats returns aggregate order counters for the admin dashboard
// GET /admin/orders/stats
func (oc *OrderController) GetOrderStats(c *gin.Context) {
	type row struct {
		Status string
		Count  int64
	}
	var rows []row
	if err := oc.db.Model(&models.Order{}).
		Select("status, COUNT(*) as count").
		Group("status").Scan(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
		return
	}

	byStatus := gin.H{}
	var total int64
	for _, r := range rows {
		byStatus[r.Status] = r.Count
		total += r.Count
	}

	var revenueUSD float64
	oc.db.Model(&models.Order{}).Where("status IN ?", []string{"paid", "processing", "shipped", "delivered"}).
		Select("COALESCE(SUM(amount_usd), 0)").Scan(&revenueUSD)

	since := time.Now().AddDate(0, 0, -30)
	var lastMonth int64
	oc.db.Model(&models.Order{}).Where("created_at >= ?", since).Count(&lastMonth)

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"total":        total,
			"by_status":    byStatus,
			"revenue_usd":  services.Round2(revenueUSD),
			"last_30_days": lastMonth,
		},
		"success": true,
	})
}

// GetAllOrders returns every order with pagination (admin)
// GET /admin/orders
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	query := oc.db.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	query.Count(&total)

	var orders []models.Order
	if err := query.Preload("User").Preload("Car").
		Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"orders":      orders,
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": totalPages,
		},
		"success": true,
	})
}

// UpdateOrderStatus moves an order through the fulfilment pipeline (admin)
// PATCH /admin/orders/:ref/status
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	ref := c.Param("ref")

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	valid := map[string]bool{"pending": true, "paid": true, "processing": true, "shipped": true, "delivered": true, "cancelled": true}
	if !valid[req.Status] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}

	var order models.Order
	if err := oc.db.Where("order_ref = ?", ref).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		}
		return
	}

	if err := oc.db.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	if req.Status == "delivered" {
		oc.db.Model(&models.Car{}).Where("id = ?", order.CarID).Update("status", "sold")
	}

	services.Notify(oc.db, order.UserID, "Order update",
		fmt.Sprintf("Order %s is now %s.", ref, req.Status), "order")

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"order_ref": ref, "status": req.Status}, "success": true})
}

func toOrderResponse(o models.Order) models.OrderResponse {
	return models.OrderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		OrderRef:    o.OrderRef,
		CarID:       o.CarID,
		PaymentType: o.PaymentType,
		AmountUSD:   o.AmountUSD,
		DownPayment: o.DownPayment,
		Status:      o.Status,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
