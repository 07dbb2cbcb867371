package controllers

import (
	"net/http"

	"driveport/models"
	"driveport/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// PlanController serves installment plans and their schedules.
type PlanController struct {
	db *gorm.DB
}

func NewPlanController(db *gorm.DB) *PlanController {
	return &PlanController{db: db}
}

// GetUserPlans lists the caller's payment plans
// GET /plans
func (pc *PlanController) GetUserPlans(c *gin.Context) {
	userID := c.GetInt("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	var plans []models.PaymentPlan
	query := pc.db.Where("user_id = ?", userID)
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&plans).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": plans, "success": true})
}

// GetPlan returns one plan with its full amortization schedule and progress
// GET /plans/:ref
func (pc *PlanController) GetPlan(c *gin.Context) {
	userID := c.GetInt("user_id")
	ref := c.Param("ref")

	var plan models.PaymentPlan
	if err := pc.db.Where("order_ref = ?", ref).First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment plan not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment plan"})
		}
		return
	}
	if plan.UserID != uint(userID) && c.GetString("role") != "admin" {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	schedule, err := services.AmortizationSchedule(plan.Principal, plan.RatePercent, plan.DurationYears)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build schedule"})
		return
	}

	remaining := float64(plan.TotalPayments-plan.PaidPayments) * plan.MonthlyPayment

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"plan":               plan,
			"schedule":           schedule,
			"paid_payments":      plan.PaidPayments,
			"remaining_payments": plan.TotalPayments - plan.PaidPayments,
			"remaining_amount":   services.Round2(remaining),
		},
		"success": true,
	})
}
