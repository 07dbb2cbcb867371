package controllers

import (
	"errors"
	"net/http"

	"driveport/models"
	"driveport/services"
	"driveport/utils"

	"github.com/gin-gonic/gin"
)

// FinanceController exposes the installment calculator. It talks to the rate
// table through services.RateSource only.
type FinanceController struct {
	rates services.RateSource
}

func NewFinanceController(rates services.RateSource) *FinanceController {
	return &FinanceController{rates: rates}
}

// FinancePreviewRequest is the calculator input. Rate is never supplied by
// the client; it is resolved from the active rate table by duration.
type FinancePreviewRequest struct {
	Price         float64 `json:"price" binding:"required,gt=0"`
	DownPayment   float64 `json:"down_payment"`
	DurationYears int     `json:"duration_years" binding:"required,gt=0"`
}

// GetRates returns the active rate table
// GET /finance/rates
func (fc *FinanceController) GetRates(c *gin.Context) {
	rates, err := fc.rates.ActiveRates()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch interest rates"})
		return
	}
	if rates == nil {
		rates = []models.InterestRate{}
	}
	c.JSON(http.StatusOK, gin.H{"result": rates, "success": true})
}

// PreviewInstallment computes the payment breakdown for a prospective loan
// without creating anything
// POST /finance/preview
func (fc *FinanceController) PreviewInstallment(c *gin.Context) {
	var req FinancePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	if req.DownPayment < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "down payment cannot be negative"})
		return
	}
	if req.DownPayment >= req.Price {
		c.JSON(http.StatusBadRequest, gin.H{"error": "down payment must be less than the price"})
		return
	}

	rate, err := fc.rates.ActiveRate(req.DurationYears)
	if err != nil {
		if errors.Is(err, services.ErrRateNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Financing is currently unavailable for this term"})
			return
		}
		if errors.Is(err, services.ErrInvalidDuration) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve interest rate"})
		return
	}

	result, err := services.ComputeAmortization(req.Price, rate, req.DurationYears, req.DownPayment)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// previews keep full precision; only persisted plans round
	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"price":                   req.Price,
			"down_payment":            req.DownPayment,
			"duration_years":          req.DurationYears,
			"rate_percent":            rate,
			"financed_amount":         result.FinancedAmount,
			"monthly_payment":         result.MonthlyPayment,
			"total_payments":          result.TotalPayments,
			"total_amount":            result.TotalAmount,
			"total_interest":          result.TotalInterest,
			"monthly_payment_display": utils.FormatUSD(result.MonthlyPayment),
			"total_amount_display":    utils.FormatUSD(result.TotalAmount),
		},
		"success": true,
	})
}

// PreviewSchedule returns the month-by-month amortization table
// POST /finance/schedule
func (fc *FinanceController) PreviewSchedule(c *gin.Context) {
	var req FinancePreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}
	if req.DownPayment < 0 || req.DownPayment >= req.Price {
		c.JSON(http.StatusBadRequest, gin.H{"error": "down payment must be non-negative and less than the price"})
		return
	}

	rate, err := fc.rates.ActiveRate(req.DurationYears)
	if err != nil {
		if errors.Is(err, services.ErrRateNotFound) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Financing is currently unavailable for this term"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := services.AmortizationSchedule(req.Price-req.DownPayment, rate, req.DurationYears)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": gin.H{
			"rate_percent": rate,
			"schedule":     schedule,
		},
		"success": true,
	})
}
