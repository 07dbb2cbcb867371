package controllers

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"driveport/models"
	"driveport/services"
	"driveport/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentController drives the Paystack checkout flow. Amounts are charged in
// naira: the USD figure on the order is converted with the scraped FX rate at
// payment-initiation time.
type PaymentController struct {
	db       *gorm.DB
	paystack *services.Paystack
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{
		db:       db,
		paystack: services.NewPaystack(),
	}
}

func newPaymentReference() string {
	return "PAY-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
}

// usdToKobo converts a USD amount to NGN minor units with the stored rate.
func (pc *PaymentController) usdToKobo(amountUSD float64) (int64, float64, error) {
	var fx models.FxRate
	if err := pc.db.Where("currency = ?", "USD").First(&fx).Error; err != nil {
		return 0, 0, fmt.Errorf("no USD exchange rate available: %w", err)
	}
	if fx.Rate <= 0 {
		return 0, 0, fmt.Errorf("stored USD rate is invalid")
	}
	kobo := int64(math.Round(amountUSD * fx.Rate * 100))
	return kobo, fx.Rate, nil
}

// CreatePayment starts a Paystack checkout for an order
// POST /payments
func (pc *PaymentController) CreatePayment(c *gin.Context) {
	userID := c.GetInt("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	var req models.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": err.Error()})
		return
	}

	var order models.Order
	if err := pc.db.Where("order_ref = ? AND user_id = ?", req.OrderRef, userID).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		}
		return
	}
	if order.Status == "cancelled" {
		c.JSON(http.StatusConflict, gin.H{"error": "Order is cancelled"})
		return
	}

	var amountUSD float64
	switch req.Purpose {
	case "full":
		if order.PaymentType != "full" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order is financed; pay the down payment or an installment"})
			return
		}
		amountUSD = order.AmountUSD
	case "down-payment":
		if order.PaymentType != "installment" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order has no down payment"})
			return
		}
		amountUSD = order.DownPayment
	case "installment":
		var plan models.PaymentPlan
		if err := pc.db.Where("order_ref = ? AND status = ?", req.OrderRef, "active").First(&plan).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active payment plan for this order"})
			return
		}
		amountUSD = plan.MonthlyPayment
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "purpose must be full, down-payment or installment"})
		return
	}
	if amountUSD <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to pay for this purpose"})
		return
	}

	var user models.User
	if err := pc.db.First(&user, userID).Error; err != nil || user.Email == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account has no email for checkout"})
		return
	}

	amountKobo, rate, err := pc.usdToKobo(amountUSD)
	if err != nil {
		utils.LogError(err, "payment FX conversion")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Exchange rate unavailable, try again later"})
		return
	}

	reference := newPaymentReference()
	callbackURL := os.Getenv("APP_BASE_URL") + "/payments/verify/" + reference

	data, err := pc.paystack.InitializeTransaction(*user.Email, amountKobo, reference, callbackURL)
	if err != nil {
		utils.LogError(err, "Paystack initialize")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		return
	}
	checkoutURL, _ := data["authorization_url"].(string)

	payment := models.Payment{
		Reference:   reference,
		OrderRef:    order.OrderRef,
		UserID:      uint(userID),
		AmountKobo:  amountKobo,
		Purpose:     req.Purpose,
		Status:      "pending",
		CheckoutURL: checkoutURL,
	}
	if err := pc.db.Create(&payment).Error; err != nil {
		utils.LogError(err, "save payment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save payment"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"result": gin.H{
			"reference":    reference,
			"checkout_url": checkoutURL,
			"amount_kobo":  amountKobo,
			"amount_ngn":   utils.FormatNGN(float64(amountKobo) / 100),
			"fx_rate":      rate,
		},
		"success": true,
	})
}

// VerifyPayment confirms a transaction with Paystack and applies its effects
// GET /payments/verify/:reference
func (pc *PaymentController) VerifyPayment(c *gin.Context) {
	reference := c.Param("reference")

	var payment models.Payment
	if err := pc.db.Where("reference = ?", reference).First(&payment).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment"})
		}
		return
	}
	if payment.Status == "success" {
		c.JSON(http.StatusOK, gin.H{"result": payment, "success": true, "message": "Payment already confirmed"})
		return
	}

	data, err := pc.paystack.VerifyTransaction(reference)
	if err != nil {
		utils.LogError(err, "Paystack verify")
		c.JSON(http.StatusBadGateway, gin.H{"error": "Payment provider unavailable"})
		return
	}

	status, _ := data["status"].(string)
	channel, _ := data["channel"].(string)

	if status != "success" {
		pc.db.Model(&payment).Updates(map[string]interface{}{"status": status, "channel": channel})
		c.JSON(http.StatusOK, gin.H{"result": gin.H{"reference": reference, "status": status}, "success": true})
		return
	}

	if err := pc.settlePayment(&payment, channel); err != nil {
		utils.LogError(err, "settle payment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"reference": reference, "status": "success"}, "success": true, "message": "Payment confirmed"})
}

// Webhook receives Paystack events. The signature is HMAC-SHA512 of the raw
// body with the secret key; anything unsigned is dropped.
// POST /payments/webhook
func (pc *PaymentController) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	mac := hmac.New(sha512.New, []byte(os.Getenv("PAYSTACK_SECRET_KEY")))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(expected), []byte(c.GetHeader("x-paystack-signature"))) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
		return
	}

	var event struct {
		Event string `json:"event"`
		Data  struct {
			Reference string `json:"reference"`
			Status    string `json:"status"`
			Channel   string `json:"channel"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if event.Event != "charge.success" {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	var payment models.Payment
	if err := pc.db.Where("reference = ?", event.Data.Reference).First(&payment).Error; err != nil {
		// not ours; acknowledge so Paystack stops retrying
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	if payment.Status == "success" {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if err := pc.settlePayment(&payment, event.Data.Channel); err != nil {
		utils.LogError(err, "webhook settle")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to apply payment"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// settlePayment marks a payment successful and moves the order or plan
// forward, all in one transaction. The verify callback and the webhook can
// both land for the same charge, so the status flip is conditioned on the
// row not being settled yet; whoever loses the race applies no side effects.
func (pc *PaymentController) settlePayment(payment *models.Payment, channel string) error {
	now := time.Now()

	return pc.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Payment{}).
			Where("reference = ? AND status <> ?", payment.Reference, "success").
			Updates(map[string]interface{}{
				"status":  "success",
				"channel": channel,
				"paid_at": &now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// already settled by the concurrent path
			return nil
		}

		switch payment.Purpose {
		case "full", "down-payment":
			if err := tx.Model(&models.Order{}).Where("order_ref = ? AND status = ?", payment.OrderRef, "pending").
				Update("status", "paid").Error; err != nil {
				return err
			}
		case "installment":
			var plan models.PaymentPlan
			if err := tx.Where("order_ref = ?", payment.OrderRef).First(&plan).Error; err != nil {
				return err
			}

			updates := map[string]interface{}{
				"paid_payments": plan.PaidPayments + 1,
			}
			if plan.PaidPayments+1 >= plan.TotalPayments {
				updates["status"] = "completed"
				updates["next_due_date"] = nil
			} else if plan.NextDueDate != nil {
				next := plan.NextDueDate.AddDate(0, 1, 0)
				updates["next_due_date"] = &next
			}
			if err := tx.Model(&plan).Updates(updates).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetUserPayments lists the caller's payment history
// GET /payments
func (pc *PaymentController) GetUserPayments(c *gin.Context) {
	userID := c.GetInt("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authorized"})
		return
	}

	var payments []models.Payment
	if err := pc.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payments"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": payments, "success": true})
}
