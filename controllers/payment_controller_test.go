package controllers

import (
	"fmt"
	"testing"
	"time"

	"driveport/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSettlementDB(t *testing.T) *gorm.DB {
	t.Helper()
	// named in-memory DB so every pooled connection sees the same data
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.PaymentPlan{}, &models.Payment{}))
	return db
}

// The verify callback and the Paystack webhook both settle by reference;
// one real charge must advance an installment plan exactly once no matter
// how many of those paths land.
func TestSettlePaymentInstallmentOnlyOnce(t *testing.T) {
	db := newSettlementDB(t)
	pc := &PaymentController{db: db}

	firstDue := time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Order{
		UserID: 1, OrderRef: "DP-TEST1", CarID: 1,
		PaymentType: "installment", AmountUSD: 30000, DownPayment: 6000, Status: "paid",
	}).Error)
	require.NoError(t, db.Create(&models.PaymentPlan{
		OrderRef: "DP-TEST1", UserID: 1, Principal: 24000, RatePercent: 18,
		DurationYears: 2, MonthlyPayment: 1198.17, TotalPayments: 24,
		PaidPayments: 0, NextDueDate: &firstDue, Status: "active",
	}).Error)
	payment := models.Payment{
		Reference: "PAY-TEST1", OrderRef: "DP-TEST1", UserID: 1,
		AmountKobo: 190000000, Purpose: "installment", Status: "pending",
	}
	require.NoError(t, db.Create(&payment).Error)

	require.NoError(t, pc.settlePayment(&payment, "card"))
	require.NoError(t, pc.settlePayment(&payment, "card"))

	var settled models.Payment
	require.NoError(t, db.Where("reference = ?", "PAY-TEST1").First(&settled).Error)
	assert.Equal(t, "success", settled.Status)
	require.NotNil(t, settled.PaidAt)

	var plan models.PaymentPlan
	require.NoError(t, db.Where("order_ref = ?", "DP-TEST1").First(&plan).Error)
	assert.Equal(t, 1, plan.PaidPayments)
	assert.Equal(t, "active", plan.Status)
	require.NotNil(t, plan.NextDueDate)
	assert.WithinDuration(t, firstDue.AddDate(0, 1, 0), *plan.NextDueDate, time.Second)
}

func TestSettlePaymentCompletesPlanOnLastInstallment(t *testing.T) {
	db := newSettlementDB(t)
	pc := &PaymentController{db: db}

	due := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.PaymentPlan{
		OrderRef: "DP-TEST2", UserID: 2, Principal: 12000, RatePercent: 18,
		DurationYears: 1, MonthlyPayment: 1100.10, TotalPayments: 12,
		PaidPayments: 11, NextDueDate: &due, Status: "active",
	}).Error)
	payment := models.Payment{
		Reference: "PAY-TEST2", OrderRef: "DP-TEST2", UserID: 2,
		AmountKobo: 176000000, Purpose: "installment", Status: "pending",
	}
	require.NoError(t, db.Create(&payment).Error)

	require.NoError(t, pc.settlePayment(&payment, "bank"))
	// late duplicate webhook delivery
	require.NoError(t, pc.settlePayment(&payment, "bank"))

	var plan models.PaymentPlan
	require.NoError(t, db.Where("order_ref = ?", "DP-TEST2").First(&plan).Error)
	assert.Equal(t, 12, plan.PaidPayments)
	assert.Equal(t, "completed", plan.Status)
	assert.Nil(t, plan.NextDueDate)
}

func TestSettlePaymentFullMarksOrderPaid(t *testing.T) {
	db := newSettlementDB(t)
	pc := &PaymentController{db: db}

	require.NoError(t, db.Create(&models.Order{
		UserID: 3, OrderRef: "DP-TEST3", CarID: 2,
		PaymentType: "full", AmountUSD: 18000, Status: "pending",
	}).Error)
	payment := models.Payment{
		Reference: "PAY-TEST3", OrderRef: "DP-TEST3", UserID: 3,
		AmountKobo: 2880000000, Purpose: "full", Status: "pending",
	}
	require.NoError(t, db.Create(&payment).Error)

	require.NoError(t, pc.settlePayment(&payment, "card"))
	require.NoError(t, pc.settlePayment(&payment, "card"))

	var order models.Order
	require.NoError(t, db.Where("order_ref = ?", "DP-TEST3").First(&order).Error)
	assert.Equal(t, "paid", order.Status)
}
