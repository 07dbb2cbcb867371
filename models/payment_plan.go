package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentPlan persists the computed amortization of a financed order. Money
// fields are rounded to 2 decimals at creation time; live previews keep full
// precision and never touch this table.
type PaymentPlan struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrderRef       string         `json:"order_ref" gorm:"uniqueIndex;not null"`
	UserID         uint           `json:"user_id" gorm:"not null;index:idx_plan_user"`
	Principal      float64        `json:"principal" gorm:"not null"` // financed amount, USD
	RatePercent    float64        `json:"rate_percent" gorm:"not null"`
	DurationYears  int            `json:"duration_years" gorm:"not null"`
	MonthlyPayment float64        `json:"monthly_payment" gorm:"not null"`
	TotalPayments  int            `json:"total_payments" gorm:"not null"`
	TotalAmount    float64        `json:"total_amount" gorm:"not null"`
	TotalInterest  float64        `json:"total_interest" gorm:"not null"`
	PaidPayments   int            `json:"paid_payments" gorm:"default:0"`
	NextDueDate    *time.Time     `json:"next_due_date"`
	Status         string         `json:"status" gorm:"default:'active';index:idx_plan_status"` // active, completed, cancelled
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
