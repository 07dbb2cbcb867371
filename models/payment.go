package models

import (
	"time"

	"gorm.io/gorm"
)

// Payment - a Paystack transaction tied to an order. For installment orders
// there is one payment per installment, matched back by reference.
type Payment struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Reference   string         `json:"reference" gorm:"uniqueIndex;not null"` // our reference, sent to Paystack
	OrderRef    string         `json:"order_ref" gorm:"not null;index:idx_payment_order"`
	UserID      uint           `json:"user_id" gorm:"index:idx_payment_user"`
	AmountKobo  int64          `json:"amount_kobo" gorm:"not null"`     // NGN minor units
	Purpose     string         `json:"purpose" gorm:"not null"`         // full, down-payment, installment
	Status      string         `json:"status" gorm:"default:'pending'"` // pending, success, failed, abandoned
	CheckoutURL string         `json:"checkout_url"`
	Channel     string         `json:"channel"` // card, bank, ussd (reported by Paystack)
	PaidAt      *time.Time     `json:"paid_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// CreatePaymentRequest - request to start a Paystack checkout
type CreatePaymentRequest struct {
	OrderRef string `json:"order_ref" binding:"required"`
	Purpose  string `json:"purpose" binding:"required"` // full, down-payment, installment
}
