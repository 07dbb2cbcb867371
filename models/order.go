package models

import (
	"time"

	"gorm.io/gorm"
)

// Order represents a car purchase, either paid in full or financed through an
// installment plan (payment_type = "installment" links a PaymentPlan).
type Order struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	UserID      uint           `json:"user_id" gorm:"not null;index:idx_user_orders"`
	OrderRef    string         `json:"order_ref" gorm:"uniqueIndex;not null"`
	CarID       uint           `json:"car_id" gorm:"not null;index:idx_order_car"`
	PaymentType string         `json:"payment_type" gorm:"not null"` // full, installment
	AmountUSD   float64        `json:"amount_usd" gorm:"not null"`   // car price at order time
	DownPayment float64        `json:"down_payment" gorm:"default:0"`
	Status      string         `json:"status" gorm:"default:'pending';index:idx_order_status"` // pending, paid, processing, shipped, delivered, cancelled
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
	Car  Car  `json:"car,omitempty" gorm:"foreignKey:CarID;references:ID"`
}

// OrderRequest is the checkout payload
type OrderRequest struct {
	CarID         uint    `json:"car_id" binding:"required"`
	PaymentType   string  `json:"payment_type" binding:"required"` // full, installment
	DownPayment   float64 `json:"down_payment"`
	DurationYears int     `json:"duration_years"` // required for installment
}

// OrderResponse is what list/detail endpoints return
type OrderResponse struct {
	ID          uint      `json:"id"`
	UserID      uint      `json:"user_id"`
	OrderRef    string    `json:"order_ref"`
	CarID       uint      `json:"car_id"`
	PaymentType string    `json:"payment_type"`
	AmountUSD   float64   `json:"amount_usd"`
	DownPayment float64   `json:"down_payment"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// OrderListResponse is the paginated order history response
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}
