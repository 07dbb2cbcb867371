package models

import (
	"time"

	"gorm.io/gorm"
)

// Shipping tracks the physical delivery of a purchased car.
type Shipping struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrderRef       string         `json:"order_ref" gorm:"uniqueIndex;not null"`
	Status         string         `json:"status" gorm:"default:'preparing'"` // preparing, in-transit, customs, delivered
	Carrier        string         `json:"carrier"`
	TrackingNumber string         `json:"tracking_number"`
	ETA            *time.Time     `json:"eta"`
	Notes          string         `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// ShippingUpdateRequest is the admin status update payload
type ShippingUpdateRequest struct {
	Status         string `json:"status" binding:"required"`
	Carrier        string `json:"carrier"`
	TrackingNumber string `json:"tracking_number"`
	ETA            string `json:"eta"` // YYYY-MM-DD
	Notes          string `json:"notes"`
}
