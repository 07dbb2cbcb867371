package models

import (
	"time"

	"gorm.io/gorm"
)

type Notification struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    uint           `json:"user_id" gorm:"not null;index:idx_notif_user"`
	Title     string         `json:"title" gorm:"not null"`
	Body      string         `json:"body" gorm:"type:text"`
	Kind      string         `json:"kind"` // order, payment, installment, shipping
	Read      bool           `json:"read" gorm:"default:false"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}
