package models

import (
	"time"

	"gorm.io/gorm"
)

// InterestRate - annual financing rate for a loan term. At most one active
// rate may exist per duration; a partial unique index in database.Migrate
// backs this up, and the admin controller deactivates siblings on activation.
type InterestRate struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	DurationYears int            `json:"duration_years" gorm:"not null;index:idx_rates_duration"`
	RatePercent   float64        `json:"rate_percent" gorm:"not null"` // human percent scale, e.g. 18.5
	IsActive      bool           `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// InterestRateRequest is the admin create/update payload
type InterestRateRequest struct {
	DurationYears int     `json:"duration_years" binding:"required,gt=0"`
	RatePercent   float64 `json:"rate_percent" binding:"required,gte=0"`
	IsActive      *bool   `json:"is_active"`
}
