package models

import (
	"time"

	"gorm.io/gorm"
)

// FxRate - scraped reference exchange rate, NGN per one unit of Currency.
// Refreshed by the FX cron; only the latest row per currency matters.
type FxRate struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Currency  string         `json:"currency" gorm:"not null;index:idx_fx_currency"` // e.g. USD
	Rate      float64        `json:"rate" gorm:"not null"`
	Source    string         `json:"source"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

func (FxRate) TableName() string {
	return "fx_rates"
}
