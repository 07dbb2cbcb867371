package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Car - catalog unit. Prices are stored in USD because the cars are imported;
// local-currency display goes through the scraped rate in fx_rates.
type Car struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Brand        string         `json:"brand" gorm:"not null;index:idx_cars_brand"`
	CarModel     string         `json:"model" gorm:"column:model;not null"`
	Year         int            `json:"year" gorm:"not null;index:idx_cars_year"`
	PriceUSD     float64        `json:"price_usd" gorm:"not null"`
	Mileage      int64          `json:"mileage"`
	Transmission string         `json:"transmission"` // automatic, manual
	FuelType     string         `json:"fuel_type"`    // petrol, diesel, hybrid, electric
	Condition    string         `json:"condition" gorm:"default:'foreign-used';index:idx_cars_condition"` // new, foreign-used, local-used
	Status       string         `json:"status" gorm:"default:'available';index:idx_cars_status"`          // available, reserved, sold
	Description  string         `json:"description" gorm:"type:text"`
	CoverImage   string         `json:"cover_image"`
	Gallery      datatypes.JSON `json:"gallery"` // array of image URLs (Cloudinary)
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// CarRequest is the admin create/update payload
type CarRequest struct {
	Brand        string   `json:"brand" binding:"required"`
	Model        string   `json:"model" binding:"required"`
	Year         int      `json:"year" binding:"required"`
	PriceUSD     float64  `json:"price_usd" binding:"required,gt=0"`
	Mileage      int64    `json:"mileage"`
	Transmission string   `json:"transmission"`
	FuelType     string   `json:"fuel_type"`
	Condition    string   `json:"condition"`
	Status       string   `json:"status"`
	Description  string   `json:"description"`
	CoverImage   string   `json:"cover_image"`
	Gallery      []string `json:"gallery"`
}

// CarListResponse is the paginated catalog response
type CarListResponse struct {
	Cars       []Car `json:"cars"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}
