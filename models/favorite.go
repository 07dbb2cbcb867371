package models

import "gorm.io/gorm"

// Favorite - a saved car on the user's wishlist
type Favorite struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"not null;index"`
	CarID  uint `json:"car_id" gorm:"not null;index"`

	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
	Car  Car  `json:"car,omitempty" gorm:"foreignKey:CarID;references:ID"`
}
