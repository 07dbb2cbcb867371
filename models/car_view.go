package models

import "time"

// CarView - view counter per car and traffic source, for the admin dashboard
type CarView struct {
	ID        uint   `gorm:"primaryKey"`
	CarID     uint   `gorm:"not null;index:idx_views_car"`
	Source    string `gorm:"type:varchar(100);not null"` // catalog, search, direct
	ViewCount int    `gorm:"default:1;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
