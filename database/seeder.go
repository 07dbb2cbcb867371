package database

import (
	"os"

	"driveport/models"
	"driveport/utils"

	"gorm.io/gorm"
)

// SeedInterestRates fills the rate table on first boot so financing works out
// of the box. Admins adjust the numbers afterwards.
func SeedInterestRates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.InterestRate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	rates := []models.InterestRate{
		{DurationYears: 1, RatePercent: 18.0, IsActive: true},
		{DurationYears: 2, RatePercent: 21.0, IsActive: true},
		{DurationYears: 3, RatePercent: 24.0, IsActive: true},
	}
	return db.Create(&rates).Error
}

// SeedAdmin creates the admin account from ADMIN_EMAIL / ADMIN_PASSWORD if no
// admin exists yet. Skips silently when the variables are unset.
func SeedAdmin(db *gorm.DB) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	name := "Administrator"
	admin := models.User{
		Email:     &email,
		Password:  hashed,
		Confirmed: true,
		Role:      "admin",
		Name:      &name,
	}
	return db.Create(&admin).Error
}
