package database

import (
	"driveport/models"

	"gorm.io/gorm"
)

// Migrate runs the schema migrations.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Car{},
		&models.InterestRate{},
		&models.Order{},
		&models.PaymentPlan{},
		&models.Payment{},
		&models.Favorite{},
		&models.Notification{},
		&models.Shipping{},
		&models.CarView{},
		&models.FxRate{},
	); err != nil {
		return err
	}

	// at most one active rate per loan term; the admin transaction keeps this
	// true in practice, the index keeps it true under races
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_rate_per_duration
		ON interest_rates (duration_years)
		WHERE is_active = true AND deleted_at IS NULL
	`).Error; err != nil {
		return err
	}

	// one wishlist entry per user and car
	if err := db.Exec(`
		CREATE UNIQUE INDEX IF NOT EXISTS uniq_favorite_user_car
		ON favorites (user_id, car_id)
		WHERE deleted_at IS NULL
	`).Error; err != nil {
		return err
	}

	return nil
}
