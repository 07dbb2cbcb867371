package services

import (
	"driveport/models"

	"gorm.io/gorm"
)

// RateSource resolves the active annual rate for a loan term. Controllers
// depend on this interface so handler tests can stub the rate table.
type RateSource interface {
	ActiveRate(durationYears int) (float64, error)
	ActiveRates() ([]models.InterestRate, error)
}

type gormRateSource struct {
	db *gorm.DB
}

// NewGormRateSource returns a RateSource backed by the interest_rates table.
func NewGormRateSource(db *gorm.DB) RateSource {
	return &gormRateSource{db: db}
}

func (s *gormRateSource) ActiveRate(durationYears int) (float64, error) {
	var rates []models.InterestRate
	// updated_at DESC keeps the resolution deterministic even if the
	// one-active-per-duration index is ever missing
	if err := s.db.Where("is_active = ?", true).Order("updated_at DESC").Find(&rates).Error; err != nil {
		return 0, err
	}

	table := make([]InterestRateRecord, 0, len(rates))
	for _, r := range rates {
		table = append(table, InterestRateRecord{
			DurationYears: r.DurationYears,
			RatePercent:   r.RatePercent,
			IsActive:      r.IsActive,
		})
	}
	return ResolveActiveRate(durationYears, table)
}

func (s *gormRateSource) ActiveRates() ([]models.InterestRate, error) {
	var rates []models.InterestRate
	err := s.db.Where("is_active = ?", true).Order("duration_years ASC").Find(&rates).Error
	return rates, err
}
