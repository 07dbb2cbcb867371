package services

import (
	"errors"
	"log"
	"os"

	"driveport/models"
	"driveport/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func refreshFxRate(db *gorm.DB) {
	sourceURL := getEnv("FX_SOURCE_URL", "https://www.xe.com/currencyconverter/convert/?Amount=1&From=USD&To=NGN")

	parser := NewFxParser(sourceURL)
	rate, err := parser.FetchUSDRate()
	if err != nil {
		log.Printf("[FX CRON] failed to fetch USD rate: %v", err)
		utils.LogError(err, "FX rate scrape")
		return
	}

	now := utils.LagosTime()
	var existing models.FxRate
	err = db.Where("currency = ?", "USD").First(&existing).Error
	if err == nil {
		updates := map[string]interface{}{
			"rate":       rate,
			"source":     sourceURL,
			"updated_at": now,
		}
		if err := db.Model(&existing).Updates(updates).Error; err != nil {
			log.Printf("[FX CRON] failed to update USD rate: %v", err)
			return
		}
	} else if errors.Is(err, gorm.ErrRecordNotFound) {
		record := models.FxRate{Currency: "USD", Rate: rate, Source: sourceURL, CreatedAt: now, UpdatedAt: now}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("[FX CRON] failed to create USD rate: %v", err)
			return
		}
	} else {
		log.Printf("[FX CRON] lookup failed: %v", err)
		return
	}

	log.Printf("[FX CRON] USD rate refreshed: %.2f NGN", rate)
}

// StartFxCron refreshes the reference exchange rate every 6 hours. The first
// refresh runs immediately so the catalog has a rate on fresh deployments.
func StartFxCron(db *gorm.DB) {
	if os.Getenv("FX_CRON_DISABLED") == "true" {
		log.Println("[FX CRON] disabled by env")
		return
	}

	go refreshFxRate(db)

	c := cron.New()
	c.AddFunc("@every 6h", func() {
		refreshFxRate(db)
	})
	c.Start()
}
