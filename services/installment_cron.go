package services

import (
	"fmt"
	"log"
	"os"

	"driveport/models"
	"driveport/utils"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

func remindDueInstallments(db *gorm.DB) {
	now := utils.LagosTime()

	var plans []models.PaymentPlan
	if err := db.Where("status = ? AND next_due_date IS NOT NULL AND next_due_date <= ?", "active", now).Find(&plans).Error; err != nil {
		log.Printf("[INSTALLMENT CRON] plan lookup failed: %v", err)
		return
	}

	for _, plan := range plans {
		var user models.User
		if err := db.First(&user, plan.UserID).Error; err != nil {
			continue
		}

		body := fmt.Sprintf(
			"Your installment of %s for order %s is due. Payment %d of %d.",
			utils.FormatUSD(plan.MonthlyPayment), plan.OrderRef, plan.PaidPayments+1, plan.TotalPayments,
		)

		notif := models.Notification{
			UserID: plan.UserID,
			Title:  "Installment due",
			Body:   body,
			Kind:   "installment",
		}
		if err := db.Create(&notif).Error; err != nil {
			utils.LogError(err, "installment notification")
			continue
		}

		if user.Email != nil {
			if err := utils.SendEmail(*user.Email, "DrivePort: Installment due", body,
				os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
				utils.LogError(err, "installment reminder email")
			}
		}
	}

	if len(plans) > 0 {
		log.Printf("[INSTALLMENT CRON] reminded %d plans (as of %s)", len(plans), now.Format("2006-01-02 15:04:05"))
	}
}

// StartInstallmentCron sends due-installment reminders every morning at
// 09:00 Lagos time.
func StartInstallmentCron(db *gorm.DB) {
	loc := utils.LagosTime().Location()
	c := cron.New(cron.WithLocation(loc))
	c.AddFunc("0 9 * * *", func() {
		remindDueInstallments(db)
	})
	c.Start()
}
