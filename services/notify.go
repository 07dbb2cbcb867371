package services

import (
	"os"

	"driveport/models"
	"driveport/utils"

	"gorm.io/gorm"
)

// Notify stores an in-app notification and mirrors it to the user's email
// when one is on file. Email failures are logged, not surfaced: the in-app
// notification is the system of record.
func Notify(db *gorm.DB, userID uint, title, body, kind string) error {
	notif := models.Notification{
		UserID: userID,
		Title:  title,
		Body:   body,
		Kind:   kind,
	}
	if err := db.Create(&notif).Error; err != nil {
		return err
	}

	var user models.User
	if err := db.First(&user, userID).Error; err == nil && user.Email != nil {
		if err := utils.SendEmail(*user.Email, "DrivePort: "+title, body,
			os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"), os.Getenv("SMTP_USER"), os.Getenv("SMTP_PASS")); err != nil {
			utils.LogError(err, "notification email")
		}
	}
	return nil
}
