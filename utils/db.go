package utils

import "gorm.io/gorm"

var db *gorm.DB

// SetDB stores the global *gorm.DB used by controllers and crons.
func SetDB(database *gorm.DB) {
	db = database
}

func GetDB() *gorm.DB {
	return db
}
