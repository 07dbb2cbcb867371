package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email     *string `gorm:"uniqueIndex"`
	Phone     *string `gorm:"uniqueIndex"`
	Password  string
	Confirmed bool   `gorm:"default:false"`
	Role      string `gorm:"default:user"`
	Name      *string
	Address   *string
	GoogleID  *string
}
