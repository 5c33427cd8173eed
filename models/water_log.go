package models

import "gorm.io/gorm"

type WaterLog struct {
	gorm.Model
	UserID uint    `gorm:"index;not null"`
	Amount float64 // ml
}
