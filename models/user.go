package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	PublicID    string `gorm:"type:varchar(36);uniqueIndex;not null"`
	Email       string `gorm:"uniqueIndex;not null"`
	Password    string `gorm:"not null"`
	FullName    string
	Streak      int     `gorm:"default:0"` // consecutive days with at least one meal logged; recomputed, never incremented
	CalorieGoal float64 // kcal per day
	WaterGoal   float64 // ml per day
	Disabled    bool    `gorm:"default:false"`
}
