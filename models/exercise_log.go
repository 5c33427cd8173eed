package models

import "gorm.io/gorm"

type ExerciseLog struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null"`
	Name           string `gorm:"not null"`
	DurationMin    float64
	CaloriesBurned float64
}
