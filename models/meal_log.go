package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged meal. Calories come from the caller (manual entry, AI food
// recognition, or a diet-plan completion); this layer never interprets them.
type MealLog struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Name     string `gorm:"not null"`
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	AteAt    time.Time `gorm:"index;not null"`
}
