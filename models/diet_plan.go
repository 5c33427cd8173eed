package models

import (
	"time"

	"gorm.io/gorm"
)

// DietPlan holds the four fixed meal slots. At most one plan per user has
// IsActive=true; activation flips the previous one off in the same
// transaction.
type DietPlan struct {
	gorm.Model
	UserID        uint `gorm:"index;not null"`
	IsActive      bool `gorm:"index"`
	TotalCalories float64
	Meals         []DietPlanMeal
}

type DietPlanMeal struct {
	gorm.Model
	DietPlanID uint   `gorm:"index;not null"`
	MealType   string `gorm:"size:16;not null"` // breakfast | lunch | snack | dinner
	Items      string `gorm:"type:text"`        // comma-separated item names
	Calories   float64
}

// DietMealCompletion marks one meal slot of one plan done on one calendar
// day. The natural key (plan, slot, date) is the upsert target; marking a
// slot incomplete hard-deletes the row, so no gorm.Model here — a soft
// delete would leave the unique index occupied.
type DietMealCompletion struct {
	ID         uint      `gorm:"primaryKey"`
	DietPlanID uint      `gorm:"uniqueIndex:idx_plan_slot_date;not null"`
	MealType   string    `gorm:"size:16;uniqueIndex:idx_plan_slot_date;not null"`
	Date       time.Time `gorm:"uniqueIndex:idx_plan_slot_date;not null"` // local midnight
	Completed  bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
