package services

import (
	"time"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"

	"gorm.io/gorm"
)

// EventStore is the read side of the progress engine: counts and timestamps
// of logged events, nothing about their payloads. The streak calculator and
// achievement evaluator go through this seam so each aggregate can fail
// independently.
type EventStore interface {
	MealLogTimes(userID uint) ([]time.Time, error) // most recent first
	MealLogCount(userID uint) (int64, error)
	WaterLogCount(userID uint) (int64, error)
	DietPlanCount(userID uint) (int64, error)
	FriendCount(userID uint) (int64, error)
	WaterTotalOn(userID uint, day time.Time) (float64, error)
}

type gormEventStore struct{ db *gorm.DB }

func NewEventStore(db *gorm.DB) EventStore { return &gormEventStore{db: db} }

func (s *gormEventStore) MealLogTimes(userID uint) ([]time.Time, error) {
	var stamps []time.Time
	err := s.db.Model(&models.MealLog{}).
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Pluck("ate_at", &stamps).Error
	return stamps, err
}

func (s *gormEventStore) MealLogCount(userID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.MealLog{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (s *gormEventStore) WaterLogCount(userID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.WaterLog{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (s *gormEventStore) DietPlanCount(userID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.DietPlan{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (s *gormEventStore) FriendCount(userID uint) (int64, error) {
	var n int64
	err := s.db.Model(&models.Friendship{}).Where("user_id = ?", userID).Count(&n).Error
	return n, err
}

func (s *gormEventStore) WaterTotalOn(userID uint, day time.Time) (float64, error) {
	start := dayStartLocal(day)
	end := start.Add(24 * time.Hour)

	var total float64
	err := s.db.Model(&models.WaterLog{}).
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func dayStartLocal(t time.Time) time.Time {
	loc := time.Local
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}
