package services

import (
	"fmt"
	"time"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"

	"gorm.io/gorm"
)

type WaterService struct {
	db    *gorm.DB
	store EventStore
}

func NewWaterService(db *gorm.DB, store EventStore) *WaterService {
	return &WaterService{db: db, store: store}
}

func (s *WaterService) AddWaterLog(userID uint, amount float64) (*models.WaterLog, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	log := &models.WaterLog{UserID: userID, Amount: amount}
	if err := s.db.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

type WaterStatus struct {
	Total float64 `json:"total"`
	Goal  float64 `json:"goal"`
}

// TodayWater reports the day's intake against the user's goal.
func (s *WaterService) TodayWater(userID uint) (*WaterStatus, error) {
	total, err := s.store.WaterTotalOn(userID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("%w: water total: %v", ErrDataUnavailable, err)
	}
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &WaterStatus{Total: total, Goal: user.WaterGoal}, nil
}

func (s *WaterService) ListTodayWaterLogs(userID uint) ([]models.WaterLog, error) {
	start := dayStartLocal(time.Now())
	end := start.Add(24 * time.Hour)

	var logs []models.WaterLog
	err := s.db.
		Where("user_id = ? AND created_at >= ? AND created_at < ?", userID, start, end).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, err
}
