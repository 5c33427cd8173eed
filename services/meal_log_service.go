package services

import (
	"fmt"
	"time"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"

	"gorm.io/gorm"
)

type MealLogService struct{ db *gorm.DB }

func NewMealLogService(db *gorm.DB) *MealLogService { return &MealLogService{db: db} }

type MealLogRequest struct {
	Name     string    `json:"name"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	AteAt    time.Time `json:"ate_at"`
}

func (s *MealLogService) AddMealLog(userID uint, req MealLogRequest) (*models.MealLog, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: meal name required", ErrInvalidInput)
	}
	if req.AteAt.IsZero() {
		req.AteAt = time.Now()
	}
	log := &models.MealLog{
		UserID:   userID,
		Name:     req.Name,
		Calories: req.Calories,
		Protein:  req.Protein,
		Carbs:    req.Carbs,
		Fat:      req.Fat,
		AteAt:    req.AteAt,
	}
	if err := s.db.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

func (s *MealLogService) ListMealLogs(userID uint) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.Where("user_id = ?", userID).Order("ate_at DESC").Find(&logs).Error
	return logs, err
}

func (s *MealLogService) ListMealLogsByDateRange(userID uint, from, to time.Time) ([]models.MealLog, error) {
	var logs []models.MealLog
	err := s.db.
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, from, to).
		Order("ate_at DESC").
		Find(&logs).Error
	return logs, err
}

func (s *MealLogService) DeleteMealLog(userID, logID uint) error {
	res := s.db.Where("id = ? AND user_id = ?", logID, userID).Delete(&models.MealLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TodayCalories sums the user's meal-log calories for the local day.
func (s *MealLogService) TodayCalories(userID uint) (float64, error) {
	start := dayStartLocal(time.Now())
	end := start.Add(24 * time.Hour)

	var total float64
	err := s.db.Model(&models.MealLog{}).
		Where("user_id = ? AND ate_at >= ? AND ate_at < ?", userID, start, end).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&total).Error
	return total, err
}
