package services

import (
	"fmt"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"

	"gorm.io/gorm"
)

type ExerciseService struct{ db *gorm.DB }

func NewExerciseService(db *gorm.DB) *ExerciseService { return &ExerciseService{db: db} }

func (s *ExerciseService) AddExerciseLog(userID uint, name string, durationMin, caloriesBurned float64) (*models.ExerciseLog, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: exercise name required", ErrInvalidInput)
	}
	log := &models.ExerciseLog{
		UserID:         userID,
		Name:           name,
		DurationMin:    durationMin,
		CaloriesBurned: caloriesBurned,
	}
	if err := s.db.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

func (s *ExerciseService) ListExerciseLogs(userID uint) ([]models.ExerciseLog, error) {
	var logs []models.ExerciseLog
	err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&logs).Error
	return logs, err
}
