package services

import (
	"errors"
	"time"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/config"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"
)

func GetUserProfile(email string) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("email = ? AND disabled = ?", email, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	return map[string]interface{}{
		"id":           user.ID,
		"public_id":    user.PublicID,
		"email":        user.Email,
		"full_name":    user.FullName,
		"streak":       user.Streak,
		"calorie_goal": user.CalorieGoal,
		"water_goal":   user.WaterGoal,
	}, nil
}

// UpsertGoals sets the user's daily calorie and water targets. The water
// goal feeds the daily water-goal achievement rule.
func UpsertGoals(userID uint, calorieGoal, waterGoal float64) error {
	if calorieGoal < 0 || waterGoal < 0 {
		return ErrInvalidInput
	}
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return err
	}
	user.CalorieGoal = calorieGoal
	user.WaterGoal = waterGoal
	return config.DB.Save(&user).Error
}

type DailyProgress struct {
	Calories    float64 `json:"calories"`
	CalorieGoal float64 `json:"calorie_goal"`
	Water       float64 `json:"water"`
	WaterGoal   float64 `json:"water_goal"`
}

// GetDailyProgress is the at-a-glance view for the current local day:
// consumed calories and water against the user's targets.
func GetDailyProgress(userID uint) (*DailyProgress, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, ErrUnauthorized
	}

	mealSvc := NewMealLogService(config.DB)
	calories, err := mealSvc.TodayCalories(userID)
	if err != nil {
		return nil, err
	}

	store := NewEventStore(config.DB)
	water, err := store.WaterTotalOn(userID, time.Now())
	if err != nil {
		return nil, err
	}

	return &DailyProgress{
		Calories:    calories,
		CalorieGoal: user.CalorieGoal,
		Water:       water,
		WaterGoal:   user.WaterGoal,
	}, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
