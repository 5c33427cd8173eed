package services

import (
	"testing"
	"time"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/config"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	config.Log = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.MealLog{},
		&models.WaterLog{},
		&models.ExerciseLog{},
		&models.Friendship{},
		&models.Achievement{},
		&models.DietPlan{},
		&models.DietPlanMeal{},
		&models.DietMealCompletion{},
	))
	return db
}

func createUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	u := &models.User{
		PublicID: uuid.NewString(),
		Email:    uuid.NewString() + "@test.local",
		Password: "hashed",
		FullName: "Test User",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func logMealOn(t *testing.T, db *gorm.DB, userID uint, ateAt time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.MealLog{
		UserID:   userID,
		Name:     "meal",
		Calories: 500,
		AteAt:    ateAt,
	}).Error)
}

func defaultSlots() []PlanSlotRequest {
	return []PlanSlotRequest{
		{MealType: "breakfast", Items: "oats, banana", Calories: 420},
		{MealType: "lunch", Items: "chicken, rice", Calories: 650},
		{MealType: "snack", Items: "yogurt", Calories: 180},
		{MealType: "dinner", Items: "salmon, vegetables", Calories: 550},
	}
}
