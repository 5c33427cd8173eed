package config

import (
	"fmt"
	"os"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/models"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		Log.Warn("no .env file found, relying on environment")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		Log.Fatal("failed to connect to database", zap.Error(err))
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.MealLog{},
		&models.WaterLog{},
		&models.ExerciseLog{},
		&models.Friendship{},
		&models.Achievement{},
		&models.DietPlan{},
		&models.DietPlanMeal{},
		&models.DietMealCompletion{},
	)
	if err != nil {
		Log.Fatal("AutoMigrate failed", zap.Error(err))
	}
}
