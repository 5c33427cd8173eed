package controllers

import (
	"net/http"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/config"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// refreshProgress runs the engine after a log event: recompute the streak
// (meal events only), then re-evaluate achievements, and push whatever came
// out. A refresh failure never fails the originating request.
func refreshProgress(userID uint, recomputeStreak bool) {
	store := services.NewEventStore(config.DB)

	if recomputeStreak {
		streakSvc := services.NewStreakService(config.DB, store)
		streak, err := streakSvc.ComputeStreak(userID)
		if err != nil {
			config.Log.Warn("streak refresh failed", zap.Uint("user_id", userID), zap.Error(err))
		} else {
			services.EmitStreakUpdated(userID, streak)
		}
	}

	achSvc := services.NewAchievementService(config.DB, store)
	newly, err := achSvc.EvaluateAchievements(userID)
	if err != nil {
		config.Log.Warn("achievement refresh failed", zap.Uint("user_id", userID), zap.Error(err))
		return
	}
	services.EmitAchievementsUnlocked(userID, newly)
}

func GetStreak(c *gin.Context) {
	uid := c.GetUint("userID")

	store := services.NewEventStore(config.DB)
	streakSvc := services.NewStreakService(config.DB, store)
	streak, err := streakSvc.ComputeStreak(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"streak": streak})
}

func EvaluateAchievements(c *gin.Context) {
	uid := c.GetUint("userID")

	store := services.NewEventStore(config.DB)
	achSvc := services.NewAchievementService(config.DB, store)
	newly, err := achSvc.EvaluateAchievements(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	services.EmitAchievementsUnlocked(uid, newly)

	c.JSON(http.StatusOK, gin.H{
		"new_achievements": newly,
		"count":            len(newly),
	})
}

func GetDailyProgress(c *gin.Context) {
	uid := c.GetUint("userID")

	progress, err := services.GetDailyProgress(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

func GetAchievements(c *gin.Context) {
	uid := c.GetUint("userID")

	store := services.NewEventStore(config.DB)
	achSvc := services.NewAchievementService(config.DB, store)
	view, err := achSvc.GetAchievementsView(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, view)
}
