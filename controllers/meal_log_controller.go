package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/config"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/services"

	"github.com/gin-gonic/gin"
)

func LogMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	var body services.MealLogRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	mealSvc := services.NewMealLogService(config.DB)
	log, err := mealSvc.AddMealLog(uid, body)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	refreshProgress(uid, true)
	c.JSON(http.StatusCreated, log)
}

func ListMeals(c *gin.Context) {
	uid := c.GetUint("userID")
	mealSvc := services.NewMealLogService(config.DB)

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.Local)
		logs, err := mealSvc.ListMealLogsByDateRange(uid, start, start.Add(24*time.Hour))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, logs)
		return
	}

	logs, err := mealSvc.ListMealLogs(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}

func DeleteMeal(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	mealSvc := services.NewMealLogService(config.DB)
	if err := mealSvc.DeleteMealLog(uid, uint(id)); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	// deletions can break a streak; recompute rather than drift
	refreshProgress(uid, true)
	c.Status(http.StatusNoContent)
}
