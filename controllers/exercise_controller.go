package controllers

import (
	"net/http"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/config"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/services"

	"github.com/gin-gonic/gin"
)

func LogExercise(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Name           string  `json:"name"`
		DurationMin    float64 `json:"duration_min"`
		CaloriesBurned float64 `json:"calories_burned"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	exSvc := services.NewExerciseService(config.DB)
	log, err := exSvc.AddExerciseLog(uid, body.Name, body.DurationMin, body.CaloriesBurned)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, log)
}

func ListExercises(c *gin.Context) {
	uid := c.GetUint("userID")

	exSvc := services.NewExerciseService(config.DB)
	logs, err := exSvc.ListExerciseLogs(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, logs)
}
