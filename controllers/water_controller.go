package controllers

import (
	"net/http"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/config"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/services"

	"github.com/gin-gonic/gin"
)

func LogWater(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	store := services.NewEventStore(config.DB)
	waterSvc := services.NewWaterService(config.DB, store)
	log, err := waterSvc.AddWaterLog(uid, body.Amount)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	refreshProgress(uid, false)
	c.JSON(http.StatusCreated, log)
}

func GetTodayWater(c *gin.Context) {
	uid := c.GetUint("userID")

	store := services.NewEventStore(config.DB)
	waterSvc := services.NewWaterService(config.DB, store)

	status, err := waterSvc.TodayWater(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	logs, err := waterSvc.ListTodayWaterLogs(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": status.Total, "goal": status.Goal, "logs": logs})
}
