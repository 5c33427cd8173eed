package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/nevzaterdem/SmartCalorieApp-sub000/config"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/services"

	"github.com/gin-gonic/gin"
)

func CreateDietPlan(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Slots []services.PlanSlotRequest `json:"slots"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dietSvc := services.NewDietService(config.DB)
	plan, err := dietSvc.CreatePlan(uid, body.Slots)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	refreshProgress(uid, false)
	c.JSON(http.StatusCreated, plan)
}

func GetActiveDietPlan(c *gin.Context) {
	uid := c.GetUint("userID")

	dietSvc := services.NewDietService(config.DB)
	plan, err := dietSvc.GetActivePlan(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plan)
}

func ListDietPlans(c *gin.Context) {
	uid := c.GetUint("userID")

	dietSvc := services.NewDietService(config.DB)
	plans, err := dietSvc.ListPlans(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, plans)
}

func ActivateDietPlan(c *gin.Context) {
	uid := c.GetUint("userID")
	planID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	dietSvc := services.NewDietService(config.DB)
	if err := dietSvc.ActivatePlan(uid, uint(planID)); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "plan activated"})
}

func DeleteDietPlan(c *gin.Context) {
	uid := c.GetUint("userID")
	planID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	dietSvc := services.NewDietService(config.DB)
	if err := dietSvc.DeletePlan(uid, uint(planID)); err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func SetMealCompletion(c *gin.Context) {
	uid := c.GetUint("userID")
	planID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var body struct {
		MealType  string `json:"meal_type"`
		Date      string `json:"date"` // YYYY-MM-DD, defaults to today
		Completed *bool  `json:"completed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	date := time.Now()
	if body.Date != "" {
		parsed, perr := time.Parse("2006-01-02", body.Date)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		// rebuild in local time so the day key matches the engine's boundary
		date = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.Local)
	}
	completed := true
	if body.Completed != nil {
		completed = *body.Completed
	}

	dietSvc := services.NewDietService(config.DB)
	result, err := dietSvc.SetMealCompletion(uid, uint(planID), body.MealType, date, completed)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	if completed {
		// the mirrored meal log is a new meal event
		refreshProgress(uid, true)
	}
	c.JSON(http.StatusOK, result)
}

func GetActivePlanProgress(c *gin.Context) {
	uid := c.GetUint("userID")

	dietSvc := services.NewDietService(config.DB)
	progress, err := dietSvc.GetActivePlanProgress(uid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

func GetDietPlanAdherence(c *gin.Context) {
	uid := c.GetUint("userID")
	planID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	dietSvc := services.NewDietService(config.DB)
	pct, err := dietSvc.AdherencePercent(uid, uint(planID))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"adherence_percent": pct})
}
