package routes

import (
	"github.com/nevzaterdem/SmartCalorieApp-sub000/controllers"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/middlewares"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/goals", controllers.UpdateGoals)

		api.POST("/meals", controllers.LogMeal)
		api.GET("/meals", controllers.ListMeals)
		api.DELETE("/meals/:id", controllers.DeleteMeal)

		api.POST("/water", controllers.LogWater)
		api.GET("/water/today", controllers.GetTodayWater)

		api.POST("/exercises", controllers.LogExercise)
		api.GET("/exercises", controllers.ListExercises)

		api.POST("/friends/:id", controllers.FollowFriend)
		api.DELETE("/friends/:id", controllers.UnfollowFriend)
		api.GET("/friends", controllers.ListFriends)

		api.POST("/diet-plans", controllers.CreateDietPlan)
		api.GET("/diet-plans", controllers.ListDietPlans)
		api.GET("/diet-plans/active", controllers.GetActiveDietPlan)
		api.GET("/diet-plans/active/progress", controllers.GetActivePlanProgress)
		api.PUT("/diet-plans/:id/activate", controllers.ActivateDietPlan)
		api.DELETE("/diet-plans/:id", controllers.DeleteDietPlan)
		api.PUT("/diet-plans/:id/completion", controllers.SetMealCompletion)
		api.GET("/diet-plans/:id/adherence", controllers.GetDietPlanAdherence)

		api.GET("/progress/today", controllers.GetDailyProgress)
		api.GET("/progress/streak", controllers.GetStreak)
		api.POST("/progress/achievements/evaluate", controllers.EvaluateAchievements)
		api.GET("/progress/achievements", controllers.GetAchievements)

		rc := controllers.NewRealtimeController(rt)
		api.GET("/progress/ws", rc.ProgressWS)
	}

	return r
}
