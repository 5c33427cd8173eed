package main

import (
	"github.com/nevzaterdem/SmartCalorieApp-sub000/config"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/routes"
	"github.com/nevzaterdem/SmartCalorieApp-sub000/services"

	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	config.InitDB()

	rt := services.NewRealtimeHub()
	services.InitProgressDeps(rt)

	r := routes.SetupRouter(rt)
	if err := r.Run(":8080"); err != nil {
		config.Log.Fatal("server exited", zap.Error(err))
	}
}
