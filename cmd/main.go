package main

import (
	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	rt := services.NewRealtimeHub()
	services.InitPlanBus(config.DB, rt)

	r := routes.SetupRouter(rt)
	r.Run(":8080")
}
