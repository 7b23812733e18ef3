package routes

import (
	"log"

	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	rek, err := services.NewRekognitionService()
	if err != nil {
		// photo suggestions degrade gracefully without AWS credentials
		log.Printf("rekognition unavailable: %v", err)
		rek = nil
	}
	foodCtrl := controllers.NewFoodItemController(services.NewFoodItemService(rek))
	realtimeCtrl := controllers.NewRealtimeController(rt)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/profile", controllers.DeleteAccount)
	}

	// Food catalog
	food := r.Group("/food-items")
	food.Use(middlewares.AuthMiddleware())
	{
		food.POST("", foodCtrl.Create)
		food.GET("", foodCtrl.List)
		food.GET("/:id", foodCtrl.Get)
		food.PUT("/:id", foodCtrl.Update)
		food.DELETE("/:id", foodCtrl.Delete)
		food.POST("/recognize", foodCtrl.Recognize)
		food.POST("/image", controllers.UploadFoodImage)
	}

	// Events, consumption schedule, goals, computed plan
	events := r.Group("/events")
	events.Use(middlewares.AuthMiddleware())
	{
		events.POST("", controllers.CreateEvent)
		events.GET("", controllers.ListEvents)
		events.GET("/:id", controllers.GetEvent)
		events.PUT("/:id", controllers.UpdateEvent)
		events.DELETE("/:id", controllers.DeleteEvent)

		events.POST("/:id/consumptions", controllers.AddConsumption)
		events.GET("/:id/consumptions", controllers.ListConsumptions)
		events.POST("/:id/consumptions/repeat", controllers.RepeatConsumption)
		events.PUT("/:id/consumptions/:consumptionId", controllers.UpdateConsumption)
		events.PATCH("/:id/consumptions/:consumptionId/move", controllers.MoveConsumption)
		events.DELETE("/:id/consumptions/:consumptionId", controllers.DeleteConsumption)

		events.PUT("/:id/goals", controllers.UpsertGoal)
		events.GET("/:id/goals", controllers.ListGoals)
		events.GET("/:id/goals/suggested", controllers.SuggestedGoals)
		events.DELETE("/:id/goals/:goalId", controllers.DeleteGoal)

		events.GET("/:id/plan/timeline", controllers.GetPlanTimeline)
		events.GET("/:id/plan/report", controllers.GetPlanReport)
		events.GET("/:id/plan/changes", controllers.ListPlanChanges)

		events.GET("/:id/plan/ws", realtimeCtrl.PlanWS)
	}

	return r
}
