package trainer

import (
	"github.com/tnishagarg/Gym-Management-System/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, trainerService TrainerServicePort, sessions *middlewares.SessionStore, secret string) {
	trainerController := &TrainerController{TrainerService: trainerService}

	trainerGroup := r.Group("/api/trainers")
	trainerGroup.Use(middlewares.AuthRequired(sessions, secret))
	{
		trainerGroup.GET("", trainerController.GetTrainers)
		trainerGroup.POST("", trainerController.CreateTrainer)
		trainerGroup.POST("/update", trainerController.UpdateTrainer)
		trainerGroup.POST("/delete", trainerController.DeleteTrainer)
	}
}
