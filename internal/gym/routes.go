package gym

import (
	"github.com/tnishagarg/Gym-Management-System/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, gymService GymServicePort, sessions *middlewares.SessionStore, secret string) {
	gymController := &GymController{GymService: gymService}

	gymGroup := r.Group("/api/gyms")
	gymGroup.Use(middlewares.AuthRequired(sessions, secret))
	{
		gymGroup.GET("", gymController.GetGyms)
		gymGroup.POST("", gymController.CreateGym)
		gymGroup.POST("/update", gymController.UpdateGym)
		gymGroup.POST("/delete", gymController.DeleteGym)
	}
}
