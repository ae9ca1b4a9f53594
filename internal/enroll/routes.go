package enroll

import (
	"github.com/tnishagarg/Gym-Management-System/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, enrollService EnrollServicePort, sessions *middlewares.SessionStore, secret string) {
	enrollController := &EnrollController{EnrollService: enrollService}

	enrollGroup := r.Group("/api/enrolls")
	enrollGroup.Use(middlewares.AuthRequired(sessions, secret))
	{
		enrollGroup.GET("", enrollController.GetEnrollments)
		enrollGroup.POST("", enrollController.CreateEnrollment)
		enrollGroup.POST("/update", enrollController.UpdateEnrollment)
		enrollGroup.POST("/delete", enrollController.DeleteEnrollment)
	}
}
