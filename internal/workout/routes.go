package workout

import (
	"github.com/tnishagarg/Gym-Management-System/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, workoutService WorkoutServicePort, sessions *middlewares.SessionStore, secret string) {
	workoutController := &WorkoutController{WorkoutService: workoutService}

	workoutGroup := r.Group("/api/workouts")
	workoutGroup.Use(middlewares.AuthRequired(sessions, secret))
	{
		workoutGroup.GET("", workoutController.GetWorkouts)
		workoutGroup.POST("", workoutController.CreateWorkout)
		workoutGroup.POST("/update", workoutController.UpdateWorkout)
		workoutGroup.POST("/delete", workoutController.DeleteWorkout)
	}
}
