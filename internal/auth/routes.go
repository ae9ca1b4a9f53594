package auth

import (
	"github.com/tnishagarg/Gym-Management-System/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, authService AuthServicePort, sessions *middlewares.SessionStore, secret string) {
	authController := &AuthController{AuthService: authService, Sessions: sessions, Secret: secret}

	r.POST("/login", authController.Login)
	r.GET("/logout", authController.Logout)

	meGroup := r.Group("/api/me")
	meGroup.Use(middlewares.AuthRequired(sessions, secret))
	{
		meGroup.GET("", authController.Me)
	}
}
