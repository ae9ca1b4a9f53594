package member

import (
	"github.com/tnishagarg/Gym-Management-System/internal/middlewares"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, memberService MemberServicePort, sessions *middlewares.SessionStore, secret string) {
	memberController := &MemberController{MemberService: memberService}

	memberGroup := r.Group("/api/members")
	memberGroup.Use(middlewares.AuthRequired(sessions, secret))
	{
		memberGroup.GET("", memberController.GetMembers)
		memberGroup.POST("", memberController.CreateMember)
		memberGroup.POST("/update", memberController.UpdateMember)
		memberGroup.POST("/delete", memberController.DeleteMember)
	}
}
