package auth

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/auth")
	{
		group.POST("/signup", handler.Signup)
		group.POST("/login", handler.Login)
		group.POST("/refresh", handler.Refresh)
		group.POST("/logout", handler.Logout)
		group.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
