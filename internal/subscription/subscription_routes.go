package subscription

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	sub := r.Group("/subscription")
	sub.Use(middleware.AuthMiddleware())
	{
		sub.GET("", middleware.RBACAuthorize(rbacService, "subscription", "read"), handler.GetSubscription)
		sub.POST("", middleware.RBACAuthorize(rbacService, "subscription", "create"), handler.Subscribe)
		sub.PUT("/plan", middleware.RBACAuthorize(rbacService, "subscription", "update"), handler.ChangePlan)
		sub.DELETE("", middleware.RBACAuthorize(rbacService, "subscription", "delete"), handler.Cancel)

		sub.POST("/addons", middleware.RBACAuthorize(rbacService, "subscription", "update"), handler.AddAddon)
		sub.DELETE("/addons/:addonId", middleware.RBACAuthorize(rbacService, "subscription", "update"), handler.RemoveAddon)
	}
}
