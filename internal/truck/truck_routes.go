package truck

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	trucks := r.Group("/trucks")
	trucks.Use(middleware.AuthMiddleware())
	{
		trucks.GET("", middleware.RBACAuthorize(rbacService, "truck", "read"), handler.GetAll)
		trucks.GET("/:id", middleware.RBACAuthorize(rbacService, "truck", "read"), handler.GetById)
		trucks.POST("", middleware.RBACAuthorize(rbacService, "truck", "create"), handler.Create)
		trucks.PUT("/:id", middleware.RBACAuthorize(rbacService, "truck", "update"), handler.Update)
		trucks.DELETE("/:id", middleware.RBACAuthorize(rbacService, "truck", "delete"), handler.Delete)
	}
}
