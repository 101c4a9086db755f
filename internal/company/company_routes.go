package company

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	companies := r.Group("/company")
	companies.Use(middleware.AuthMiddleware())
	{
		companies.GET("", handler.GetMine)
		companies.PUT("", middleware.RBACAuthorize(rbacService, "company", "manage"), handler.Update)
		companies.POST("/deactivate", middleware.RBACAuthorize(rbacService, "company", "manage"), handler.Deactivate)
	}
}
