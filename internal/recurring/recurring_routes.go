package recurring

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	templates := r.Group("/recurring-templates")
	templates.Use(middleware.AuthMiddleware())
	{
		templates.POST("", middleware.RBACAuthorize(rbacService, "accounting", "create"), handler.CreateTemplate)
		templates.GET("", middleware.RBACAuthorize(rbacService, "accounting", "read"), handler.GetTemplates)
		templates.GET("/:id", middleware.RBACAuthorize(rbacService, "accounting", "read"), handler.GetTemplateByID)
		templates.DELETE("/:id", middleware.RBACAuthorize(rbacService, "accounting", "update"), handler.DeactivateTemplate)
	}
}
