package insights

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	insights := r.Group("/insights")
	insights.Use(middleware.AuthMiddleware())
	{
		insights.GET("/financial", middleware.RBACAuthorize(rbacService, "report", "read"), handler.GetFinancialInsights)
	}
}
