package reporting

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	reports := r.Group("/reports")
	reports.Use(middleware.AuthMiddleware())
	{
		reports.GET("/revenue", middleware.RBACAuthorize(rbacService, "report", "read"), handler.GetRevenueSummary)
		reports.GET("/revenue/export", middleware.RBACAuthorize(rbacService, "report", "read"), handler.ExportRevenueReport)
		reports.GET("/kpis", middleware.RBACAuthorize(rbacService, "report", "read"), handler.GetKPIScores)
	}
}
