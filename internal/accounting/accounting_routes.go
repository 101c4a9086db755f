package accounting

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	accounting := r.Group("/accounting")
	accounting.Use(middleware.AuthMiddleware())
	{
		accounting.POST("/invoices", middleware.RBACAuthorize(rbacService, "accounting", "create"), handler.CreateInvoice)
		accounting.GET("/invoices", middleware.RBACAuthorize(rbacService, "accounting", "read"), handler.GetInvoices)
		accounting.GET("/invoices/:id", middleware.RBACAuthorize(rbacService, "accounting", "read"), handler.GetInvoiceByID)
		accounting.PUT("/invoices/:id/status", middleware.RBACAuthorize(rbacService, "accounting", "update"), handler.SetInvoiceStatus)

		accounting.POST("/bills", middleware.RBACAuthorize(rbacService, "accounting", "create"), handler.CreateBill)
		accounting.GET("/bills", middleware.RBACAuthorize(rbacService, "accounting", "read"), handler.GetBills)
		accounting.PUT("/bills/:id/status", middleware.RBACAuthorize(rbacService, "accounting", "update"), handler.SetBillStatus)

		accounting.GET("/dashboard", middleware.RBACAuthorize(rbacService, "accounting", "read"), handler.GetDashboardSummary)
	}
}
