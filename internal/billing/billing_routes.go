package billing

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	billing := r.Group("/loads/:id/billing")
	billing.Use(middleware.AuthMiddleware())
	{
		billing.GET("", middleware.RBACAuthorize(rbacService, "billing", "read"), handler.GetByLoad)
		billing.PUT("/base-rate", middleware.RBACAuthorize(rbacService, "billing", "update"), handler.SetBaseRate)
		billing.POST("/accessorials", middleware.RBACAuthorize(rbacService, "billing", "update"), handler.AddAccessorial)
		billing.DELETE("/accessorials/:accessorialId", middleware.RBACAuthorize(rbacService, "billing", "update"), handler.RemoveAccessorial)
		billing.POST("/expenses", middleware.RBACAuthorize(rbacService, "billing", "update"), handler.AddExpense)
		billing.DELETE("/expenses/:expenseId", middleware.RBACAuthorize(rbacService, "billing", "update"), handler.RemoveExpense)
		billing.POST("/finalize", middleware.RBACAuthorize(rbacService, "billing", "finalize"), handler.Finalize)
	}
}
