package driver

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	drivers := r.Group("/drivers")
	drivers.Use(middleware.AuthMiddleware())
	{
		drivers.GET("", middleware.RBACAuthorize(rbacService, "driver", "read"), handler.GetAll)
		drivers.GET("/:id", middleware.RBACAuthorize(rbacService, "driver", "read"), handler.GetById)
		drivers.POST("", middleware.RBACAuthorize(rbacService, "driver", "create"), handler.Create)
		drivers.PUT("/:id", middleware.RBACAuthorize(rbacService, "driver", "update"), handler.Update)
		drivers.PUT("/:id/status", middleware.RBACAuthorize(rbacService, "driver", "update"), handler.SetStatus)
		drivers.DELETE("/:id", middleware.RBACAuthorize(rbacService, "driver", "delete"), handler.Delete)
	}
}
