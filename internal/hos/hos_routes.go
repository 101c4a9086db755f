package hos

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	hos := r.Group("/hos")
	hos.Use(middleware.AuthMiddleware())
	{
		hos.POST("/start", middleware.RBACAuthorize(rbacService, "driver", "update"), handler.StartDuty)
		hos.POST("/end", middleware.RBACAuthorize(rbacService, "driver", "update"), handler.EndDuty)
		hos.GET("/drivers/:driverId/logs", middleware.RBACAuthorize(rbacService, "driver", "read"), handler.GetDriverLogs)
	}
}
