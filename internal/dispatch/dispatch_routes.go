package dispatch

import (
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/middleware"
	"github.com/Deepak-cell311/FreightOpsPlatform-sub003/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	loads := r.Group("/loads")
	loads.Use(middleware.AuthMiddleware())
	{
		loads.GET("", middleware.RBACAuthorize(rbacService, "load", "read"), handler.GetLoads)
		loads.GET("/:id", middleware.RBACAuthorize(rbacService, "load", "read"), handler.GetLoadByID)
		loads.GET("/:id/legs", middleware.RBACAuthorize(rbacService, "load", "read"), handler.GetDispatchLegs)
		loads.PUT("/:id/status", middleware.RBACAuthorize(rbacService, "load", "update"), handler.UpdateLoadStatus)
		if redisClient != nil {
			loads.POST(
				"",
				middleware.Idempotency(redisClient),
				middleware.RBACAuthorize(rbacService, "load", "create"),
				handler.CreateLoad,
			)
		} else {
			loads.POST("", middleware.RBACAuthorize(rbacService, "load", "create"), handler.CreateLoad)
		}
	}

	dispatch := r.Group("/dispatch")
	dispatch.Use(middleware.AuthMiddleware())
	{
		dispatch.PUT("/legs/:legId/complete", middleware.RBACAuthorize(rbacService, "load", "update"), handler.CompleteDispatchLeg)
		dispatch.GET("/calendar", middleware.RBACAuthorize(rbacService, "load", "read"), handler.GetDispatchCalendar)
		dispatch.GET("/drivers/:driverId/assignments", middleware.RBACAuthorize(rbacService, "load", "read"), handler.GetDriverAssignments)
		dispatch.GET("/drivers/:driverId/mobile", middleware.RBACAuthorize(rbacService, "load", "read"), handler.GetDriverMobileData)
	}
}
