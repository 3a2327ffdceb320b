package leave

import (
	"rota-console/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	leaves := r.Group("/leave-requests")
	leaves.Use(middleware.RequireSession())
	{
		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.List)
		leaves.GET("/export", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.Export)
		leaves.GET("/draft", middleware.RBACAuthorize(rbacService, "leave", "create"), handler.Draft)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetByID)
		leaves.POST("", middleware.RBACAuthorize(rbacService, "leave", "create"), middleware.Idempotency(rdb), handler.Create)
		leaves.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Transition)
		leaves.PATCH("/:id/cancel", middleware.RBACAuthorize(rbacService, "leave", "cancel"), handler.Cancel)
	}
}
