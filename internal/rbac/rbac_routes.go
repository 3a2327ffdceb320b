package rbac

import (
	"rota-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	group.Use(middleware.RequireSession())
	{
		group.GET("/permissions", handler.Permissions)
		group.POST("/check", handler.Check)
	}
}
