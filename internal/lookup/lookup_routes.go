package lookup

import (
	"rota-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	lookups := r.Group("/lookups", middleware.RequireSession())
	{
		lookups.GET("/leave-filters",
			middleware.RBACAuthorize(rbacService, "lookup", "read"),
			handler.LeaveFilters,
		)
	}
}
