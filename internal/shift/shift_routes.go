package shift

import (
	"rota-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	shifts := r.Group("/shifts", middleware.RequireSession())
	{
		shifts.GET("", middleware.RBACAuthorize(rbacService, "shift", "read"), handler.Week)
	}

	calendar := r.Group("/calendar", middleware.RequireSession())
	{
		calendar.GET("/shifts", middleware.RBACAuthorize(rbacService, "shift", "read"), handler.CalendarShifts)
		calendar.GET("/leave-requests", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.CalendarLeave)
	}
}
