package dashboard

import (
	"rota-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	r.GET("/dashboard",
		middleware.RequireSession(),
		middleware.RBACAuthorize(rbacService, "dashboard", "read"),
		handler.Get,
	)
	r.GET("/dashboard/on-call.ics",
		middleware.RequireSession(),
		middleware.RBACAuthorize(rbacService, "dashboard", "read"),
		handler.OnCallCalendar,
	)
}
