package auth

import (
	"rota-console/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService middleware.RBACService) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/logout", middleware.RequireSession(), handler.Logout)
		auth.GET("/me",
			middleware.RequireSession(),
			middleware.RBACAuthorize(rbacService, "profile", "read"),
			middleware.RateLimitByUser(2, 5),
			handler.Me,
		)
		auth.POST("/change-password",
			middleware.RequireSession(),
			middleware.RBACAuthorize(rbacService, "profile", "update"),
			middleware.RateLimitByUser(0.2, 3),
			handler.ChangePassword,
		)
		auth.POST("/register",
			middleware.RequireSession(),
			middleware.RBACAuthorize(rbacService, "user", "create"),
			middleware.RateLimitByUser(0.5, 3),
			handler.Register,
		)
	}
}
