package app

import (
	"rota-console/internal/auth"
	"rota-console/internal/config"
	"rota-console/internal/dashboard"
	"rota-console/internal/identity"
	"rota-console/internal/leave"
	"rota-console/internal/lookup"
	"rota-console/internal/middleware"
	"rota-console/internal/rbac"
	"rota-console/internal/rbac/infra"
	"rota-console/internal/shift"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

func registerModules(router *gin.Engine, cfg *config.Config, logger *zap.Logger, deps dependencies) error {
	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(rbac.NewStaticRepository(), enforcer, logger)
	if err := rbacService.LoadPolicy(); err != nil {
		return err
	}

	// --- Session ---
	sessionCfg := middleware.SessionConfig{
		CookieName: cfg.Auth.CookieName,
		JWTSecret:  cfg.Auth.JWTSecret,
		Resolver:   identity.NewResolver(logger),
	}
	var revoker auth.Revoker
	if deps.redis != nil {
		denylist := auth.NewRedisDenylist(deps.redis)
		sessionCfg.Denylist = denylist
		revoker = denylist
	}

	// --- Services ---
	authService := auth.NewService(auth.NewRepository(deps.gateway), revoker, cfg.Auth.SessionTTL, logger)
	leaveService := leave.NewService(leave.NewRepository(deps.gateway), deps.publisher, logger)
	dashboardService := dashboard.NewService(deps.gateway, cfg.Gateway.BranchTimeout, logger)
	lookupService := lookup.NewService(lookup.NewRepository(deps.gateway), logger)
	shiftService := shift.NewService(shift.NewRepository(deps.gateway), logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Name:   cfg.Auth.CookieName,
		Domain: cfg.Auth.CookieDomain,
		Secure: cfg.Auth.CookieSecure,
	}, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	dashboardHandler := dashboard.NewHandler(dashboardService, logger)
	lookupHandler := lookup.NewHandler(lookupService, logger)
	shiftHandler := shift.NewHandler(shiftService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)

	// --- Global middleware ---
	router.Use(
		gin.Recovery(),
		middleware.ContextLogger(logger),
		middleware.RequestLogger(),
		middleware.HTTPMetrics(),
		middleware.Session(sessionCfg),
	)

	router.GET("/healthz", healthHandler(deps.redis))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(cfg.Limits.RequestsPerSecond), cfg.Limits.Burst))
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		leave.RegisterRoutes(api, leaveHandler, rbacService, deps.redis)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService)
		lookup.RegisterRoutes(api, lookupHandler, rbacService)
		shift.RegisterRoutes(api, shiftHandler, rbacService)
		rbac.RegisterRoutes(api, rbacHandler)
	}

	return nil
}
