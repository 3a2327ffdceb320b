package app

import (
	"context"
	"net/http"
	"time"

	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const healthPingTimeout = 2 * time.Second

// healthHandler reports liveness. When redis is configured it must answer,
// since logout correctness depends on the denylist.
func healthHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		checks := gin.H{"redis": "disabled"}
		if rdb != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				response.Error(c, http.StatusServiceUnavailable, apperror.CodeServiceUnavailable,
					"redis is unreachable", gin.H{"redis": "down"})
				return
			}
			checks["redis"] = "up"
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok", "checks": checks}, nil)
	}
}
