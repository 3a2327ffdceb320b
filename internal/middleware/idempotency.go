package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"rota-console/internal/shared/apperror"
	"rota-console/internal/shared/contextutil"
	"rota-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	HeaderIdempotencyKey    = "Idempotency-Key"
	HeaderIdempotentReplay  = "Idempotent-Replayed"
	idempotencyLockTTL      = 30 * time.Second
	idempotencyResponseTTL  = 24 * time.Hour
	idempotencyLockSentinel = "locked"
)

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func idempotencyKeys(path, user, key string) (cacheKey, lockKey string) {
	cacheKey = fmt.Sprintf("idemp:%s:%s:%s", path, user, key)
	return cacheKey, cacheKey + ":lock"
}

// Idempotency replays the stored response of a POST that already succeeded
// with the same Idempotency-Key, and refuses a duplicate that is still in
// flight. A nil client or a redis outage turns it into a pass-through.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderIdempotencyKey)
		if rdb == nil || key == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		var user string
		if id, ok := CurrentIdentity(c); ok {
			user = id.Username()
		}
		cacheKey, lockKey := idempotencyKeys(c.FullPath(), user, key)

		ctx := c.Request.Context()
		logger := contextutil.GetLogger(ctx, zap.L()).Named("middleware.idempotency")

		val, err := rdb.Get(ctx, cacheKey).Result()
		switch {
		case err == nil:
			var cached cachedResponse
			if jerr := json.Unmarshal([]byte(val), &cached); jerr == nil {
				c.Header(HeaderIdempotentReplay, "true")
				c.Data(cached.Status, "application/json; charset=utf-8", cached.Body)
				c.Abort()
				return
			}
			logger.Warn("unreadable idempotency entry ignored", zap.String("key", cacheKey))
		case !errors.Is(err, redis.Nil):
			logger.Warn("idempotency cache unavailable", zap.Error(err))
			c.Next()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, idempotencyLockSentinel, idempotencyLockTTL).Result()
		if err != nil {
			logger.Warn("idempotency lock unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Abort(c, http.StatusConflict, apperror.CodeIdempotentHit, "This request is already being processed")
			return
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		bg := context.WithoutCancel(ctx)
		if status := rec.Status(); status >= 200 && status < 300 {
			payload, err := json.Marshal(cachedResponse{Status: status, Body: rec.body.Bytes()})
			if err == nil {
				err = rdb.Set(bg, cacheKey, payload, idempotencyResponseTTL).Err()
			}
			if err != nil {
				logger.Warn("idempotent response not stored", zap.String("key", cacheKey), zap.Error(err))
			}
		}
		if err := rdb.Del(bg, lockKey).Err(); err != nil {
			logger.Warn("idempotency lock not released", zap.String("key", lockKey), zap.Error(err))
		}
	}
}
