package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rota-console/internal/identity"
	"rota-console/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func newIdempotentRouter(t *testing.T, calls *int) (*gin.Engine, redismock.ClientMock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock := redismock.NewClientMock()

	r := gin.New()
	r.POST("/leave-requests",
		withIdentity(identity.Employee("jane", 7)),
		Idempotency(db),
		func(c *gin.Context) {
			*calls++
			response.Success(c, http.StatusCreated, gin.H{"leave_request_id": 501}, nil)
		},
	)
	return r, mock
}

func postWithKey(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/leave-requests", strings.NewReader(`{}`))
	if key != "" {
		req.Header.Set(HeaderIdempotencyKey, key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	cacheKey, lockKey := idempotencyKeys("/leave-requests", "jane", "k-1")

	t.Run("first call stores the response", func(t *testing.T) {
		calls := 0
		r, mock := newIdempotentRouter(t, &calls)

		body := `{"ok":true,"data":{"leave_request_id":501}}`
		payload, err := json.Marshal(cachedResponse{Status: http.StatusCreated, Body: json.RawMessage(body)})
		assert.NoError(t, err)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, idempotencyLockSentinel, idempotencyLockTTL).SetVal(true)
		mock.ExpectSet(cacheKey, payload, idempotencyResponseTTL).SetVal("OK")
		mock.ExpectDel(lockKey).SetVal(1)

		w := postWithKey(r, "k-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, body, w.Body.String())
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("replay skips the handler", func(t *testing.T) {
		calls := 0
		r, mock := newIdempotentRouter(t, &calls)

		mock.ExpectGet(cacheKey).SetVal(`{"status":201,"body":{"ok":true,"data":{"leave_request_id":501}}}`)

		w := postWithKey(r, "k-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "true", w.Header().Get(HeaderIdempotentReplay))
		assert.JSONEq(t, `{"ok":true,"data":{"leave_request_id":501}}`, w.Body.String())
		assert.Zero(t, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight duplicate conflicts", func(t *testing.T) {
		calls := 0
		r, mock := newIdempotentRouter(t, &calls)

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(lockKey, idempotencyLockSentinel, idempotencyLockTTL).SetVal(false)

		w := postWithKey(r, "k-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"PROCESSING"`)
		assert.Zero(t, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("redis outage passes through", func(t *testing.T) {
		calls := 0
		r, mock := newIdempotentRouter(t, &calls)

		mock.ExpectGet(cacheKey).SetErr(errors.New("connection refused"))

		w := postWithKey(r, "k-1")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no key means no redis traffic", func(t *testing.T) {
		calls := 0
		r, mock := newIdempotentRouter(t, &calls)

		w := postWithKey(r, "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIdempotency_NilClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/x", Idempotency(nil), func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodPost, "/x", nil)
	req.Header.Set(HeaderIdempotencyKey, "k")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}
