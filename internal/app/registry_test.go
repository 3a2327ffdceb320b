package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rota-console/internal/config"
	"rota-console/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "console-test-secret-0123456789"

func testConfig(gatewayURL string) *config.Config {
	return &config.Config{
		Gateway: config.GatewayConfig{BaseURL: gatewayURL + "/api", Timeout: 2 * time.Second, BranchTimeout: time.Second},
		Auth:    config.AuthConfig{JWTSecret: testSecret, CookieName: "access_token", SessionTTL: time.Hour},
		Limits:  config.LimitsConfig{RequestsPerSecond: 100, Burst: 100},
	}
}

func employeeToken(t *testing.T) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":         "42",
		"unique_name": "jane",
		"role":        "Employee",
		"employeeId":  "7",
		"jti":         "tok-1",
		"exp":         time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func newTestApp(t *testing.T, gw http.Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	apperror.Init()

	upstream := httptest.NewServer(gw)
	t.Cleanup(upstream.Close)

	router := gin.New()
	cleanup, err := BuildApp(context.Background(), router, testConfig(upstream.URL), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return router
}

func do(r http.Handler, method, target, body string, mutate func(*http.Request)) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if mutate != nil {
		mutate(req)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestApp_OperationalEndpoints(t *testing.T) {
	r := newTestApp(t, http.NotFoundHandler())

	w := do(r, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redis":"disabled"`)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(r, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "rota_http_requests_total")
}

func TestApp_RequiresSession(t *testing.T) {
	r := newTestApp(t, http.NotFoundHandler())

	for _, target := range []string{"/api/v1/dashboard", "/api/v1/leave-requests", "/api/v1/lookups/leave-filters", "/api/v1/shifts", "/api/v1/calendar/leave-requests"} {
		w := do(r, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, target)
	}
}

func TestApp_LoginThenBrowse(t *testing.T) {
	token := employeeToken(t)
	var forwarded string

	gw := http.NewServeMux()
	gw.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":    true,
			"message":    "ok",
			"token":      token,
			"expiration": time.Now().Add(time.Hour).UTC().Format(time.RFC3339),
		})
	})
	gw.HandleFunc("/api/leavetypes", func(w http.ResponseWriter, r *http.Request) {
		forwarded = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[{"leaveTypeId":2,"leaveTypeName":"Vacation"},{"leaveTypeId":1,"leaveTypeName":"Sick"}]`))
	})
	var calendarQuery string
	gw.HandleFunc("/api/leaverequests", func(w http.ResponseWriter, r *http.Request) {
		calendarQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`[]`))
	})
	r := newTestApp(t, gw)

	w := do(r, http.MethodPost, "/api/v1/auth/login", `{"username":"jane","password":"secret"}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var session *http.Cookie
	for _, ck := range w.Result().Cookies() {
		if ck.Name == "access_token" {
			session = ck
		}
	}
	require.NotNil(t, session)
	withCookie := func(req *http.Request) { req.AddCookie(session) }

	w = do(r, http.MethodGet, "/api/v1/lookups/leave-filters", "", withCookie)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "Bearer "+token, forwarded)
	assert.Less(t, strings.Index(w.Body.String(), "Sick"), strings.Index(w.Body.String(), "Vacation"))

	w = do(r, http.MethodGet, "/api/v1/calendar/leave-requests?start=2025-03-01&end=2025-03-31&status=0&employee_id=9", "", withCookie)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "endDate=2025-03-31&startDate=2025-03-01&status=1", calendarQuery)

	w = do(r, http.MethodPatch, "/api/v1/leave-requests/1/status", `{"status":"Approved"}`, withCookie)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = do(r, http.MethodGet, "/api/v1/rbac/permissions", "", withCookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"role":"Employee"`)

	w = do(r, http.MethodPost, "/api/v1/auth/logout", "", withCookie)
	assert.Equal(t, http.StatusOK, w.Code)
}
