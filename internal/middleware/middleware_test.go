package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/domain"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/metrics"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/middleware/mocks"
	"github.com/ranjodhsingh1729/FanFirst-Backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID_GeneratesAndEchoes(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID())
	r.GET("/", func(c *ginext.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
	assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	w = serve(r, req)
	assert.Equal(t, "abc", w.Body.String())
}

func TestRecovery_ReturnsInternalError(t *testing.T) {
	r := ginext.New("test")
	r.Use(RequestID(), Recovery(newTestLogger(t)))
	r.GET("/", func(c *ginext.Context) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	w := serve(r, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"message":"Internal Server Error","request_id":"req-1"}`, w.Body.String())
}

func TestBrokenConn(t *testing.T) {
	assert.True(t, brokenConn(fmt.Errorf("write: %w", syscall.EPIPE)))
	assert.True(t, brokenConn(syscall.ECONNRESET))
	assert.False(t, brokenConn(errors.New("boom")))
}

func TestAuthenticate_SetsPrincipal(t *testing.T) {
	lookup := mocks.NewMockSessionLookup(t)
	lookup.EXPECT().Lookup(mock.Anything, "sid-1").Return("u1", nil)

	r := ginext.New("test")
	r.Use(Authenticate(lookup, "sess", newTestLogger(t)), RequireAuth())
	r.GET("/", func(c *ginext.Context) {
		p, _ := session.PrincipalFrom(c.Request.Context())
		c.String(http.StatusOK, p.UserID+"/"+p.SessionID)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sess", Value: "sid-1"})
	w := serve(r, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1/sid-1", w.Body.String())
}

func TestAuthenticate_ExpiredSession(t *testing.T) {
	lookup := mocks.NewMockSessionLookup(t)
	lookup.EXPECT().Lookup(mock.Anything, "stale").Return("", domain.ErrNotAuthenticated)

	r := ginext.New("test")
	r.Use(Authenticate(lookup, "sess", newTestLogger(t)), RequireAuth())
	r.GET("/", func(c *ginext.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "sess", Value: "stale"})
	w := serve(r, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"message":"User not authenticated"}`, w.Body.String())
}

func TestRequireAuth_NoCookie(t *testing.T) {
	lookup := mocks.NewMockSessionLookup(t)

	r := ginext.New("test")
	r.Use(Authenticate(lookup, "sess", newTestLogger(t)), RequireAuth())
	r.GET("/", func(c *ginext.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func rateLimitedRouter(t *testing.T, limit int) (http.Handler, redismock.ClientMock) {
	t.Helper()
	client, rmock := redismock.NewClientMock()

	r := ginext.New("test")
	r.Use(RateLimit(client, "auth", limit, 15*time.Minute, newTestLogger(t)))
	r.POST("/auth", func(c *ginext.Context) { c.Status(http.StatusOK) })
	return r, rmock
}

func authRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/auth", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	return req
}

func expectHit(rmock redismock.ClientMock, key string, count int64, fresh bool) {
	rmock.ExpectTxPipeline()
	rmock.ExpectIncr(key).SetVal(count)
	rmock.ExpectExpireNX(key, 15*time.Minute).SetVal(fresh)
	rmock.ExpectTxPipelineExec()
}

func TestRateLimit_BlocksOverLimit(t *testing.T) {
	r, rmock := rateLimitedRouter(t, 2)
	key := "rate_limit:auth:192.0.2.1"

	for i := int64(1); i <= 3; i++ {
		expectHit(rmock, key, i, i == 1)
	}

	assert.Equal(t, http.StatusOK, serve(r, authRequest()).Code)

	w := serve(r, authRequest())
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("RateLimit-Remaining"))

	w = serve(r, authRequest())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Too many requests, please try again later.", body["message"])

	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRateLimit_FailsOpen(t *testing.T) {
	r, rmock := rateLimitedRouter(t, 1)

	rmock.ExpectTxPipeline()
	rmock.ExpectIncr("rate_limit:auth:192.0.2.1").SetErr(errors.New("connection refused"))

	w := serve(r, authRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestRateLimit_SetsWindowWithCounter(t *testing.T) {
	r, rmock := rateLimitedRouter(t, 5)
	key := "rate_limit:auth:192.0.2.1"

	// ключ уже с TTL: EXPIRE NX ничего не меняет, но всё равно идёт в той же транзакции
	expectHit(rmock, key, 4, false)

	w := serve(r, authRequest())

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("RateLimit-Remaining"))
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestCORS(t *testing.T) {
	r := ginext.New("test")
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/", func(c *ginext.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := serve(r, req)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = serve(r, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodOptions, "/", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w = serve(r, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMetrics_ObservesRoute(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := metrics.NewRecorder(reg)

	r := ginext.New("test")
	r.Use(Metrics(rec))
	r.GET("/events/:id", func(c *ginext.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest(http.MethodGet, "/events/123", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/nope", nil))

	n, err := testutil.GatherAndCount(reg, "fanfirst_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
