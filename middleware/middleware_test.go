package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r http.Handler, header map[string]string, remote string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	if remote != "" {
		req.RemoteAddr = remote
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_PerClientIP(t *testing.T) {
	r := newRouter(RateLimitMiddleware(2))

	assert.Equal(t, http.StatusOK, get(r, nil, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusOK, get(r, nil, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, nil, "10.0.0.1:1234").Code)

	assert.Equal(t, http.StatusOK, get(r, nil, "10.0.0.2:1234").Code)
}

func TestGetClientIP(t *testing.T) {
	cases := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{"forwarded first", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.1:80", "203.0.113.7"},
		{"forwarded garbage", map[string]string{"X-Forwarded-For": "unknown", "X-Real-IP": "198.51.100.2"}, "10.0.0.1:80", "198.51.100.2"},
		{"remote addr", nil, "192.0.2.10:5555", "192.0.2.10"},
		{"ipv6 remote", nil, "[2001:db8::1]:443", "2001:db8::1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.header {
				c.Request.Header.Set(k, v)
			}
			c.Request.RemoteAddr = tc.remote
			assert.Equal(t, tc.want, getClientIP(c))
		})
	}
}

func TestRequestLogger(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := newRouter(RequestLogger(zap.New(core)))

	w := get(r, map[string]string{requestIDHeader: "req-1"}, "")

	assert.Equal(t, "req-1", w.Header().Get(requestIDHeader))
	entries := logs.FilterMessage("request").All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, "req-1", ctx["requestId"])
		assert.Equal(t, int64(http.StatusOK), ctx["status"])
		assert.Equal(t, "/ping", ctx["path"])
	}
}

func TestRequestLogger_GeneratesRequestID(t *testing.T) {
	r := newRouter(RequestLogger(nil))
	w := get(r, nil, "")
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))
}
