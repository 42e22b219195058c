package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }
	r.GET("/health", ok)
	r.GET("/api/v1/stock", ok)
	r.POST("/api/v1/chatbot/chat", ok)
	return r
}

func serve(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimit_RejectsWhenBucketEmpty(t *testing.T) {
	r := newRouter(RateLimit(NewRateLimiter(0.001, 10)))

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/v1/chatbot/chat", nil).Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/v1/chatbot/chat", nil).Code)

	w := serve(r, http.MethodPost, "/api/v1/chatbot/chat", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestRateLimit_SmallBucketStillServesChat(t *testing.T) {
	r := newRouter(RateLimit(NewRateLimiter(0.001, 4)))

	assert.Equal(t, http.StatusOK, serve(r, http.MethodPost, "/api/v1/chatbot/chat", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/api/v1/chatbot/chat", nil).Code)
}

func TestRateLimit_HealthIsFree(t *testing.T) {
	r := newRouter(RateLimit(NewRateLimiter(0.001, 1)))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", nil).Code)
	}
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/stock", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodGet, "/api/v1/stock", nil).Code)
}

func TestRateLimit_PruneDropsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 10)
	rl.getBucket("10.0.0.1")
	busy := rl.getBucket("10.0.0.2")
	busy.TakeAvailable(5)

	rl.prune()

	assert.NotContains(t, rl.clients, "10.0.0.1")
	assert.Contains(t, rl.clients, "10.0.0.2")
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := newRouter(RequestLogger())

	w := serve(r, http.MethodGet, "/health", nil)
	assert.Len(t, w.Header().Get(RequestIDHeader), 36)

	w = serve(r, http.MethodGet, "/health", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestCORS(t *testing.T) {
	r := newRouter(CORS([]string{"http://localhost:3000"}))

	w := serve(r, http.MethodGet, "/health", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodGet, "/health", map[string]string{"Origin": "http://evil.example"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = serve(r, http.MethodOptions, "/api/v1/stock", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestMetrics_PassesThrough(t *testing.T) {
	r := newRouter(Metrics())

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/api/v1/stock", nil).Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/nope", nil).Code)
}
