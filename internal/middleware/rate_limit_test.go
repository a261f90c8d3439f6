package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// 测试内容：超出令牌桶容量的请求被 429 拒绝
func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.InitConfig(t.TempDir())

	engine := gin.New()
	// rps 极小、桶容量 2：前两个请求放行，第三个被拒
	engine.GET("/ping", RateLimitMiddleware(0.0001, 2), func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("期望前两个请求放行, 实际状态码为 %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("期望第三个请求返回 429, 实际为 %d", codes[2])
	}
}

// 测试内容：不同 IP 使用独立的令牌桶
func TestIPRateLimiterPerIP(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(0.0001), 1)

	if !limiter.getLimiter("10.0.0.1").Allow() {
		t.Fatal("期望 10.0.0.1 的首个请求放行, 实际被拒")
	}
	if limiter.getLimiter("10.0.0.1").Allow() {
		t.Fatal("期望 10.0.0.1 的第二个请求被拒, 实际放行")
	}
	if !limiter.getLimiter("10.0.0.2").Allow() {
		t.Fatal("期望 10.0.0.2 不受 10.0.0.1 影响, 实际被拒")
	}
}
