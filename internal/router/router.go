package router

import (
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/config"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/handler"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler *handler.Handler
}

func NewRouter(h *handler.Handler) *Router {
	return &Router{handler: h}
}

func (rt *Router) Init(r *gin.Engine) {
	cfg := config.Get()

	// 注册全局中间件：安全标头、CORS、通用限流
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.CORS.Origins))

	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))

	// 认证接口用更严的限流桶
	authLimiter := middleware.RateLimitMiddleware(cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst)

	registerPublicRoutes(api, rt.handler)
	registerAuthRoutes(api, authLimiter, rt.handler)
	registerCommentRoutes(api, rt.handler)
	registerLikeRoutes(api, rt.handler)
	registerUserRoutes(api, rt.handler)
}
