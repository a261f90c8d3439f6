package router

import (
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/handler"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, h *handler.Handler) {
	authGroup := api.Group("/auth")

	authGroup.POST("/signup", authLimiter, h.Signup)
	authGroup.POST("/login", authLimiter, h.Login)
	authGroup.GET("/me", middleware.JWTAuth(), h.Me)
}
