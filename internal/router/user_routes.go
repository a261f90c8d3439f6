package router

import (
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/handler"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/middleware"

	"github.com/gin-gonic/gin"
)

// 用户侧列表挂在 /user 下，避免与 /comments/:id、/likes/:id 的通配段冲突
func registerUserRoutes(api *gin.RouterGroup, h *handler.Handler) {
	userGroup := api.Group("/user")
	userGroup.Use(middleware.JWTAuth())

	userGroup.GET("/likes", h.GetMyLikedImages)
	userGroup.GET("/comments", h.GetMyComments)
}
