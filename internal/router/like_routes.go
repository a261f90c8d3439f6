package router

import (
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/handler"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerLikeRoutes(api *gin.RouterGroup, h *handler.Handler) {
	likeGroup := api.Group("/likes")

	likeGroup.POST("/:id/toggle", middleware.JWTAuth(), h.ToggleLike)
	likeGroup.GET("/:id/status", middleware.OptionalJWTAuth(), h.GetLikeStatus)
	likeGroup.GET("/:id/likes", h.GetLikesCount)
}
