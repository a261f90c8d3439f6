package router

import (
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/handler"

	"github.com/gin-gonic/gin"
)

func registerPublicRoutes(api *gin.RouterGroup, h *handler.Handler) {
	api.GET("/health", h.Health)

	api.GET("/images", h.GetImages)
	api.GET("/images/popular", h.GetPopularImages)
	api.GET("/images/:id", h.GetImageByID)
}
