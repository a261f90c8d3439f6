package handler

import (
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/common/httpx"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *service.AppService
}

func NewHandler(appService *service.AppService) *Handler {
	return &Handler{service: appService}
}

func WriteServiceError(c *gin.Context, err error, fallbackMessage string) {
	httpx.WriteServiceError(c, err, fallbackMessage)
}
