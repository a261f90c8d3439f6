package router

import (
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/handler"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/middleware"

	"github.com/gin-gonic/gin"
)

func registerCommentRoutes(api *gin.RouterGroup, h *handler.Handler) {
	commentGroup := api.Group("/comments")

	// 发评论允许匿名，带 Token 时归属到账号
	commentGroup.POST("/:id", middleware.OptionalJWTAuth(), h.CreateComment)
	commentGroup.GET("/:id", h.GetComments)

	// 修改/删除自己的评论（PUT/DELETE 与上面的 GET/POST 分属不同方法树，不冲突）
	commentGroup.PUT("/item/:commentId", middleware.JWTAuth(), h.UpdateComment)
	commentGroup.DELETE("/item/:commentId", middleware.JWTAuth(), h.DeleteComment)
}
