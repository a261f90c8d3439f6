package handler

import (
	"net/http"
	"strconv"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/middleware"

	"github.com/gin-gonic/gin"
)

// ToggleLike 点赞/取消点赞开关，需要登录
func (h *Handler) ToggleLike(c *gin.Context) {
	imageID := c.Param("id")
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	status, err := h.service.Likes.ToggleLike(c.Request.Context(), imageID, *userID, c.ClientIP())
	if err != nil {
		WriteServiceError(c, err, "点赞操作失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_id":   imageID,
		"liked":      status.Liked,
		"totalLikes": status.TotalLikes,
	})
}

// GetLikeStatus 点赞状态查询，匿名调用 liked 恒为 false
func (h *Handler) GetLikeStatus(c *gin.Context) {
	imageID := c.Param("id")
	userID := middleware.CurrentUserID(c)

	status, err := h.service.Likes.GetLikeStatus(imageID, userID)
	if err != nil {
		WriteServiceError(c, err, "查询点赞状态失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_id":   imageID,
		"liked":      status.Liked,
		"totalLikes": status.TotalLikes,
	})
}

func (h *Handler) GetLikesCount(c *gin.Context) {
	imageID := c.Param("id")

	count, err := h.service.Likes.GetLikesCount(imageID)
	if err != nil {
		WriteServiceError(c, err, "统计点赞数失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_id":    imageID,
		"likes_count": count,
	})
}

// GetMyLikedImages 当前用户点赞过的图片
func (h *Handler) GetMyLikedImages(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	images, pagination, err := h.service.Likes.ListLikedImages(*userID, page, limit)
	if err != nil {
		WriteServiceError(c, err, "获取点赞图片失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"images":     images,
		"pagination": pagination,
	})
}
