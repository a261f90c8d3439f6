package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetImages 图片列表，支持 ?q= 关键字搜索。
// 本地无法得知上游总量，hasMore 用 len == limit 估算
func (h *Handler) GetImages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	query := c.Query("q")

	images, err := h.service.Images.ListImages(c.Request.Context(), page, limit, query)
	if err != nil {
		WriteServiceError(c, err, "获取图片列表失败")
		return
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 12
	}

	c.JSON(http.StatusOK, gin.H{
		"images": images,
		"pagination": gin.H{
			"page":    page,
			"limit":   limit,
			"hasMore": len(images) == limit,
		},
	})
}

func (h *Handler) GetImageByID(c *gin.Context) {
	id := c.Param("id")

	image, err := h.service.Images.GetImage(c.Request.Context(), id)
	if err != nil {
		WriteServiceError(c, err, "获取图片失败")
		return
	}

	c.JSON(http.StatusOK, image)
}

// GetPopularImages 按本站点赞数排序的图片榜单
func (h *Handler) GetPopularImages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	images, pagination, err := h.service.Images.ListMostLiked(page, limit)
	if err != nil {
		WriteServiceError(c, err, "获取热门图片失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"images":     images,
		"pagination": pagination,
	})
}
