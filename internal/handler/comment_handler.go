package handler

import (
	"net/http"
	"strconv"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/middleware"
	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateComment 发表评论。登录用户直接用账号身份；
// 匿名评论必须携带 author_name 和 author_email
func (h *Handler) CreateComment(c *gin.Context) {
	imageID := c.Param("id")

	var req struct {
		Content     string `json:"content" binding:"required,max=500"`
		AuthorName  string `json:"author_name" binding:"max=100"`
		AuthorEmail string `json:"author_email" binding:"omitempty,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	userID := middleware.CurrentUserID(c)
	if userID == nil && (req.AuthorName == "" || req.AuthorEmail == "") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "匿名评论需要填写昵称和邮箱"})
		return
	}

	comment, err := h.service.Comments.CreateComment(c.Request.Context(), service.CreateCommentParams{
		ImageID:     imageID,
		UserID:      userID,
		AuthorName:  req.AuthorName,
		AuthorEmail: req.AuthorEmail,
		Content:     req.Content,
	})
	if err != nil {
		WriteServiceError(c, err, "发表评论失败")
		return
	}

	c.JSON(http.StatusCreated, comment)
}

func (h *Handler) GetComments(c *gin.Context) {
	imageID := c.Param("id")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	comments, pagination, err := h.service.Comments.ListComments(imageID, page, limit)
	if err != nil {
		WriteServiceError(c, err, "获取评论失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       comments,
		"pagination": pagination,
	})
}

func (h *Handler) UpdateComment(c *gin.Context) {
	commentID := c.Param("commentId")
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	var req struct {
		Content string `json:"content" binding:"required,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	comment, err := h.service.Comments.UpdateComment(commentID, *userID, req.Content)
	if err != nil {
		WriteServiceError(c, err, "修改评论失败")
		return
	}

	c.JSON(http.StatusOK, comment)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	commentID := c.Param("commentId")
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	if err := h.service.Comments.DeleteComment(commentID, *userID); err != nil {
		WriteServiceError(c, err, "删除评论失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// GetMyComments 当前用户发表过的评论
func (h *Handler) GetMyComments(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	comments, pagination, err := h.service.Comments.ListUserComments(*userID, page, limit)
	if err != nil {
		WriteServiceError(c, err, "获取评论失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":       comments,
		"pagination": pagination,
	})
}
