package handler

import (
	"net/http"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Signup(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required,min=3,max=32"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8,max=72"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	user, token, err := h.service.Auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		WriteServiceError(c, err, "注册失败，请稍后重试")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "参数错误"})
		return
	}

	user, token, err := h.service.Auth.Login(req.Email, req.Password)
	if err != nil {
		WriteServiceError(c, err, "登录失败，请稍后重试")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  user,
		"token": token,
	})
}

// Me 返回当前登录用户信息
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.CurrentUserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "未获取到用户信息"})
		return
	}

	user, err := h.service.Auth.GetUser(*userID)
	if err != nil {
		WriteServiceError(c, err, "获取用户失败")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
