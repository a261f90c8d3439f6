package middleware

import (
	"net/http"
	"strings"

	"github.com/AbegundeStephen/The-Interactive-Gallery/internal/utils"

	"github.com/gin-gonic/gin"
)

// JWTAuth 强制认证：缺失或无效的 Bearer Token 直接 401
func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取请求头 Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "需要认证才能访问"})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 格式错误"})
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token 无效或已过期"})
			c.Abort()
			return
		}

		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// OptionalJWTAuth 可选认证：带有效 Token 时注入身份，否则按匿名放行。
// 匿名评论和点赞状态查询走这条链
func OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.Next()
			return
		}

		claims, err := utils.ParseLoginToken(parts[1])
		if err != nil {
			// 无效 Token 不报错，视为匿名
			c.Next()
			return
		}

		c.Set("id", claims.ID)
		c.Set("username", claims.Username)
		c.Set("email", claims.Email)
		c.Next()
	}
}

// CurrentUserID 从上下文取认证用户 ID；匿名请求返回 nil
func CurrentUserID(c *gin.Context) *uint {
	value, exists := c.Get("id")
	if !exists {
		return nil
	}
	uid, ok := value.(uint)
	if !ok {
		return nil
	}
	return &uid
}
