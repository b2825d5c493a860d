package middleware

import (
	"net/http"
	"strings"

	"Pulse/pkg/context"
	"Pulse/pkg/jwt"
	"Pulse/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "未登录")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Next()
	}
}

// OptionalAuth 能解出身份就注入 user_id，匿名请求照常放行
// 只读接口用它：匿名可以看计数和列表，只是永远不会"我已点赞"
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, secret); ok {
			c.Set(context.CtxUserID, claims.UserID)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims, err := jwt.ParseToken(secret, "access", parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
