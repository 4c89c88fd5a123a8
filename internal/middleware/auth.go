package middleware

import (
	"net/http"
	"strings"

	"fintrack/config"
	"fintrack/internal/auth"

	"github.com/gin-gonic/gin"
)

// TokenCookie is the name of the httpOnly cookie carrying the JWT.
const TokenCookie = "token"

// AuthRequired validates the JWT and sets the user id in the request
// context. The token is read from the auth cookie first, then from an
// Authorization: Bearer header for non-browser clients.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string
		if cookie, err := c.Cookie(TokenCookie); err == nil {
			tokenStr = cookie
		}
		if tokenStr == "" {
			header := c.GetHeader("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				tokenStr = parts[1]
			}
		}
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized: no token"})
			return
		}
		claims, err := auth.ParseToken(cfg, tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized: invalid or expired token"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// GetUserID returns the authenticated user ID from context (must be used after AuthRequired).
func GetUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}
