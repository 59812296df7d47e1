package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jarradburge/optivana-vanthex-monorepo/models"
	"github.com/jarradburge/optivana-vanthex-monorepo/utils"
)

// AuthMiddleware validates JWT token from cookie or Authorization header
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		// Try to get token from cookie first
		if cookieToken, err := c.Cookie("auth_token"); err == nil && cookieToken != "" {
			token = cookieToken
		} else {
			authHeader := c.GetHeader("Authorization")
			if authHeader == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Authorization header required"))
				return
			}
			headerToken, err := utils.ExtractTokenFromHeader(authHeader)
			if err != nil || strings.ContainsRune(headerToken, ' ') {
				c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid authorization header format"))
				return
			}
			token = headerToken
		}

		claims, err := utils.ValidateJWT(secret, token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			return
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil || userID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid or expired token"))
			return
		}

		c.Set("userID", userID)
		c.Set("userEmail", claims.Email)
		c.Set("userName", claims.Name)

		c.Next()
	}
}
