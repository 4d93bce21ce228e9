package middleware

import (
	"net/http"
	"strings"

	"handoff-address/internal/auth"
	"handoff-address/internal/errors"
	"handoff-address/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware requires a bearer token signed with secret.
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "authorization header required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid authorization header format")
			return
		}

		claims, err := auth.ValidateJWT(strings.TrimSpace(parts[1]), secret)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		// Set user info in context
		c.Set("user_id", claims.Subject)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, reason string) {
	logger.GlobalLogger.Debugf("Unauthorized request: path=%s, reason=%s", c.Request.URL.Path, reason)
	c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(errors.MsgUnauthorized, errors.ErrCodeUnauthorized))
}

func errorBody(message, code string) gin.H {
	return gin.H{
		"error": gin.H{
			"message": message,
			"code":    code,
		},
	}
}
