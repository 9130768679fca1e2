package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"loginhub/internal/usecase"
	"loginhub/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
)

const ctxIdentityKey = "identity"

type AuthMiddleware struct {
	authorizer usecase.Authorizer
}

func NewAuthMiddleware(authorizer usecase.Authorizer) *AuthMiddleware {
	return &AuthMiddleware{
		authorizer: authorizer,
	}
}

// RequireAuth authenticates the bearer token and re-validates the owning
// company's status on every request before letting the handler run.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		identity, err := m.authorizer.Authorize(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, usecase.ErrTokenValidation):
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Invalid or expired token",
				})
			case errors.Is(err, usecase.ErrUnknownCompany):
				c.JSON(http.StatusUnauthorized, gin.H{
					"error": "Company linked to token not found",
				})
			case errors.Is(err, usecase.ErrCompanySuspended):
				c.JSON(http.StatusForbidden, gin.H{
					"error":   "Access blocked",
					"message": "Your organization's access has been suspended",
				})
			default:
				slog.Error("authorization failed in auth middleware", "error", err.Error())
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
			c.Abort()
			return
		}

		c.Set(ctxIdentityKey, identity)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetIdentity(c *gin.Context) (*readmodel.Identity, bool) {
	value, exists := c.Get(ctxIdentityKey)
	if !exists {
		return nil, false
	}

	identity, ok := value.(*readmodel.Identity)
	return identity, ok
}
