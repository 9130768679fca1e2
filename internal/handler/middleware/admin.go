package middleware

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"loginhub/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const masterKeyHeader = "X-Api-Key"

type AdminMiddleware struct {
	masterKey string
}

func NewAdminMiddleware(cfg config.Config) *AdminMiddleware {
	return &AdminMiddleware{
		masterKey: cfg.Admin.MasterKey,
	}
}

// RequireMasterKey gates the tenant-administration surface behind a single
// shared secret. A server without the secret configured refuses every admin
// request: fail closed, never fail open.
func (m *AdminMiddleware) RequireMasterKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.masterKey == "" {
			slog.Error("MASTER_API_KEY is not configured; refusing admin request",
				"path", c.Request.URL.Path)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Internal configuration error",
				"message": "The security subsystem was not initialized correctly",
			})
			c.Abort()
			return
		}

		apiKey := c.GetHeader(masterKeyHeader)
		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.masterKey)) != 1 {
			slog.Warn("admin access denied",
				"client_ip", c.ClientIP(),
				"key_present", apiKey != "")
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Forbidden",
				"message": "Master credential missing or invalid",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
