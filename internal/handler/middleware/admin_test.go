//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"loginhub/internal/handler/middleware"
	"loginhub/internal/pkg/config"
	commonhttptest "loginhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newAdminRouter(masterKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	cfg.Admin.MasterKey = masterKey

	router := gin.New()
	router.Use(middleware.NewAdminMiddleware(cfg).RequireMasterKey())
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return router
}

func TestRequireMasterKey(t *testing.T) {
	tests := []struct {
		name       string
		masterKey  string
		sentKey    string
		wantStatus int
	}{
		{name: "correct key", masterKey: "super-secret", sentKey: "super-secret", wantStatus: http.StatusOK},
		{name: "wrong key", masterKey: "super-secret", sentKey: "wrong", wantStatus: http.StatusForbidden},
		{name: "missing key", masterKey: "super-secret", sentKey: "", wantStatus: http.StatusForbidden},
		// Unconfigured server must refuse even the empty-key guess
		{name: "unconfigured server", masterKey: "", sentKey: "", wantStatus: http.StatusInternalServerError},
		{name: "unconfigured server with key sent", masterKey: "", sentKey: "anything", wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newAdminRouter(tt.masterKey)

			headers := map[string]string{}
			if tt.sentKey != "" {
				headers["X-Api-Key"] = tt.sentKey
			}

			w := commonhttptest.PerformRequestWithHeaders(t, router, http.MethodGet, "/protected", nil, headers)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
