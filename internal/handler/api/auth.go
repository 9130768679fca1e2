package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "loginhub/internal/handler/dto/request"
	resdto "loginhub/internal/handler/dto/response"
	"loginhub/internal/handler/middleware"
	"loginhub/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
}

func NewAuthHandler(authUseCase usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

// @Summary User login
// @Description Login with email and password; the owning company must be active
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	credentials, err := req.ToDomain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request data",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), credentials)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, usecase.ErrCompanySuspended):
			c.JSON(http.StatusForbidden, gin.H{
				"error":   "Access blocked",
				"message": "Your organization's access has been suspended",
			})
		default:
			slog.Error("login failed", "error", err.Error())
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.NewLoginResponse(result))
}

// @Summary User logout
// @Description Tokens are stateless; the caller discards the token client-side
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.MessageResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	// No server-side revocation: acknowledge and instruct the client to
	// discard the token.
	c.JSON(http.StatusOK, resdto.MessageResponse{
		Message: "Logged out; discard the token on the client",
	})
}

// @Summary Get current identity
// @Description Identity claims of the authenticated user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} readmodel.Identity
// @Failure 401 {object} map[string]string
// @Router /api/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	c.JSON(http.StatusOK, identity)
}
