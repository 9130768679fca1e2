//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"loginhub/internal/domain/user"
	"loginhub/internal/pkg/clock"
	"loginhub/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-for-unit-tests"

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.NewService(testSecret, time.Hour, clock.NewMockClock(time.Now()))

	userID := uuid.New()
	companyID := uuid.New()

	token, err := svc.GenerateToken(userID, "test@example.com", companyID, user.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, companyID, claims.CompanyID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestValidateToken_Expired(t *testing.T) {
	// Mint in the past so the token is already beyond its lifetime
	clk := clock.NewMockClock(time.Now().Add(-2 * time.Hour))
	svc := jwt.NewService(testSecret, time.Hour, clk)

	token, err := svc.GenerateToken(uuid.New(), "test@example.com", uuid.New(), user.RoleMember)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	now := time.Now()
	svc := jwt.NewService(testSecret, time.Hour, clock.NewMockClock(now))
	other := jwt.NewService("a-completely-different-secret", time.Hour, clock.NewMockClock(now))

	token, err := svc.GenerateToken(uuid.New(), "test@example.com", uuid.New(), user.RoleAdmin)
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateToken_Malformed(t *testing.T) {
	svc := jwt.NewService(testSecret, time.Hour, clock.NewMockClock(time.Now()))

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "not a token", token: "garbage"},
		{name: "truncated token", token: "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.ErrorIs(t, err, jwt.ErrInvalidToken)
		})
	}
}

func TestTokenDuration(t *testing.T) {
	svc := jwt.NewService(testSecret, 24*time.Hour, clock.NewRealClock())
	assert.Equal(t, 24*time.Hour, svc.TokenDuration())
}
