//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"loginhub/internal/domain/company"
	"loginhub/internal/domain/user"
	"loginhub/internal/infra"
	"loginhub/internal/pkg/clock"
	"loginhub/internal/pkg/jwt"
	"loginhub/internal/usecase"
	usecasemock "loginhub/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mintToken(t *testing.T, svc *jwt.Service, userID, companyID uuid.UUID) string {
	t.Helper()
	token, err := svc.GenerateToken(userID, "test@example.com", companyID, user.RoleAdmin)
	require.NoError(t, err)
	return token
}

func TestAuthorize_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := usecasemock.NewMockCompanyStatusReader(ctrl)

	jwtService := jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	userID := uuid.New()
	companyID := uuid.New()
	token := mintToken(t, jwtService, userID, companyID)

	companies.EXPECT().FindStatusByID(gomock.Any(), companyID).Return(company.StatusActive, nil)

	authorizer := usecase.NewAuthorizer(jwtService, companies)
	identity, err := authorizer.Authorize(context.Background(), token)
	require.NoError(t, err)

	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, "test@example.com", identity.Email)
	assert.Equal(t, companyID, identity.CompanyID)
	assert.Equal(t, "admin", identity.Role)
}

// A token minted while the company was active dies the moment the company
// is suspended: status is read live, not from the claims.
func TestAuthorize_SuspensionAfterMint(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := usecasemock.NewMockCompanyStatusReader(ctrl)

	jwtService := jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	companyID := uuid.New()
	token := mintToken(t, jwtService, uuid.New(), companyID)

	authorizer := usecase.NewAuthorizer(jwtService, companies)

	companies.EXPECT().FindStatusByID(gomock.Any(), companyID).Return(company.StatusActive, nil)
	_, err := authorizer.Authorize(context.Background(), token)
	require.NoError(t, err)

	companies.EXPECT().FindStatusByID(gomock.Any(), companyID).Return(company.StatusInactive, nil)
	_, err = authorizer.Authorize(context.Background(), token)
	assert.ErrorIs(t, err, usecase.ErrCompanySuspended)

	companies.EXPECT().FindStatusByID(gomock.Any(), companyID).Return(company.StatusActive, nil)
	_, err = authorizer.Authorize(context.Background(), token)
	assert.NoError(t, err)
}

func TestAuthorize_UnknownCompany(t *testing.T) {
	ctrl := gomock.NewController(t)
	companies := usecasemock.NewMockCompanyStatusReader(ctrl)

	jwtService := jwt.NewService("test-secret", time.Hour, clock.NewRealClock())
	companyID := uuid.New()
	token := mintToken(t, jwtService, uuid.New(), companyID)

	companies.EXPECT().FindStatusByID(gomock.Any(), companyID).
		Return(company.Status(""), infra.WrapRepoErr("company not found", nil, infra.KindNotFound))

	authorizer := usecase.NewAuthorizer(jwtService, companies)
	_, err := authorizer.Authorize(context.Background(), token)
	assert.ErrorIs(t, err, usecase.ErrUnknownCompany)
}

func TestAuthorize_BadTokens(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour, clock.NewRealClock())

	expiredService := jwt.NewService("test-secret", time.Hour, clock.NewMockClock(time.Now().Add(-2*time.Hour)))
	expiredToken := mintToken(t, expiredService, uuid.New(), uuid.New())

	foreignService := jwt.NewService("another-secret", time.Hour, clock.NewRealClock())
	foreignToken := mintToken(t, foreignService, uuid.New(), uuid.New())

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-token"},
		{name: "empty", token: ""},
		{name: "expired", token: expiredToken},
		{name: "wrong signing key", token: foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			// The status reader must never be consulted for a bad token
			companies := usecasemock.NewMockCompanyStatusReader(ctrl)

			authorizer := usecase.NewAuthorizer(jwtService, companies)
			_, err := authorizer.Authorize(context.Background(), tt.token)
			assert.ErrorIs(t, err, usecase.ErrTokenValidation)
		})
	}
}
