package usecase

import (
	"context"

	"loginhub/internal/domain/company"
	"loginhub/internal/domain/user"
	"loginhub/internal/infra"
	"loginhub/internal/pkg/errs"
	"loginhub/internal/pkg/jwt"
	"loginhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrTokenValidation = errs.New("token validation failed")
	ErrUnknownCompany  = errs.New("company linked to token not found")
)

type CompanyStatusReader interface {
	FindStatusByID(ctx context.Context, id uuid.UUID) (company.Status, error)
}

// Authorizer turns a raw bearer token into an authenticated identity.
// A cryptographically valid, unexpired token is necessary but not
// sufficient: the owning company's current status is re-checked on every
// call, so a suspension takes effect immediately for all outstanding tokens.
type Authorizer interface {
	Authorize(ctx context.Context, tokenString string) (*readmodel.Identity, error)
}

type authorizerImpl struct {
	jwtService *jwt.Service
	companies  CompanyStatusReader
}

func NewAuthorizer(jwtService *jwt.Service, companies CompanyStatusReader) Authorizer {
	return &authorizerImpl{
		jwtService: jwtService,
		companies:  companies,
	}
}

func (a *authorizerImpl) Authorize(ctx context.Context, tokenString string) (*readmodel.Identity, error) {
	claims, err := a.jwtService.ValidateToken(tokenString)
	if err != nil {
		// One undifferentiated category outward: bad signature and expiry
		// are indistinguishable to the caller.
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	if _, err := user.NewRole(claims.Role); err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	status, err := a.companies.FindStatusByID(ctx, claims.CompanyID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUnknownCompany)
		}
		return nil, err
	}

	if !status.IsActive() {
		return nil, ErrCompanySuspended
	}

	return &readmodel.Identity{
		UserID:    claims.UserID,
		Email:     claims.Email,
		CompanyID: claims.CompanyID,
		Role:      claims.Role,
	}, nil
}
