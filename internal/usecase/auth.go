package usecase

import (
	"context"
	"log/slog"
	"time"

	"loginhub/internal/domain/company"
	"loginhub/internal/domain/user"
	"loginhub/internal/infra"
	"loginhub/internal/infra/db"
	"loginhub/internal/pkg/errs"
	"loginhub/internal/pkg/jwt"
	"loginhub/internal/pkg/password"
	"loginhub/internal/usecase/readmodel"
	"loginhub/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrCompanySuspended   = errs.New("company suspended")
	ErrTokenGeneration    = errs.New("token generation failed")
)

const lastLoginTimeout = 5 * time.Second

type UserReadStore interface {
	FindByEmailWithCompany(ctx context.Context, email string) (*readmodel.AuthenticatedUser, string, error)
}

type LoginResult struct {
	Token     string
	ExpiresIn int64
	User      *readmodel.AuthenticatedUser
}

type AuthUseCase interface {
	Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error)
}

type authUseCaseImpl struct {
	uow        shared.UnitOfWork
	users      shared.UserRepository
	readStore  UserReadStore
	jwtService *jwt.Service
}

func NewAuthUseCase(uow shared.UnitOfWork, users shared.UserRepository, readStore UserReadStore, jwtService *jwt.Service) AuthUseCase {
	return &authUseCaseImpl{
		uow:        uow,
		users:      users,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authUseCaseImpl) Login(ctx context.Context, credentials user.Credentials) (*LoginResult, error) {
	rm, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(rm.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	token, err := a.jwtService.GenerateToken(rm.ID, rm.Email, rm.CompanyID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	a.recordLastLogin(ctx, rm)

	return &LoginResult{
		Token:     token,
		ExpiresIn: int64(a.jwtService.TokenDuration().Seconds()),
		User:      rm,
	}, nil
}

func (a *authUseCaseImpl) validateUser(ctx context.Context, credentials user.Credentials) (*readmodel.AuthenticatedUser, error) {
	rm, hashedPassword, err := a.readStore.FindByEmailWithCompany(ctx, credentials.Email().Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			// Same outcome as a wrong password to prevent user enumeration
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	// Company status is checked before the password; a suspended tenant is
	// rejected without ever touching bcrypt.
	if rm.CompanyStatus != company.StatusActive.String() {
		return nil, ErrCompanySuspended
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	return rm, nil
}

// recordLastLogin is fire-and-forget: the update runs detached from the
// caller's response path, and its failure is logged, never surfaced.
func (a *authUseCaseImpl) recordLastLogin(ctx context.Context, rm *readmodel.AuthenticatedUser) {
	detached := context.WithoutCancel(ctx)
	go func() {
		ctx, cancel := context.WithTimeout(detached, lastLoginTimeout)
		defer cancel()

		err := a.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
			return a.users.UpdateLastLogin(ctx, dbtx, rm.ID)
		})
		if err != nil {
			slog.Warn("failed to update last login", "user_id", rm.ID, "error", err.Error())
		}
	}()
}
