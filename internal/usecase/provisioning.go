package usecase

import (
	"context"

	"loginhub/internal/domain/company"
	"loginhub/internal/domain/user"
	"loginhub/internal/infra"
	"loginhub/internal/pkg/errs"
	"loginhub/internal/pkg/password"
	"loginhub/internal/usecase/readmodel"
	"loginhub/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrMissingField           = errs.New("missing required field")
	ErrDuplicateCompanyOrUser = errs.New("company document or email already registered")
	ErrDuplicateEmail         = errs.New("email already in use")
	ErrCompanyNotFound        = errs.New("company not found")
	ErrUserNotFound           = errs.New("user not found")
	ErrUserHasDependents      = errs.New("user has dependent records")
	ErrCompanyHasUsers        = errs.New("company still has users")
)

// MissingFieldError names the field that failed required-field validation.
type MissingFieldError struct {
	Field string
}

func (e MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

func missingField(field string) error {
	return errs.Mark(MissingFieldError{Field: field}, ErrMissingField)
}

type RegisterCompanyCommand struct {
	CompanyName  string
	TaxDocument  string
	CompanyEmail string
	CompanyPhone *string
	AdminName    string
	AdminEmail   string
	AdminPhone   *string
	AdminPass    string
}

type CompanyOnboarded struct {
	CompanyID  uuid.UUID
	AdminEmail string
}

type AddUserCommand struct {
	CompanyID uuid.UUID
	Name      string
	Email     string
	Password  string
	Role      string
	Phone     *string
}

type CompanyReadStore interface {
	CompanyStatusReader
	ListAll(ctx context.Context) ([]readmodel.CompanyView, error)
}

type UserDirectory interface {
	ListAll(ctx context.Context) ([]readmodel.UserView, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]readmodel.UserView, error)
}

type ProvisioningUseCase interface {
	RegisterCompany(ctx context.Context, cmd RegisterCompanyCommand) (*CompanyOnboarded, error)
	AddUser(ctx context.Context, cmd AddUserCommand) error
	RemoveUser(ctx context.Context, userID uuid.UUID) error
	ListCompanies(ctx context.Context) ([]readmodel.CompanyView, error)
	UpdateCompanyStatus(ctx context.Context, companyID uuid.UUID, status company.Status) error
	DeleteCompany(ctx context.Context, companyID uuid.UUID) error
	ListUsers(ctx context.Context) ([]readmodel.UserView, error)
	ListUsersByCompany(ctx context.Context, companyID uuid.UUID) ([]readmodel.UserView, error)
}

type provisioningUseCaseImpl struct {
	uow       shared.UnitOfWork
	companies CompanyReadStore
	users     UserDirectory
}

func NewProvisioningUseCase(uow shared.UnitOfWork, companies CompanyReadStore, users UserDirectory) ProvisioningUseCase {
	return &provisioningUseCaseImpl{
		uow:       uow,
		companies: companies,
		users:     users,
	}
}

// RegisterCompany creates the company and its first admin in one
// transaction: no company-without-admin or admin-without-company is ever
// observably persisted.
func (p *provisioningUseCaseImpl) RegisterCompany(ctx context.Context, cmd RegisterCompanyCommand) (*CompanyOnboarded, error) {
	adminEmail, err := user.NewEmail(cmd.AdminEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrMissingField)
	}
	adminPass, err := user.NewPassword(cmd.AdminPass)
	if err != nil {
		return nil, errs.Mark(err, ErrMissingField)
	}

	// Hashing happens before the transaction opens
	passwordHash, err := password.HashPassword(adminPass.Value())
	if err != nil {
		return nil, err
	}

	newCompany := company.NewCompany(cmd.CompanyName, cmd.TaxDocument, cmd.CompanyEmail, cmd.CompanyPhone)
	admin := user.NewUser(newCompany.ID(), cmd.AdminName, adminEmail, passwordHash, user.RoleAdmin, cmd.AdminPhone)

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Companies().Create(ctx, tx.DB(), newCompany); err != nil {
			return err
		}
		if _, err := tx.Users().Create(ctx, tx.DB(), admin); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateCompanyOrUser)
		}
		return nil, err
	}

	return &CompanyOnboarded{
		CompanyID:  newCompany.ID(),
		AdminEmail: adminEmail.Value(),
	}, nil
}

func (p *provisioningUseCaseImpl) AddUser(ctx context.Context, cmd AddUserCommand) error {
	if cmd.CompanyID == uuid.Nil {
		return missingField("empresa_id")
	}
	if cmd.Email == "" {
		return missingField("email")
	}
	if cmd.Password == "" {
		return missingField("password")
	}

	email, err := user.NewEmail(cmd.Email)
	if err != nil {
		return errs.Mark(err, ErrMissingField)
	}
	pass, err := user.NewPassword(cmd.Password)
	if err != nil {
		return errs.Mark(err, ErrMissingField)
	}

	// Role defaults to member when omitted
	role := user.RoleMember
	if cmd.Role != "" {
		role, err = user.NewRole(cmd.Role)
		if err != nil {
			return errs.Mark(err, ErrMissingField)
		}
	}

	passwordHash, err := password.HashPassword(pass.Value())
	if err != nil {
		return err
	}

	newUser := user.NewUser(cmd.CompanyID, cmd.Name, email, passwordHash, role, cmd.Phone)

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Users().Create(ctx, tx.DB(), newUser)
		return err
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return errs.Mark(err, ErrDuplicateEmail)
		case infra.IsKind(err, infra.KindForeignKeyViolated):
			return errs.Mark(err, ErrCompanyNotFound)
		}
		return err
	}
	return nil
}

// RemoveUser runs inside a transaction so dependent-record cleanup can be
// added without changing callers.
func (p *provisioningUseCaseImpl) RemoveUser(ctx context.Context, userID uuid.UUID) error {
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Users().Delete(ctx, tx.DB(), userID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrUserHasDependents)
		}
		return err
	}
	return nil
}

func (p *provisioningUseCaseImpl) ListCompanies(ctx context.Context) ([]readmodel.CompanyView, error) {
	return p.companies.ListAll(ctx)
}

// UpdateCompanyStatus is the tenant kill-switch: flipping to inactive blocks
// every login and every in-flight token of the company's users.
func (p *provisioningUseCaseImpl) UpdateCompanyStatus(ctx context.Context, companyID uuid.UUID, status company.Status) error {
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Companies().UpdateStatus(ctx, tx.DB(), companyID, status)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrCompanyNotFound
		}
		return nil
	})
}

func (p *provisioningUseCaseImpl) DeleteCompany(ctx context.Context, companyID uuid.UUID) error {
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Companies().Delete(ctx, tx.DB(), companyID)
		if err != nil {
			return err
		}
		if n == 0 {
			return ErrCompanyNotFound
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindForeignKeyViolated) {
			return errs.Mark(err, ErrCompanyHasUsers)
		}
		return err
	}
	return nil
}

func (p *provisioningUseCaseImpl) ListUsers(ctx context.Context) ([]readmodel.UserView, error) {
	return p.users.ListAll(ctx)
}

func (p *provisioningUseCaseImpl) ListUsersByCompany(ctx context.Context, companyID uuid.UUID) ([]readmodel.UserView, error) {
	return p.users.ListByCompany(ctx, companyID)
}
