//go:build unit || e2e

package builder

import (
	"time"

	"loginhub/internal/domain/user"
	"loginhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name          string
	Email         string
	PasswordHash  string
	Role          string
	Phone         *string
	CompanyID     uuid.UUID
	CompanyName   string
	CompanyStatus string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:          "Test User",
		Email:         "test@example.com",
		PasswordHash:  "$2a$10$abcdefghijklmnopqrstuv",
		Role:          "admin",
		CompanyID:     uuid.New(),
		CompanyName:   "Test Company",
		CompanyStatus: "active",
	}
}

func (u *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(u.CompanyID, u.Name, email, u.PasswordHash, role, u.Phone), nil
}

// BuildReadModel returns the login join row as the read store produces it.
func (u *UserBuilder) BuildReadModel() *readmodel.AuthenticatedUser {
	return &readmodel.AuthenticatedUser{
		ID:            uuid.New(),
		Name:          u.Name,
		Email:         u.Email,
		Role:          u.Role,
		CompanyID:     u.CompanyID,
		CompanyName:   u.CompanyName,
		CompanyStatus: u.CompanyStatus,
	}
}

func (u *UserBuilder) BuildView() readmodel.UserView {
	return readmodel.UserView{
		ID:        uuid.New(),
		CompanyID: u.CompanyID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: time.Now(),
	}
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithPhone(phone string) *UserBuilder {
	u.Phone = &phone
	return u
}

func (u *UserBuilder) WithCompanyID(companyID uuid.UUID) *UserBuilder {
	u.CompanyID = companyID
	return u
}

func (u *UserBuilder) WithSuspendedCompany() *UserBuilder {
	u.CompanyStatus = "inactive"
	return u
}
