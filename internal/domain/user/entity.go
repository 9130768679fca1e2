package user

import (
	"time"

	"github.com/google/uuid"
)

// User always belongs to exactly one company; companyID is immutable after
// creation. The password hash never leaves the persistence boundary.
type User struct {
	id           uuid.UUID
	companyID    uuid.UUID
	name         string
	email        Email
	passwordHash string
	role         Role
	phone        *string
	lastLoginAt  *time.Time
	createdAt    time.Time
}

func NewUser(companyID uuid.UUID, name string, email Email, passwordHash string, role Role, phone *string) *User {
	return &User{
		id:           uuid.New(),
		companyID:    companyID,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
	}
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) CompanyID() uuid.UUID    { return u.companyID }
func (u *User) Name() string            { return u.name }
func (u *User) Email() Email            { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Role() Role              { return u.role }
func (u *User) Phone() *string          { return u.phone }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
