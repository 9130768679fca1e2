package readmodel

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticatedUser is the login join row: user + owning company + resolved
// role. The password hash travels next to it, never inside it.
type AuthenticatedUser struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"nome"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	CompanyID     uuid.UUID `json:"-"`
	CompanyName   string    `json:"-"`
	CompanyStatus string    `json:"-"`
}

type UserView struct {
	ID          uuid.UUID  `json:"id"`
	CompanyID   uuid.UUID  `json:"empresa_id"`
	Name        string     `json:"nome"`
	Email       string     `json:"email"`
	Phone       *string    `json:"telefone,omitempty"`
	Role        string     `json:"role"`
	LastLoginAt *time.Time `json:"ultimo_acesso,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Identity is what the authorization middleware attaches to the request
// context after the token and the live tenant status both check out.
type Identity struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	CompanyID uuid.UUID `json:"company_id"`
	Role      string    `json:"role"`
}
