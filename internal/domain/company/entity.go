package company

import (
	"time"

	"github.com/google/uuid"
)

// Company is the top-level tenant. TaxDocument and Email are globally unique.
type Company struct {
	id          uuid.UUID
	name        string
	taxDocument string
	email       string
	phone       *string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// NewCompany builds a company in the onboarding default state.
func NewCompany(name, taxDocument, email string, phone *string) *Company {
	return &Company{
		id:          uuid.New(),
		name:        name,
		taxDocument: taxDocument,
		email:       email,
		phone:       phone,
		status:      StatusActive,
	}
}

func (c *Company) ID() uuid.UUID        { return c.id }
func (c *Company) Name() string         { return c.name }
func (c *Company) TaxDocument() string  { return c.taxDocument }
func (c *Company) Email() string        { return c.email }
func (c *Company) Phone() *string       { return c.phone }
func (c *Company) Status() Status       { return c.status }
func (c *Company) CreatedAt() time.Time { return c.createdAt }
func (c *Company) UpdatedAt() time.Time { return c.updatedAt }
