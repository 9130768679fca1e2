//go:build unit || e2e

package builder

import (
	"time"

	"loginhub/internal/domain/company"
	"loginhub/internal/usecase"
	"loginhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CompanyBuilder struct {
	Name        string
	TaxDocument string
	Email       string
	Phone       *string
	Status      string
	AdminName   string
	AdminEmail  string
	AdminPhone  *string
	AdminPass   string
}

func NewCompanyBuilder() *CompanyBuilder {
	return &CompanyBuilder{
		Name:        "Acme Corp",
		TaxDocument: "12.345.678/0001-90",
		Email:       "contact@acme.example",
		Status:      "active",
		AdminName:   "Acme Admin",
		AdminEmail:  "admin@acme.example",
		AdminPass:   "password123",
	}
}

func (c *CompanyBuilder) BuildDomain() *company.Company {
	return company.NewCompany(c.Name, c.TaxDocument, c.Email, c.Phone)
}

func (c *CompanyBuilder) BuildCommand() usecase.RegisterCompanyCommand {
	return usecase.RegisterCompanyCommand{
		CompanyName:  c.Name,
		TaxDocument:  c.TaxDocument,
		CompanyEmail: c.Email,
		CompanyPhone: c.Phone,
		AdminName:    c.AdminName,
		AdminEmail:   c.AdminEmail,
		AdminPhone:   c.AdminPhone,
		AdminPass:    c.AdminPass,
	}
}

func (c *CompanyBuilder) BuildView() readmodel.CompanyView {
	return readmodel.CompanyView{
		ID:          uuid.New(),
		Name:        c.Name,
		TaxDocument: c.TaxDocument,
		Email:       c.Email,
		Phone:       c.Phone,
		Status:      c.Status,
		TotalUsers:  1,
		CreatedAt:   time.Now(),
	}
}

// Fluent builder methods
func (c *CompanyBuilder) WithName(name string) *CompanyBuilder {
	c.Name = name
	return c
}

func (c *CompanyBuilder) WithTaxDocument(doc string) *CompanyBuilder {
	c.TaxDocument = doc
	return c
}

func (c *CompanyBuilder) WithEmail(email string) *CompanyBuilder {
	c.Email = email
	return c
}

func (c *CompanyBuilder) WithAdminEmail(email string) *CompanyBuilder {
	c.AdminEmail = email
	return c
}

func (c *CompanyBuilder) WithAdminPass(pass string) *CompanyBuilder {
	c.AdminPass = pass
	return c
}

func (c *CompanyBuilder) AsInactive() *CompanyBuilder {
	c.Status = "inactive"
	return c
}
