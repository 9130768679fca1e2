package request

import (
	"loginhub/internal/usecase"

	"github.com/google/uuid"
)

// Wire vocabulary follows the public API contract (empresa/nome/telefone);
// Go names stay English.

type RegisterCompanyRequest struct {
	Name        string  `json:"nome" binding:"required"`
	TaxDocument string  `json:"documento" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	Phone       *string `json:"telefone"`
	AdminName   string  `json:"admin_nome" binding:"required"`
	AdminEmail  string  `json:"admin_email" binding:"required,email"`
	AdminPhone  *string `json:"admin_telefone"`
	AdminPass   string  `json:"admin_senha" binding:"required,min=8"`
}

func (r *RegisterCompanyRequest) ToCommand() usecase.RegisterCompanyCommand {
	return usecase.RegisterCompanyCommand{
		CompanyName:  r.Name,
		TaxDocument:  r.TaxDocument,
		CompanyEmail: r.Email,
		CompanyPhone: r.Phone,
		AdminName:    r.AdminName,
		AdminEmail:   r.AdminEmail,
		AdminPhone:   r.AdminPhone,
		AdminPass:    r.AdminPass,
	}
}

type AddUserRequest struct {
	CompanyID uuid.UUID `json:"empresa_id" binding:"required"`
	Name      string    `json:"nome"`
	Email     string    `json:"email" binding:"required,email"`
	Password  string    `json:"password" binding:"required,min=8"`
	Role      string    `json:"role" binding:"omitempty,oneof=admin member"`
	Phone     *string   `json:"telefone"`
}

func (r *AddUserRequest) ToCommand() usecase.AddUserCommand {
	return usecase.AddUserCommand{
		CompanyID: r.CompanyID,
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		Role:      r.Role,
		Phone:     r.Phone,
	}
}

type UpdateCompanyStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}
