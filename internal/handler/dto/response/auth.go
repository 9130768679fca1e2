package response

import (
	"loginhub/internal/usecase"

	"github.com/google/uuid"
)

type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"nome"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type CompanySummary struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"nome"`
	Status string    `json:"status"`
}

type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresIn int64          `json:"expiresIn"`
	User      UserSummary    `json:"usuario"`
	Company   CompanySummary `json:"empresa"`
}

func NewLoginResponse(result *usecase.LoginResult) LoginResponse {
	return LoginResponse{
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
		User: UserSummary{
			ID:    result.User.ID,
			Name:  result.User.Name,
			Email: result.User.Email,
			Role:  result.User.Role,
		},
		Company: CompanySummary{
			ID:     result.User.CompanyID,
			Name:   result.User.CompanyName,
			Status: result.User.CompanyStatus,
		},
	}
}
