package response

import (
	"github.com/google/uuid"
)

type CompanyOnboardedResponse struct {
	Message    string    `json:"message"`
	CompanyID  uuid.UUID `json:"empresaId"`
	AdminEmail string    `json:"adminEmail"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
