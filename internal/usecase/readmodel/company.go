package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type CompanyView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"nome"`
	TaxDocument string    `json:"documento"`
	Email       string    `json:"email"`
	Phone       *string   `json:"telefone,omitempty"`
	Status      string    `json:"status"`
	TotalUsers  int       `json:"total_usuarios"`
	CreatedAt   time.Time `json:"created_at"`
}
