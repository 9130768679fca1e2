//go:build unit

package company_test

import (
	"testing"

	"loginhub/internal/domain/company"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   company.Status
		active bool
		errIs  error
	}{
		{name: "active", input: "active", want: company.StatusActive, active: true},
		{name: "inactive", input: "inactive", want: company.StatusInactive},
		{name: "unknown status", input: "suspended", errIs: company.ErrInvalidStatus},
		{name: "empty", input: "", errIs: company.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, err := company.NewStatus(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
			assert.Equal(t, tt.active, status.IsActive())
		})
	}
}

func TestNewCompany(t *testing.T) {
	phone := "+55 11 99999-0000"
	c := company.NewCompany("Acme Corp", "12.345.678/0001-90", "contact@acme.example", &phone)

	assert.NotEqual(t, uuid.Nil, c.ID())
	assert.Equal(t, "Acme Corp", c.Name())
	assert.Equal(t, "12.345.678/0001-90", c.TaxDocument())
	assert.Equal(t, "contact@acme.example", c.Email())
	require.NotNil(t, c.Phone())
	assert.Equal(t, phone, *c.Phone())
	assert.Equal(t, company.StatusActive, c.Status())
}
