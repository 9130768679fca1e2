//go:build unit

package password_test

import (
	"testing"

	"loginhub/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndComparePassword(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "password123", hash)

	assert.NoError(t, password.ComparePassword(hash, "password123"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong-password"), password.ErrComparisonFailed)
}

func TestHashPassword_Empty(t *testing.T) {
	_, err := password.HashPassword("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}

func TestComparePassword_EmptyInputs(t *testing.T) {
	hash, err := password.HashPassword("password123")
	require.NoError(t, err)

	assert.ErrorIs(t, password.ComparePassword("", "password123"), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.ComparePassword(hash, ""), password.ErrInvalidPassword)
}

func TestComparePassword_NotAHash(t *testing.T) {
	err := password.ComparePassword("not-a-bcrypt-hash", "password123")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, password.ErrComparisonFailed)
}
