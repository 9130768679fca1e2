//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"

	"loginhub/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123", precomputed so fixtures skip the hash cost
const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

const TestPassword = "password123"

func CreateTestCompany(t *testing.T, db DBLike, name, taxDocument, email string) uuid.UUID {
	t.Helper()

	companyID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO companies (id, name, tax_document, email) VALUES ($1, $2, $3, $4) ON CONFLICT (tax_document) DO NOTHING",
		companyID, name, taxDocument, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t,
			db.QueryRow(ctx, "SELECT id FROM companies WHERE tax_document = $1", taxDocument).Scan(&companyID))
	}

	return companyID
}

func CreateTestUser(t *testing.T, db DBLike, companyID uuid.UUID, name, email string, role user.Role) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, company_id, role_id, name, email, password_hash) VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (email) DO NOTHING",
		userID, companyID, role.ID(), name, email, TestPasswordHash)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t,
			db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

func SetCompanyStatus(t *testing.T, db DBLike, companyID uuid.UUID, status string) {
	t.Helper()

	_, err := db.Exec(context.Background(),
		"UPDATE companies SET status = $1, updated_at = NOW() WHERE id = $2", status, companyID)
	require.NoError(t, err)
}

// SeedReferenceData makes sure the role lookup exists; the migration seeds
// it, so this is a no-op on a freshly migrated database.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx,
		"INSERT INTO roles (id, slug) VALUES (1, 'admin'), (2, 'member') ON CONFLICT (id) DO NOTHING")
	return err
}

// ResetDB truncates mutable state between subtests. The roles lookup is
// reference data and survives.
func ResetDB(pool *pgxpool.Pool) error {
	ctx := context.Background()
	_, err := pool.Exec(ctx, "TRUNCATE TABLE users, companies CASCADE")
	return err
}
