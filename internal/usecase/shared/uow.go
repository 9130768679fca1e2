package shared

import (
	"context"

	"loginhub/internal/domain/company"
	"loginhub/internal/domain/user"
	"loginhub/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes every transactional write: the connection is acquired,
// the work runs, and the transaction is rolled back on any error path and
// committed on success. No partial write is ever observable.
type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Companies() CompanyRepository
	Users() UserRepository
	DB() db.DBTX
}

type CompanyRepository interface {
	Create(ctx context.Context, db db.DBTX, c *company.Company) (uuid.UUID, error)
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, status company.Status) (int64, error)
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) (int64, error)
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, u *user.User) (uuid.UUID, error)
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) (int64, error)
	UpdateLastLogin(ctx context.Context, db db.DBTX, id uuid.UUID) error
}
