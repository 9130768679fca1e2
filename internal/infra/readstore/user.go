package readstore

import (
	"context"

	"loginhub/internal/domain/user"
	"loginhub/internal/infra"
	"loginhub/internal/pkg/pgconv"
	"loginhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	pool *pgxpool.Pool
}

func NewUserReadStore(pool *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{
		pool: pool,
	}
}

const findUserByEmailSQL = `
	SELECT u.id, u.name, u.email, u.password_hash, u.role_id, u.company_id,
	       c.name AS company_name, c.status AS company_status
	FROM users u
	JOIN companies c ON c.id = u.company_id
	WHERE u.email = $1
	LIMIT 1`

// FindByEmailWithCompany returns the login join row together with the stored
// password hash. The hash stays out of the read model so it can never be
// serialized outward by accident.
func (r *UserReadStore) FindByEmailWithCompany(ctx context.Context, email string) (*readmodel.AuthenticatedUser, string, error) {
	var (
		rm           readmodel.AuthenticatedUser
		passwordHash string
		roleID       int16
	)
	err := r.pool.QueryRow(ctx, findUserByEmailSQL, email).Scan(
		&rm.ID, &rm.Name, &rm.Email, &passwordHash, &roleID, &rm.CompanyID,
		&rm.CompanyName, &rm.CompanyStatus,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	role, err := user.RoleFromID(roleID)
	if err != nil {
		return nil, "", infra.WrapRepoErr("unknown role id", err)
	}
	rm.Role = role.String()

	return &rm, passwordHash, nil
}

const listUsersSQL = `
	SELECT u.id, u.company_id, u.role_id, u.name, u.email, u.phone, u.last_login_at, u.created_at
	FROM users u`

func (r *UserReadStore) ListAll(ctx context.Context) ([]readmodel.UserView, error) {
	rows, err := r.pool.Query(ctx, listUsersSQL+` ORDER BY u.created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	return scanUserViews(rows)
}

func (r *UserReadStore) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]readmodel.UserView, error) {
	rows, err := r.pool.Query(ctx, listUsersSQL+` WHERE u.company_id = $1 ORDER BY u.name ASC`, companyID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users by company", err)
	}
	defer rows.Close()

	return scanUserViews(rows)
}

type userRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanUserViews(rows userRows) ([]readmodel.UserView, error) {
	views := []readmodel.UserView{}
	for rows.Next() {
		var (
			v         readmodel.UserView
			roleID    int16
			phone     pgtype.Text
			lastLogin pgtype.Timestamptz
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.CompanyID, &roleID, &v.Name, &v.Email, &phone, &lastLogin, &createdAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}

		role, err := user.RoleFromID(roleID)
		if err != nil {
			return nil, infra.WrapRepoErr("unknown role id", err)
		}
		v.Role = role.String()
		v.Phone = pgconv.StringPtrFromPgtype(phone)
		v.LastLoginAt = pgconv.TimePtrFromPgtype(lastLogin)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)

		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return views, nil
}
