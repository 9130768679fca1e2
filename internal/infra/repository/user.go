package repository

import (
	"context"

	"loginhub/internal/domain/user"
	"loginhub/internal/infra"
	"loginhub/internal/infra/db"
	"loginhub/internal/pkg/pgconv"
	"loginhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

var _ shared.UserRepository = (*UserRepository)(nil)

const insertUserSQL = `
	INSERT INTO users (id, company_id, role_id, name, email, password_hash, phone)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING id`

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertUserSQL,
		u.ID(), u.CompanyID(), u.Role().ID(), u.Name(),
		u.Email().Value(), u.PasswordHash(), pgconv.StringPtrToPgtype(u.Phone()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert user", err)
	}
	return id, nil
}

func (r *UserRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete user", err)
	}
	return tag.RowsAffected(), nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, dbtx db.DBTX, id uuid.UUID) error {
	_, err := dbtx.Exec(ctx, `UPDATE users SET last_login_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}
