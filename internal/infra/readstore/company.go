package readstore

import (
	"context"

	"loginhub/internal/domain/company"
	"loginhub/internal/infra"
	"loginhub/internal/pkg/pgconv"
	"loginhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CompanyReadStore struct {
	pool *pgxpool.Pool
}

func NewCompanyReadStore(pool *pgxpool.Pool) *CompanyReadStore {
	return &CompanyReadStore{
		pool: pool,
	}
}

// FindStatusByID fetches the current tenant status. Called on every
// authorized request; the status inside a token is never trusted.
func (r *CompanyReadStore) FindStatusByID(ctx context.Context, id uuid.UUID) (company.Status, error) {
	var status string
	err := r.pool.QueryRow(ctx, `SELECT status FROM companies WHERE id = $1`, id).Scan(&status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return "", infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find company status", err)
	}

	parsed, err := company.NewStatus(status)
	if err != nil {
		return "", infra.WrapRepoErr("invalid company status in store", err)
	}
	return parsed, nil
}

const listCompaniesSQL = `
	SELECT c.id, c.name, c.tax_document, c.email, c.phone, c.status, c.created_at,
	       (SELECT COUNT(*)::int FROM users u WHERE u.company_id = c.id) AS total_users
	FROM companies c
	ORDER BY c.created_at DESC`

func (r *CompanyReadStore) ListAll(ctx context.Context) ([]readmodel.CompanyView, error) {
	rows, err := r.pool.Query(ctx, listCompaniesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list companies", err)
	}
	defer rows.Close()

	views := []readmodel.CompanyView{}
	for rows.Next() {
		var (
			v         readmodel.CompanyView
			phone     pgtype.Text
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&v.ID, &v.Name, &v.TaxDocument, &v.Email, &phone, &v.Status, &createdAt, &v.TotalUsers); err != nil {
			return nil, infra.WrapRepoErr("failed to scan company row", err)
		}
		v.Phone = pgconv.StringPtrFromPgtype(phone)
		v.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate company rows", err)
	}
	return views, nil
}
