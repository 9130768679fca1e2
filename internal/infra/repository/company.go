package repository

import (
	"context"

	"loginhub/internal/domain/company"
	"loginhub/internal/infra"
	"loginhub/internal/infra/db"
	"loginhub/internal/pkg/pgconv"
	"loginhub/internal/usecase/shared"

	"github.com/google/uuid"
)

type CompanyRepository struct{}

func NewCompanyRepository() *CompanyRepository {
	return &CompanyRepository{}
}

var _ shared.CompanyRepository = (*CompanyRepository)(nil)

const insertCompanySQL = `
	INSERT INTO companies (id, name, tax_document, email, phone, status)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING id`

func (r *CompanyRepository) Create(ctx context.Context, dbtx db.DBTX, c *company.Company) (uuid.UUID, error) {
	var id uuid.UUID
	err := dbtx.QueryRow(ctx, insertCompanySQL,
		c.ID(), c.Name(), c.TaxDocument(), c.Email(),
		pgconv.StringPtrToPgtype(c.Phone()), c.Status().String(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to insert company", err)
	}
	return id, nil
}

func (r *CompanyRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id uuid.UUID, status company.Status) (int64, error) {
	tag, err := dbtx.Exec(ctx,
		`UPDATE companies SET status = $2, updated_at = NOW() WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to update company status", err)
	}
	return tag.RowsAffected(), nil
}

func (r *CompanyRepository) Delete(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (int64, error) {
	tag, err := dbtx.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete company", err)
	}
	return tag.RowsAffected(), nil
}
