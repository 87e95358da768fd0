package sqlite

import (
	"context"

	"github.com/Ivannn15/agencyroom/internal/domain"
)

type agenciesRepo struct {
	db dbtx
}

const agencyColumns = `id, name, slug, primary_email, created_at, updated_at`

func scanAgency(row interface{ Scan(...any) error }) (domain.Agency, error) {
	var a domain.Agency
	err := row.Scan(&a.ID, &a.Name, &a.Slug, &a.PrimaryEmail, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *agenciesRepo) CreateAgency(ctx context.Context, a domain.Agency) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO agencies (id, name, slug, primary_email, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Name, a.Slug, a.PrimaryEmail, a.CreatedAt, a.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *agenciesRepo) GetAgencyByID(ctx context.Context, id string) (domain.Agency, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+agencyColumns+` FROM agencies WHERE id = ?`, id)
	a, err := scanAgency(row)
	return a, mapNotFound(err)
}

func (r *agenciesRepo) GetAgencyBySlug(ctx context.Context, slug string) (domain.Agency, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+agencyColumns+` FROM agencies WHERE slug = ?`, slug)
	a, err := scanAgency(row)
	return a, mapNotFound(err)
}
