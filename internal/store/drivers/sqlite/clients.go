package sqlite

import (
	"context"
	"database/sql"

	"github.com/Ivannn15/agencyroom/internal/domain"
)

type clientsRepo struct {
	db dbtx
}

const clientColumns = `id, agency_id, name, company, contact_email, contact_phone, created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }) (domain.Client, error) {
	var (
		c       domain.Client
		company sql.NullString
		phone   sql.NullString
	)
	err := row.Scan(&c.ID, &c.AgencyID, &c.Name, &company, &c.ContactEmail, &phone, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Client{}, err
	}
	c.Company = mapNullString(company)
	c.ContactPhone = mapNullString(phone)
	return c, nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (id, agency_id, name, company, contact_email, contact_phone, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.AgencyID, c.Name, mapStringNull(c.Company), c.ContactEmail, mapStringNull(c.ContactPhone), c.CreatedAt, c.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *clientsRepo) ListClients(ctx context.Context, agencyID string) ([]domain.Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+clientColumns+` FROM clients
		WHERE agency_id = ?
		ORDER BY created_at DESC`, agencyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *clientsRepo) GetClient(ctx context.Context, id, agencyID string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+clientColumns+` FROM clients
		WHERE id = ? AND agency_id = ?`, id, agencyID)
	c, err := scanClient(row)
	return c, mapNotFound(err)
}

func (r *clientsRepo) UpdateClient(ctx context.Context, c domain.Client) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE clients
		SET name = ?, company = ?, contact_email = ?, contact_phone = ?, updated_at = ?
		WHERE id = ?`,
		c.Name, mapStringNull(c.Company), c.ContactEmail, mapStringNull(c.ContactPhone), now(), c.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *clientsRepo) DeleteClient(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}
