package sqlite

import (
	"context"
	"database/sql"

	"github.com/Ivannn15/agencyroom/internal/domain"
)

type projectsRepo struct {
	db dbtx
}

// projectDetailColumns selects the project with its owning client in one pass;
// agency scoping always goes through the joined client row.
const projectDetailColumns = `
	p.id, p.client_id, p.name, p.status, p.notes, p.created_at, p.updated_at,
	c.id, c.agency_id, c.name, c.company, c.contact_email, c.contact_phone, c.created_at, c.updated_at`

func scanProjectDetail(row interface{ Scan(...any) error }) (domain.ProjectDetail, error) {
	var (
		d       domain.ProjectDetail
		notes   sql.NullString
		company sql.NullString
		phone   sql.NullString
	)
	err := row.Scan(
		&d.ID, &d.Project.ClientID, &d.Project.Name, &d.Status, &notes, &d.Project.CreatedAt, &d.Project.UpdatedAt,
		&d.Client.ID, &d.Client.AgencyID, &d.Client.Name, &company, &d.Client.ContactEmail, &phone, &d.Client.CreatedAt, &d.Client.UpdatedAt,
	)
	if err != nil {
		return domain.ProjectDetail{}, err
	}
	d.Notes = mapNullString(notes)
	d.Client.Company = mapNullString(company)
	d.Client.ContactPhone = mapNullString(phone)
	return d, nil
}

func (r *projectsRepo) CreateProject(ctx context.Context, p domain.Project) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO projects (id, client_id, name, status, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.ClientID, p.Name, p.Status, mapStringNull(p.Notes), p.CreatedAt, p.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *projectsRepo) ListProjects(ctx context.Context, agencyID, clientID string) ([]domain.ProjectDetail, error) {
	query := `
		SELECT ` + projectDetailColumns + `
		FROM projects p
		JOIN clients c ON c.id = p.client_id
		WHERE c.agency_id = ?`
	args := []any{agencyID}
	if clientID != "" {
		query += ` AND p.client_id = ?`
		args = append(args, clientID)
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ProjectDetail
	for rows.Next() {
		d, err := scanProjectDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *projectsRepo) GetProject(ctx context.Context, id, agencyID string) (domain.ProjectDetail, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+projectDetailColumns+`
		FROM projects p
		JOIN clients c ON c.id = p.client_id
		WHERE p.id = ? AND c.agency_id = ?`, id, agencyID)
	d, err := scanProjectDetail(row)
	return d, mapNotFound(err)
}

func (r *projectsRepo) UpdateProject(ctx context.Context, p domain.Project) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE projects
		SET name = ?, status = ?, notes = ?, client_id = ?, updated_at = ?
		WHERE id = ?`,
		p.Name, p.Status, mapStringNull(p.Notes), p.ClientID, now(), p.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *projectsRepo) DeleteProject(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *projectsRepo) CountProjectsByClient(ctx context.Context, clientID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects WHERE client_id = ?`, clientID).Scan(&n)
	return n, err
}
