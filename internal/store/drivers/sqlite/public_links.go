package sqlite

import (
	"context"

	"github.com/Ivannn15/agencyroom/internal/domain"
)

type publicLinksRepo struct {
	db dbtx
}

const publicLinkColumns = `id, report_id, public_id, is_active, created_at, updated_at`

func scanPublicLink(row interface{ Scan(...any) error }) (domain.PublicReportLink, error) {
	var l domain.PublicReportLink
	err := row.Scan(&l.ID, &l.ReportID, &l.PublicID, &l.IsActive, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}

func (r *publicLinksRepo) CreateLink(ctx context.Context, l domain.PublicReportLink) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO public_report_links (id, report_id, public_id, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		l.ID, l.ReportID, l.PublicID, l.IsActive, l.CreatedAt, l.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *publicLinksRepo) GetLinkByReportID(ctx context.Context, reportID string) (domain.PublicReportLink, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+publicLinkColumns+` FROM public_report_links WHERE report_id = ?`, reportID)
	l, err := scanPublicLink(row)
	return l, mapNotFound(err)
}

func (r *publicLinksRepo) GetActiveLinkByPublicID(ctx context.Context, publicID string) (domain.PublicReportLink, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+publicLinkColumns+` FROM public_report_links
		WHERE public_id = ? AND is_active = 1`, publicID)
	l, err := scanPublicLink(row)
	return l, mapNotFound(err)
}

func (r *publicLinksRepo) SetLinkActive(ctx context.Context, reportID string, active bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE public_report_links SET is_active = ?, updated_at = ? WHERE report_id = ?`,
		active, now(), reportID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}
