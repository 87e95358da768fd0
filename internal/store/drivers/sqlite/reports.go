package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/internal/store"
)

type reportsRepo struct {
	db dbtx
}

const reportDetailColumns = `
	r.id, r.project_id, r.period, r.summary, r.status, r.published_at,
	r.spend, r.revenue, r.leads, r.cpa, r.roas,
	r.what_was_done, r.next_plan, r.created_at, r.updated_at,
	p.id, p.client_id, p.name, p.status, p.notes, p.created_at, p.updated_at,
	c.id, c.agency_id, c.name, c.company, c.contact_email, c.contact_phone, c.created_at, c.updated_at`

const reportDetailFrom = `
	FROM reports r
	JOIN projects p ON p.id = r.project_id
	JOIN clients c ON c.id = p.client_id`

func scanReportDetail(row interface{ Scan(...any) error }) (domain.ReportDetail, error) {
	var (
		d           domain.ReportDetail
		publishedAt sql.NullTime
		spend       sql.NullFloat64
		revenue     sql.NullFloat64
		leads       sql.NullInt64
		cpa         sql.NullFloat64
		roas        sql.NullFloat64
		whatWasDone string
		nextPlan    string
		notes       sql.NullString
		company     sql.NullString
		phone       sql.NullString
	)
	err := row.Scan(
		&d.ID, &d.Report.ProjectID, &d.Period, &d.Summary, &d.Report.Status, &publishedAt,
		&spend, &revenue, &leads, &cpa, &roas,
		&whatWasDone, &nextPlan, &d.Report.CreatedAt, &d.Report.UpdatedAt,
		&d.Project.ID, &d.Project.ClientID, &d.Project.Name, &d.Project.Status, &notes, &d.Project.CreatedAt, &d.Project.UpdatedAt,
		&d.Client.ID, &d.Client.AgencyID, &d.Client.Name, &company, &d.Client.ContactEmail, &phone, &d.Client.CreatedAt, &d.Client.UpdatedAt,
	)
	if err != nil {
		return domain.ReportDetail{}, err
	}
	d.PublishedAt = mapNullTimePtr(publishedAt)
	d.Spend = mapNullFloatPtr(spend)
	d.Revenue = mapNullFloatPtr(revenue)
	d.Leads = mapNullIntPtr(leads)
	d.CPA = mapNullFloatPtr(cpa)
	d.ROAS = mapNullFloatPtr(roas)
	d.WhatWasDone = domain.SplitBullets(whatWasDone)
	d.NextPlan = domain.SplitBullets(nextPlan)
	d.Project.Notes = mapNullString(notes)
	d.Client.Company = mapNullString(company)
	d.Client.ContactPhone = mapNullString(phone)
	return d, nil
}

// filterClauses renders a ReportFilter as WHERE fragments over the joined
// report/project/client aliases. Period bounds compare lexically, which is
// chronological for the "YYYY-MM" key.
func filterClauses(f store.ReportFilter) (string, []any) {
	where := ` WHERE 1=1`
	var args []any
	if f.AgencyID != "" {
		where += ` AND c.agency_id = ?`
		args = append(args, f.AgencyID)
	}
	if f.ClientID != "" {
		where += ` AND p.client_id = ?`
		args = append(args, f.ClientID)
	}
	if f.ProjectID != "" {
		where += ` AND r.project_id = ?`
		args = append(args, f.ProjectID)
	}
	if f.PublishedOnly {
		where += ` AND r.status = ?`
		args = append(args, domain.ReportPublished)
	}
	if f.FromPeriod != "" {
		where += ` AND r.period >= ?`
		args = append(args, f.FromPeriod)
	}
	if f.ToPeriod != "" {
		where += ` AND r.period <= ?`
		args = append(args, f.ToPeriod)
	}
	return where, args
}

func (r *reportsRepo) CreateReport(ctx context.Context, rep domain.Report) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO reports (id, project_id, period, summary, status, published_at,
			spend, revenue, leads, cpa, roas, what_was_done, next_plan, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rep.ID, rep.ProjectID, rep.Period, rep.Summary, rep.Status, mapOptionalTime(rep.PublishedAt),
		mapOptionalFloat(rep.Spend), mapOptionalFloat(rep.Revenue), mapOptionalInt(rep.Leads),
		mapOptionalFloat(rep.CPA), mapOptionalFloat(rep.ROAS),
		domain.JoinBullets(rep.WhatWasDone), domain.JoinBullets(rep.NextPlan),
		rep.CreatedAt, rep.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *reportsRepo) GetReport(ctx context.Context, id, agencyID string) (domain.ReportDetail, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+reportDetailColumns+reportDetailFrom+`
		WHERE r.id = ? AND c.agency_id = ?`, id, agencyID)
	d, err := scanReportDetail(row)
	return d, mapNotFound(err)
}

func (r *reportsRepo) GetReportByID(ctx context.Context, id string) (domain.ReportDetail, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+reportDetailColumns+reportDetailFrom+`
		WHERE r.id = ?`, id)
	d, err := scanReportDetail(row)
	return d, mapNotFound(err)
}

func (r *reportsRepo) GetPublishedReportForClient(ctx context.Context, id, clientID string) (domain.ReportDetail, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+reportDetailColumns+reportDetailFrom+`
		WHERE r.id = ? AND p.client_id = ? AND r.status = ?`, id, clientID, domain.ReportPublished)
	d, err := scanReportDetail(row)
	return d, mapNotFound(err)
}

func (r *reportsRepo) ListReports(ctx context.Context, f store.ReportFilter) ([]domain.ReportDetail, int64, error) {
	where, args := filterClauses(f)

	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*)`+reportDetailFrom+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + reportDetailColumns + reportDetailFrom + where + ` ORDER BY r.created_at DESC`
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += ` LIMIT ? OFFSET ?`
		args = append(args, f.PageSize, (page-1)*f.PageSize)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []domain.ReportDetail
	for rows.Next() {
		d, err := scanReportDetail(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	return out, total, rows.Err()
}

func (r *reportsRepo) ListKPIs(ctx context.Context, f store.ReportFilter) ([]domain.KPIRow, error) {
	where, args := filterClauses(f)
	rows, err := r.db.QueryContext(ctx, `
		SELECT r.spend, r.revenue, r.leads, r.cpa, r.roas`+reportDetailFrom+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.KPIRow
	for rows.Next() {
		var (
			spend   sql.NullFloat64
			revenue sql.NullFloat64
			leads   sql.NullInt64
			cpa     sql.NullFloat64
			roas    sql.NullFloat64
		)
		if err := rows.Scan(&spend, &revenue, &leads, &cpa, &roas); err != nil {
			return nil, err
		}
		out = append(out, domain.KPIRow{
			Spend:   mapNullFloatPtr(spend),
			Revenue: mapNullFloatPtr(revenue),
			Leads:   mapNullIntPtr(leads),
			CPA:     mapNullFloatPtr(cpa),
			ROAS:    mapNullFloatPtr(roas),
		})
	}
	return out, rows.Err()
}

func (r *reportsRepo) UpdateReport(ctx context.Context, rep domain.Report) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reports
		SET period = ?, summary = ?, spend = ?, revenue = ?, leads = ?, cpa = ?, roas = ?,
			what_was_done = ?, next_plan = ?, updated_at = ?
		WHERE id = ?`,
		rep.Period, rep.Summary,
		mapOptionalFloat(rep.Spend), mapOptionalFloat(rep.Revenue), mapOptionalInt(rep.Leads),
		mapOptionalFloat(rep.CPA), mapOptionalFloat(rep.ROAS),
		domain.JoinBullets(rep.WhatWasDone), domain.JoinBullets(rep.NextPlan),
		now(), rep.ID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *reportsRepo) DeleteReport(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *reportsRepo) SetPublishState(ctx context.Context, id string, status domain.ReportStatus, publishedAt *time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE reports SET status = ?, published_at = ?, updated_at = ? WHERE id = ?`,
		status, mapOptionalTime(publishedAt), now(), id,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *reportsRepo) CountReportsByProject(ctx context.Context, projectID string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reports WHERE project_id = ?`, projectID).Scan(&n)
	return n, err
}
