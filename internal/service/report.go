package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/internal/export"
	"github.com/Ivannn15/agencyroom/internal/store"
	"github.com/Ivannn15/agencyroom/pkg/cryptox"
	"github.com/Ivannn15/agencyroom/pkg/idx"
	"github.com/Ivannn15/agencyroom/pkg/slogx"
)

var (
	ErrReportNotFound = errors.New("report not found")
	ErrInvalidReport  = errors.New("invalid report request")
	ErrInvalidPeriod  = errors.New("period must be formatted YYYY-MM")
	ErrNoPublicLink   = errors.New("report has no public link")
	ErrUnknownFormat  = errors.New("unknown export format")
	ErrLinkNotFound   = errors.New("public link not found")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ReportListRequest narrows and paginates a staff-side report listing.
type ReportListRequest struct {
	ProjectID     string
	ClientID      string
	PublishedOnly bool
	FromPeriod    string
	ToPeriod      string
	Page          int
	PageSize      int
}

// ReportPage is one page of results plus the total for the filter.
type ReportPage struct {
	Items    []domain.ReportDetail
	Total    int64
	Page     int
	PageSize int
}

// ReportUpdate carries the patchable report fields; nil means "leave as is".
type ReportUpdate struct {
	Period      *string
	Summary     *string
	Spend       *float64
	Revenue     *float64
	Leads       *int64
	CPA         *float64
	ROAS        *float64
	WhatWasDone *[]string
	NextPlan    *[]string
}

// PublicReportView is the anonymous snapshot behind an active public link.
type PublicReportView struct {
	Report     domain.ReportDetail
	AgencyName string
}

// ExportResult bundles the rendered document with its HTTP metadata.
type ExportResult struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ReportService owns the report lifecycle: draft CRUD, publishing, public
// links, aggregation and document export.
type ReportService struct {
	Store store.Store
}

// CreateReport creates a draft. The owning project must belong to the agency.
func (s *ReportService) CreateReport(ctx context.Context, agencyID, projectID, period, summary string, kpis domain.KPIRow, whatWasDone, nextPlan []string) (domain.ReportDetail, error) {
	if err := validatePeriod(period); err != nil {
		return domain.ReportDetail{}, err
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return domain.ReportDetail{}, ErrInvalidReport
	}

	if _, err := s.Store.Projects().GetProject(ctx, projectID, agencyID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ReportDetail{}, ErrProjectNotFound
		}
		return domain.ReportDetail{}, err
	}

	now := time.Now().UTC()
	report := domain.Report{
		ID:          idx.New().String(),
		ProjectID:   projectID,
		Period:      period,
		Summary:     summary,
		Status:      domain.ReportDraft,
		Spend:       kpis.Spend,
		Revenue:     kpis.Revenue,
		Leads:       kpis.Leads,
		CPA:         kpis.CPA,
		ROAS:        kpis.ROAS,
		WhatWasDone: whatWasDone,
		NextPlan:    nextPlan,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Reports().CreateReport(ctx, report); err != nil {
		return domain.ReportDetail{}, err
	}

	slogx.FromContext(ctx).Info("report created",
		slog.String("report_id", report.ID),
		slog.String("project_id", projectID),
		slog.String("period", period),
	)
	return s.GetReport(ctx, report.ID, agencyID)
}

func (s *ReportService) GetReport(ctx context.Context, id, agencyID string) (domain.ReportDetail, error) {
	detail, err := s.Store.Reports().GetReport(ctx, id, agencyID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.ReportDetail{}, ErrReportNotFound
	}
	return detail, err
}

// ListReports pages through the agency's reports, newest first. Page numbers
// start at 1; page size is clamped to [1, 100] and defaults to 20.
func (s *ReportService) ListReports(ctx context.Context, agencyID string, req ReportListRequest) (ReportPage, error) {
	if req.FromPeriod != "" {
		if err := validatePeriod(req.FromPeriod); err != nil {
			return ReportPage{}, err
		}
	}
	if req.ToPeriod != "" {
		if err := validatePeriod(req.ToPeriod); err != nil {
			return ReportPage{}, err
		}
	}

	page, pageSize := clampPage(req.Page, req.PageSize)

	items, total, err := s.Store.Reports().ListReports(ctx, store.ReportFilter{
		AgencyID:      agencyID,
		ProjectID:     req.ProjectID,
		ClientID:      req.ClientID,
		PublishedOnly: req.PublishedOnly,
		FromPeriod:    req.FromPeriod,
		ToPeriod:      req.ToPeriod,
		Page:          page,
		PageSize:      pageSize,
	})
	if err != nil {
		return ReportPage{}, err
	}
	return ReportPage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

// Summary aggregates KPIs over the filtered set: totals treat missing values
// as zero, averages only consider reports that carry the metric.
func (s *ReportService) Summary(ctx context.Context, agencyID string, req ReportListRequest) (domain.ReportSummary, error) {
	rows, err := s.Store.Reports().ListKPIs(ctx, store.ReportFilter{
		AgencyID:      agencyID,
		ProjectID:     req.ProjectID,
		ClientID:      req.ClientID,
		PublishedOnly: req.PublishedOnly,
		FromPeriod:    req.FromPeriod,
		ToPeriod:      req.ToPeriod,
	})
	if err != nil {
		return domain.ReportSummary{}, err
	}
	return aggregateKPIs(rows), nil
}

func (s *ReportService) UpdateReport(ctx context.Context, id, agencyID string, upd ReportUpdate) (domain.ReportDetail, error) {
	detail, err := s.GetReport(ctx, id, agencyID)
	if err != nil {
		return domain.ReportDetail{}, err
	}

	report := detail.Report
	if upd.Period != nil {
		if err := validatePeriod(*upd.Period); err != nil {
			return domain.ReportDetail{}, err
		}
		report.Period = *upd.Period
	}
	if upd.Summary != nil {
		if strings.TrimSpace(*upd.Summary) == "" {
			return domain.ReportDetail{}, ErrInvalidReport
		}
		report.Summary = strings.TrimSpace(*upd.Summary)
	}
	if upd.Spend != nil {
		report.Spend = upd.Spend
	}
	if upd.Revenue != nil {
		report.Revenue = upd.Revenue
	}
	if upd.Leads != nil {
		report.Leads = upd.Leads
	}
	if upd.CPA != nil {
		report.CPA = upd.CPA
	}
	if upd.ROAS != nil {
		report.ROAS = upd.ROAS
	}
	if upd.WhatWasDone != nil {
		report.WhatWasDone = *upd.WhatWasDone
	}
	if upd.NextPlan != nil {
		report.NextPlan = *upd.NextPlan
	}

	if err := s.Store.Reports().UpdateReport(ctx, report); err != nil {
		return domain.ReportDetail{}, err
	}
	return s.GetReport(ctx, id, agencyID)
}

// DeleteReport removes the report; its public link row cascades away.
func (s *ReportService) DeleteReport(ctx context.Context, id, agencyID string) error {
	if _, err := s.GetReport(ctx, id, agencyID); err != nil {
		return err
	}
	return s.Store.Reports().DeleteReport(ctx, id)
}

// Publish marks the report published as of now. Publishing an already
// published report refreshes the timestamp.
func (s *ReportService) Publish(ctx context.Context, id, agencyID string) (domain.ReportDetail, error) {
	if _, err := s.GetReport(ctx, id, agencyID); err != nil {
		return domain.ReportDetail{}, err
	}

	now := time.Now().UTC()
	if err := s.Store.Reports().SetPublishState(ctx, id, domain.ReportPublished, &now); err != nil {
		return domain.ReportDetail{}, err
	}

	slogx.FromContext(ctx).Info("report published", slog.String("report_id", id))
	return s.GetReport(ctx, id, agencyID)
}

// Unpublish reverts to draft and clears the publish timestamp.
func (s *ReportService) Unpublish(ctx context.Context, id, agencyID string) (domain.ReportDetail, error) {
	if _, err := s.GetReport(ctx, id, agencyID); err != nil {
		return domain.ReportDetail{}, err
	}

	if err := s.Store.Reports().SetPublishState(ctx, id, domain.ReportDraft, nil); err != nil {
		return domain.ReportDetail{}, err
	}

	slogx.FromContext(ctx).Info("report unpublished", slog.String("report_id", id))
	return s.GetReport(ctx, id, agencyID)
}

// EnablePublicLink activates (creating on first use) the report's public
// link. The public identifier is minted once and survives disable/enable
// cycles, so a shared URL keeps working after a re-enable.
func (s *ReportService) EnablePublicLink(ctx context.Context, reportID, agencyID string) (domain.PublicReportLink, error) {
	if _, err := s.GetReport(ctx, reportID, agencyID); err != nil {
		return domain.PublicReportLink{}, err
	}

	link, err := s.Store.PublicLinks().GetLinkByReportID(ctx, reportID)
	switch {
	case err == nil:
		if !link.IsActive {
			if err := s.Store.PublicLinks().SetLinkActive(ctx, reportID, true); err != nil {
				return domain.PublicReportLink{}, err
			}
			link.IsActive = true
		}
		return link, nil

	case errors.Is(err, store.ErrNotFound):
		publicID, err := cryptox.GeneratePublicID()
		if err != nil {
			return domain.PublicReportLink{}, err
		}
		now := time.Now().UTC()
		link = domain.PublicReportLink{
			ID:        idx.New().String(),
			ReportID:  reportID,
			PublicID:  publicID,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.Store.PublicLinks().CreateLink(ctx, link); err != nil {
			return domain.PublicReportLink{}, err
		}
		slogx.FromContext(ctx).Info("public link created",
			slog.String("report_id", reportID),
			slog.String("public_id", publicID),
		)
		return link, nil

	default:
		return domain.PublicReportLink{}, err
	}
}

// DisablePublicLink deactivates the link without deleting it; the public
// identifier is retained for a later re-enable.
func (s *ReportService) DisablePublicLink(ctx context.Context, reportID, agencyID string) error {
	if _, err := s.GetReport(ctx, reportID, agencyID); err != nil {
		return err
	}

	if err := s.Store.PublicLinks().SetLinkActive(ctx, reportID, false); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNoPublicLink
		}
		return err
	}
	return nil
}

// FindPublic resolves an active public link to its published report snapshot.
// Inactive links, unknown identifiers and unpublished reports all collapse
// into ErrLinkNotFound; an anonymous caller learns nothing else.
func (s *ReportService) FindPublic(ctx context.Context, publicID string) (PublicReportView, error) {
	link, err := s.Store.PublicLinks().GetActiveLinkByPublicID(ctx, publicID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PublicReportView{}, ErrLinkNotFound
		}
		return PublicReportView{}, err
	}

	detail, err := s.Store.Reports().GetReportByID(ctx, link.ReportID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return PublicReportView{}, ErrLinkNotFound
		}
		return PublicReportView{}, err
	}
	if detail.Status != domain.ReportPublished {
		return PublicReportView{}, ErrLinkNotFound
	}

	agency, err := s.Store.Agencies().GetAgencyByID(ctx, detail.Client.AgencyID)
	if err != nil {
		return PublicReportView{}, err
	}

	return PublicReportView{Report: detail, AgencyName: agency.Name}, nil
}

// Export renders the report as a downloadable document.
func (s *ReportService) Export(ctx context.Context, id, agencyID, format string) (ExportResult, error) {
	detail, err := s.GetReport(ctx, id, agencyID)
	if err != nil {
		return ExportResult{}, err
	}

	doc := export.ReportDocument{
		ClientName:  detail.Client.Name,
		ProjectName: detail.Project.Name,
		Period:      detail.Period,
		Summary:     detail.Summary,
		Spend:       detail.Spend,
		Revenue:     detail.Revenue,
		Leads:       detail.Leads,
		CPA:         detail.CPA,
		ROAS:        detail.ROAS,
		WhatWasDone: detail.WhatWasDone,
		NextPlan:    detail.NextPlan,
		PublishedAt: detail.PublishedAt,
	}

	base := export.Filename(detail.Client.Name + "-" + detail.Period)
	switch strings.ToLower(format) {
	case "pdf":
		data, err := export.RenderPDF(doc)
		if err != nil {
			return ExportResult{}, err
		}
		return ExportResult{Data: data, ContentType: "application/pdf", Filename: base + ".pdf"}, nil
	case "docx":
		data, err := export.RenderDOCX(doc)
		if err != nil {
			return ExportResult{}, err
		}
		return ExportResult{
			Data:        data,
			ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Filename:    base + ".docx",
		}, nil
	default:
		return ExportResult{}, ErrUnknownFormat
	}
}

func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize == 0:
		pageSize = defaultPageSize
	case pageSize < 1:
		pageSize = 1
	case pageSize > maxPageSize:
		pageSize = maxPageSize
	}
	return page, pageSize
}

func validatePeriod(period string) error {
	if _, err := time.Parse("2006-01", period); err != nil {
		return ErrInvalidPeriod
	}
	return nil
}

func aggregateKPIs(rows []domain.KPIRow) domain.ReportSummary {
	var sum domain.ReportSummary
	var cpaSum, roasSum float64
	var cpaN, roasN int

	for _, row := range rows {
		if row.Spend != nil {
			sum.TotalSpend += *row.Spend
		}
		if row.Revenue != nil {
			sum.TotalRevenue += *row.Revenue
		}
		if row.Leads != nil {
			sum.TotalLeads += *row.Leads
		}
		if row.CPA != nil {
			cpaSum += *row.CPA
			cpaN++
		}
		if row.ROAS != nil {
			roasSum += *row.ROAS
			roasN++
		}
	}

	sum.CountReports = len(rows)
	if cpaN > 0 {
		avg := cpaSum / float64(cpaN)
		sum.AvgCPA = &avg
	}
	if roasN > 0 {
		avg := roasSum / float64(roasN)
		sum.AvgROAS = &avg
	}
	return sum
}
