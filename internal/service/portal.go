package service

import (
	"context"
	"errors"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/internal/store"
)

// PortalService is the client-facing read surface. Every query is forcibly
// narrowed to the caller's client and to published reports; drafts and other
// clients' rows are indistinguishable from missing ones.
type PortalService struct {
	Store store.Store
}

// PortalListRequest paginates and period-filters the portal report listing.
type PortalListRequest struct {
	FromPeriod string
	ToPeriod   string
	Page       int
	PageSize   int
}

func (s *PortalService) Reports(ctx context.Context, clientID string, req PortalListRequest) (ReportPage, error) {
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
		ClientID:      clientID,
		PublishedOnly: true,
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

func (s *PortalService) Report(ctx context.Context, id, clientID string) (domain.ReportDetail, error) {
	detail, err := s.Store.Reports().GetPublishedReportForClient(ctx, id, clientID)
	if errors.Is(err, store.ErrNotFound) {
		return domain.ReportDetail{}, ErrReportNotFound
	}
	return detail, err
}

func (s *PortalService) Summary(ctx context.Context, clientID, fromPeriod, toPeriod string) (domain.ReportSummary, error) {
	rows, err := s.Store.Reports().ListKPIs(ctx, store.ReportFilter{
		ClientID:      clientID,
		PublishedOnly: true,
		FromPeriod:    fromPeriod,
		ToPeriod:      toPeriod,
	})
	if err != nil {
		return domain.ReportSummary{}, err
	}
	return aggregateKPIs(rows), nil
}
