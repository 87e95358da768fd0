package service

import (
	"context"
	"testing"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/stretchr/testify/require"
)

// portalFixture seeds two clients in one agency with a mix of draft and
// published reports, so scoping failures show up as extra rows.
type portalFixture struct {
	*reportFixture
	portal *PortalService

	otherClient    domain.Client
	published      domain.ReportDetail
	draft          domain.ReportDetail
	otherPublished domain.ReportDetail
}

func newPortalFixture(t *testing.T) *portalFixture {
	t.Helper()
	ctx := context.Background()

	rf := newReportFixture(t)
	f := &portalFixture{
		reportFixture: rf,
		portal:        &PortalService{Store: rf.reports.Store},
	}

	f.published = f.create(t, "2026-01", domain.KPIRow{Spend: f64(1000), ROAS: f64(3)})
	var err error
	f.published, err = f.reports.Publish(ctx, f.published.ID, f.owner.Agency.ID)
	require.NoError(t, err)

	f.draft = f.create(t, "2026-02", domain.KPIRow{Spend: f64(800)})

	f.otherClient = newTestClient(t, f.clients, f.owner.Agency.ID, "Globex")
	otherProject := newTestProject(t, f.projects, f.owner.Agency.ID, f.otherClient.ID, "PPC")
	f.otherPublished, err = f.reports.CreateReport(ctx, f.owner.Agency.ID, otherProject.ID, "2026-01", "Globex January", domain.KPIRow{Spend: f64(200)}, nil, nil)
	require.NoError(t, err)
	f.otherPublished, err = f.reports.Publish(ctx, f.otherPublished.ID, f.owner.Agency.ID)
	require.NoError(t, err)

	return f
}

func TestPortalReports(t *testing.T) {
	ctx := context.Background()
	f := newPortalFixture(t)

	t.Run("lists only own published reports", func(t *testing.T) {
		page, err := f.portal.Reports(ctx, f.client.ID, PortalListRequest{})
		require.NoError(t, err)
		require.Equal(t, int64(1), page.Total)
		require.Equal(t, f.published.ID, page.Items[0].ID)
	})

	t.Run("draft stays invisible after publishing", func(t *testing.T) {
		published, err := f.reports.Publish(ctx, f.draft.ID, f.owner.Agency.ID)
		require.NoError(t, err)

		page, err := f.portal.Reports(ctx, f.client.ID, PortalListRequest{})
		require.NoError(t, err)
		require.Equal(t, int64(2), page.Total)

		_, err = f.reports.Unpublish(ctx, published.ID, f.owner.Agency.ID)
		require.NoError(t, err)

		page, err = f.portal.Reports(ctx, f.client.ID, PortalListRequest{})
		require.NoError(t, err)
		require.Equal(t, int64(1), page.Total, "unpublished report disappears again")
	})

	t.Run("validates period bounds", func(t *testing.T) {
		_, err := f.portal.Reports(ctx, f.client.ID, PortalListRequest{FromPeriod: "nope"})
		require.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestPortalReport(t *testing.T) {
	ctx := context.Background()
	f := newPortalFixture(t)

	t.Run("own published report", func(t *testing.T) {
		detail, err := f.portal.Report(ctx, f.published.ID, f.client.ID)
		require.NoError(t, err)
		require.Equal(t, f.published.ID, detail.ID)
	})

	t.Run("own draft is invisible", func(t *testing.T) {
		_, err := f.portal.Report(ctx, f.draft.ID, f.client.ID)
		require.ErrorIs(t, err, ErrReportNotFound)
	})

	t.Run("another client's report is invisible", func(t *testing.T) {
		_, err := f.portal.Report(ctx, f.otherPublished.ID, f.client.ID)
		require.ErrorIs(t, err, ErrReportNotFound)
	})
}

func TestPortalSummary(t *testing.T) {
	ctx := context.Background()
	f := newPortalFixture(t)

	sum, err := f.portal.Summary(ctx, f.client.ID, "", "")
	require.NoError(t, err)
	require.Equal(t, 1, sum.CountReports, "draft and foreign reports excluded")
	require.Equal(t, 1000.0, sum.TotalSpend)
	require.NotNil(t, sum.AvgROAS)
	require.Equal(t, 3.0, *sum.AvgROAS)
}
