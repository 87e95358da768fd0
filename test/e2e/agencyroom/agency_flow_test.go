package agencyroom_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
)

// TestAgencyLifecycle walks the staff surface end to end: register an agency,
// manage a client and project, author reports, and read them back through the
// listing and summary endpoints.
func TestAgencyLifecycle(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	owner := registerAgency(t, client, "North Star Media")
	require.Equal(t, "owner", owner.User.Role)
	require.Equal(t, "north-star-media", owner.Agency.Slug)

	// Session survives a fresh login.
	relogin, err := client.Login(ctx, owner.User.Email, ownerPassword)
	require.NoError(t, err)
	require.Equal(t, owner.User.ID, relogin.User.ID)

	profile, err := owner.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, owner.Agency.ID, profile.Agency.ID)

	c, p := seedClientProject(t, owner, "Acme Retail", "Search Campaign")
	require.Equal(t, "active", p.Status)

	// Patch the client and check the change sticks.
	company := "Acme Holdings Pty Ltd"
	updated, err := owner.UpdateClient(ctx, c.ID, agencysdk.UpdateClientRequest{Company: &company})
	require.NoError(t, err)
	require.Equal(t, company, updated.Company)
	require.Equal(t, c.Name, updated.Name)

	// Author three months of reports concurrently; writers serialize at the
	// store, so all must land.
	var g errgroup.Group
	for month := 1; month <= 3; month++ {
		period := fmt.Sprintf("2026-%02d", month)
		g.Go(func() error {
			_, err := owner.CreateReport(ctx, agencysdk.CreateReportRequest{
				ProjectID: p.ID,
				Period:    period,
				Summary:   "Monthly results for " + period,
				Spend:     f64(1000),
				Leads:     i64(25),
				ROAS:      f64(3),
			})
			return err
		})
	}
	require.NoError(t, g.Wait())

	list, err := owner.ListReports(ctx, agencysdk.ReportListQuery{ProjectID: p.ID})
	require.NoError(t, err)
	require.EqualValues(t, 3, list.Total)
	require.Len(t, list.Items, 3)

	// Period range filter is inclusive on both ends.
	ranged, err := owner.ListReports(ctx, agencysdk.ReportListQuery{
		ProjectID:  p.ID,
		FromPeriod: "2026-02",
		ToPeriod:   "2026-03",
	})
	require.NoError(t, err)
	require.EqualValues(t, 2, ranged.Total)

	summary, err := owner.ReportsSummary(ctx, agencysdk.ReportListQuery{ProjectID: p.ID})
	require.NoError(t, err)
	require.Equal(t, 3, summary.CountReports)
	require.InDelta(t, 3000, summary.TotalSpend, 0.001)
	require.EqualValues(t, 75, summary.TotalLeads)
	require.NotNil(t, summary.AvgROAS)
	require.InDelta(t, 3, *summary.AvgROAS, 0.001)
	require.Nil(t, summary.AvgCPA, "no report carries CPA")

	// Publish one report and check the published-only view narrows.
	target := list.Items[0]
	published, err := owner.PublishReport(ctx, target.ID)
	require.NoError(t, err)
	require.Equal(t, "published", published.Status)
	require.NotNil(t, published.PublishedAt)

	onlyPublished, err := owner.ListReports(ctx, agencysdk.ReportListQuery{
		ProjectID:     p.ID,
		PublishedOnly: true,
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, onlyPublished.Total)

	// Bullets round trip through a patch.
	patched, err := owner.UpdateReport(ctx, target.ID, agencysdk.UpdateReportRequest{
		WhatWasDone: &[]string{"Launched search ads", "Rebuilt landing page"},
	})
	require.NoError(t, err)
	require.Len(t, patched.WhatWasDone, 2)
}

// TestDeleteGuards verifies that deletes refuse to orphan children over HTTP.
func TestDeleteGuards(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	owner := registerAgency(t, client, "Guard Rail Agency")
	c, p := seedClientProject(t, owner, "Guarded Client", "Guarded Project")

	report, err := owner.CreateReport(ctx, agencysdk.CreateReportRequest{
		ProjectID: p.ID,
		Period:    "2026-05",
		Summary:   "May results",
	})
	require.NoError(t, err)

	var apiErr *agencysdk.APIError

	err = owner.DeleteProject(ctx, p.ID)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)

	err = owner.DeleteClient(ctx, c.ID)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)

	// Removing bottom-up succeeds.
	require.NoError(t, owner.DeleteReport(ctx, report.ID))
	require.NoError(t, owner.DeleteProject(ctx, p.ID))
	require.NoError(t, owner.DeleteClient(ctx, c.ID))
}

// TestDuplicateRegistration verifies a taken owner email is rejected while
// agency names are deduplicated by slug instead.
func TestDuplicateRegistration(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	email := uniqueEmail("dup-owner")
	first, err := client.RegisterAgency(ctx, agencysdk.RegisterAgencyRequest{
		AgencyName: "Same Name Media",
		FullName:   ownerName,
		Email:      email,
		Password:   ownerPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "same-name-media", first.Agency.Slug)

	_, err = client.RegisterAgency(ctx, agencysdk.RegisterAgencyRequest{
		AgencyName: "Another Agency",
		FullName:   ownerName,
		Email:      email,
		Password:   ownerPassword,
	})
	var apiErr *agencysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)

	second, err := client.RegisterAgency(ctx, agencysdk.RegisterAgencyRequest{
		AgencyName: "Same Name Media",
		FullName:   ownerName,
		Email:      uniqueEmail("dup-owner2"),
		Password:   ownerPassword,
	})
	require.NoError(t, err)
	require.Equal(t, "same-name-media-1", second.Agency.Slug)
}
