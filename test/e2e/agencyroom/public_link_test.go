package agencyroom_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
)

// TestPublicLinkFlow shares a published report anonymously, then revokes and
// restores the link.
func TestPublicLinkFlow(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	owner := registerAgency(t, client, "Share Link Media")
	_, p := seedClientProject(t, owner, "Shared Client", "Shared Project")

	report, err := owner.CreateReport(ctx, agencysdk.CreateReportRequest{
		ProjectID:   p.ID,
		Period:      "2026-06",
		Summary:     "June results",
		Spend:       f64(2000),
		Revenue:     f64(9000),
		WhatWasDone: []string{"Scaled winning ad sets"},
	})
	require.NoError(t, err)
	_, err = owner.PublishReport(ctx, report.ID)
	require.NoError(t, err)

	link, err := owner.EnablePublicLink(ctx, report.ID)
	require.NoError(t, err)
	require.Len(t, link.PublicID, 12)
	require.True(t, link.IsActive)

	// Anonymous fetch works without any credentials and hides internal IDs.
	snap, err := client.PublicReport(ctx, link.PublicID)
	require.NoError(t, err)
	require.Equal(t, "Share Link Media", snap.AgencyName)
	require.Equal(t, "Shared Client", snap.ClientName)
	require.Equal(t, "2026-06", snap.Period)
	require.NotNil(t, snap.Revenue)
	require.InDelta(t, 9000, *snap.Revenue, 0.001)
	require.Equal(t, []string{"Scaled winning ad sets"}, snap.WhatWasDone)

	// Re-enabling is idempotent and keeps the ID stable.
	again, err := owner.EnablePublicLink(ctx, report.ID)
	require.NoError(t, err)
	require.Equal(t, link.PublicID, again.PublicID)

	// Disabling takes the link down; the ID does not resolve anymore.
	require.NoError(t, owner.DisablePublicLink(ctx, report.ID))
	var apiErr *agencysdk.APIError
	_, err = client.PublicReport(ctx, link.PublicID)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)

	// Re-enabling revives the exact same ID.
	revived, err := owner.EnablePublicLink(ctx, report.ID)
	require.NoError(t, err)
	require.Equal(t, link.PublicID, revived.PublicID)
	_, err = client.PublicReport(ctx, link.PublicID)
	require.NoError(t, err)

	// Unpublishing hides the report even while the link stays active.
	_, err = owner.UnpublishReport(ctx, report.ID)
	require.NoError(t, err)
	_, err = client.PublicReport(ctx, link.PublicID)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)
}

// TestExportDownload checks both renderers over HTTP.
func TestExportDownload(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	owner := registerAgency(t, client, "Export Media")
	_, p := seedClientProject(t, owner, "Export Client", "Export Project")

	report, err := owner.CreateReport(ctx, agencysdk.CreateReportRequest{
		ProjectID: p.ID,
		Period:    "2026-07",
		Summary:   "July results",
		Spend:     f64(500),
	})
	require.NoError(t, err)

	pdf, contentType, err := owner.ExportReport(ctx, report.ID, "pdf")
	require.NoError(t, err)
	require.Equal(t, "application/pdf", contentType)
	require.True(t, len(pdf) > 4 && string(pdf[:4]) == "%PDF")

	docx, contentType, err := owner.ExportReport(ctx, report.ID, "docx")
	require.NoError(t, err)
	require.Contains(t, contentType, "wordprocessingml")
	require.True(t, len(docx) > 2 && docx[0] == 'P' && docx[1] == 'K')

	var apiErr *agencysdk.APIError
	_, _, err = owner.ExportReport(ctx, report.ID, "csv")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)
}
