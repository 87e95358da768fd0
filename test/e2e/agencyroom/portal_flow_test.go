package agencyroom_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
)

// TestInviteToPortalFlow covers the full client onboarding path: mint an
// invite, preview it, accept it, then read published reports through the
// portal.
func TestInviteToPortalFlow(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	owner := registerAgency(t, client, "Portal Flow Media")
	c, p := seedClientProject(t, owner, "Portal Client", "Always On")

	published, err := owner.CreateReport(ctx, agencysdk.CreateReportRequest{
		ProjectID: p.ID,
		Period:    "2026-01",
		Summary:   "January wrap up",
		Spend:     f64(1500),
		ROAS:      f64(2.5),
	})
	require.NoError(t, err)
	published, err = owner.PublishReport(ctx, published.ID)
	require.NoError(t, err)

	draft, err := owner.CreateReport(ctx, agencysdk.CreateReportRequest{
		ProjectID: p.ID,
		Period:    "2026-02",
		Summary:   "February in progress",
	})
	require.NoError(t, err)

	portalEmail := uniqueEmail("portal")
	invite, err := owner.CreateInvite(ctx, c.ID, agencysdk.CreateInviteRequest{Email: portalEmail})
	require.NoError(t, err)
	require.Contains(t, invite.URL, invite.Token)

	// Preview is read only and names both parties.
	preview, err := client.InviteDetails(ctx, invite.Token)
	require.NoError(t, err)
	require.Equal(t, "Portal Client", preview.ClientName)
	require.Equal(t, "Portal Flow Media", preview.AgencyName)

	portal, err := client.AcceptInvite(ctx, invite.Token, agencysdk.AcceptInviteRequest{
		FullName: "Client Reader",
		Password: "ReaderPass123!",
	})
	require.NoError(t, err)
	require.Equal(t, "client", portal.User.Role)
	require.Equal(t, c.ID, portal.User.ClientID)

	// Second redemption of the same token conflicts.
	_, err = client.AcceptInvite(ctx, invite.Token, agencysdk.AcceptInviteRequest{Password: "OtherPass123!"})
	var apiErr *agencysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 409, apiErr.Status)

	// Portal sees only the published report.
	reports, err := portal.PortalReports(ctx, agencysdk.PortalQuery{})
	require.NoError(t, err)
	require.EqualValues(t, 1, reports.Total)
	require.Equal(t, published.ID, reports.Items[0].ID)

	_, err = portal.PortalReport(ctx, draft.ID)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)

	summary, err := portal.PortalSummary(ctx, "", "")
	require.NoError(t, err)
	require.Equal(t, 1, summary.CountReports)
	require.InDelta(t, 1500, summary.TotalSpend, 0.001)
	require.NotNil(t, summary.AvgROAS)
	require.InDelta(t, 2.5, *summary.AvgROAS, 0.001)

	// Unpublishing pulls the report out of the portal immediately.
	_, err = owner.UnpublishReport(ctx, published.ID)
	require.NoError(t, err)
	reports, err = portal.PortalReports(ctx, agencysdk.PortalQuery{})
	require.NoError(t, err)
	require.EqualValues(t, 0, reports.Total)
}

// TestResetClientPassword verifies the regenerated password replaces the old
// one for portal login.
func TestResetClientPassword(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	owner := registerAgency(t, client, "Reset Agency")
	c, _ := seedClientProject(t, owner, "Reset Client", "Reset Project")

	portalEmail := uniqueEmail("reset-portal")
	oldPassword := "OriginalPass123!"
	acceptInviteAsPortalUser(t, client, owner, c.ID, portalEmail, oldPassword)

	reset, err := owner.ResetClientPassword(ctx, c.ID)
	require.NoError(t, err)
	require.NotEmpty(t, reset.Password)

	_, err = client.Login(ctx, portalEmail, oldPassword)
	var apiErr *agencysdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 401, apiErr.Status)

	fresh, err := client.Login(ctx, portalEmail, reset.Password)
	require.NoError(t, err)
	require.Equal(t, c.ID, fresh.User.ClientID)
}

// TestInviteBadTokens checks the unauthenticated invite surface fails closed.
func TestInviteBadTokens(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	var apiErr *agencysdk.APIError

	// Malformed token shape.
	_, err := client.InviteDetails(ctx, "abc")
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 400, apiErr.Status)

	// Well formed but unknown.
	unknown := "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
	_, err = client.InviteDetails(ctx, unknown)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)

	_, err = client.AcceptInvite(ctx, unknown, agencysdk.AcceptInviteRequest{Password: "SomePass123!"})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)
}
