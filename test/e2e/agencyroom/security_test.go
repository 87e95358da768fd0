package agencyroom_test

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
)

// TestAuthRequired verifies authenticated routes reject anonymous callers.
func TestAuthRequired(t *testing.T) {
	client := startServer(t)

	for _, path := range []string{
		"/auth/me",
		"/clients",
		"/projects",
		"/reports",
		"/client/reports",
	} {
		resp, err := http.Get(client.BaseURL + path)
		require.NoError(t, err)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, "GET %s without a token", path)
	}
}

// TestRoleSeparation verifies staff and portal tokens cannot cross into each
// other's surface.
func TestRoleSeparation(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	owner := registerAgency(t, client, "Role Split Media")
	c, _ := seedClientProject(t, owner, "Role Client", "Role Project")
	portal := acceptInviteAsPortalUser(t, client, owner, c.ID, uniqueEmail("role-portal"), "PortalPass123!")

	var apiErr *agencysdk.APIError

	// Portal token on a staff route.
	_, err := portal.ListClients(ctx)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.Status)

	_, err = portal.CreateClient(ctx, agencysdk.CreateClientRequest{
		Name:         "Sneaky",
		ContactEmail: uniqueEmail("sneaky"),
	})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.Status)

	// Staff token on a portal route.
	_, err = owner.PortalReports(ctx, agencysdk.PortalQuery{})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 403, apiErr.Status)

	// Both tokens still work on their own surfaces.
	_, err = owner.ListClients(ctx)
	require.NoError(t, err)
	_, err = portal.PortalReports(ctx, agencysdk.PortalQuery{})
	require.NoError(t, err)
}

// TestTenantIsolation verifies one agency can never see or touch another
// agency's records, and that the API does not distinguish "other tenant" from
// "does not exist".
func TestTenantIsolation(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	alice := registerAgency(t, client, "Alice Media")
	bob := registerAgency(t, client, "Bob Media")

	c, p := seedClientProject(t, alice, "Alice Client", "Alice Project")
	report, err := alice.CreateReport(ctx, agencysdk.CreateReportRequest{
		ProjectID: p.ID,
		Period:    "2026-03",
		Summary:   "March results",
	})
	require.NoError(t, err)

	var apiErr *agencysdk.APIError

	_, err = bob.GetClient(ctx, c.ID)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)

	_, err = bob.GetProject(ctx, p.ID)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)

	_, err = bob.GetReport(ctx, report.ID)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)

	_, err = bob.PublishReport(ctx, report.ID)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)

	err = bob.DeleteClient(ctx, c.ID)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)

	// Listings stay scoped to the caller's tenant.
	clients, err := bob.ListClients(ctx)
	require.NoError(t, err)
	require.Empty(t, clients)

	reports, err := bob.ListReports(ctx, agencysdk.ReportListQuery{})
	require.NoError(t, err)
	require.EqualValues(t, 0, reports.Total)
}

// TestPortalIsolation verifies a portal user of one client cannot read a
// sibling client's published reports.
func TestPortalIsolation(t *testing.T) {
	client := startServer(t)
	ctx := context.Background()

	owner := registerAgency(t, client, "Sibling Media")
	c1, p1 := seedClientProject(t, owner, "Client One", "Project One")
	_, p2 := seedClientProject(t, owner, "Client Two", "Project Two")

	mine, err := owner.CreateReport(ctx, agencysdk.CreateReportRequest{
		ProjectID: p1.ID,
		Period:    "2026-04",
		Summary:   "Client one results",
	})
	require.NoError(t, err)
	_, err = owner.PublishReport(ctx, mine.ID)
	require.NoError(t, err)

	theirs, err := owner.CreateReport(ctx, agencysdk.CreateReportRequest{
		ProjectID: p2.ID,
		Period:    "2026-04",
		Summary:   "Client two results",
	})
	require.NoError(t, err)
	_, err = owner.PublishReport(ctx, theirs.ID)
	require.NoError(t, err)

	portal := acceptInviteAsPortalUser(t, client, owner, c1.ID, uniqueEmail("iso-portal"), "IsoPass123!")

	reports, err := portal.PortalReports(ctx, agencysdk.PortalQuery{})
	require.NoError(t, err)
	require.EqualValues(t, 1, reports.Total)
	require.Equal(t, mine.ID, reports.Items[0].ID)

	var apiErr *agencysdk.APIError
	_, err = portal.PortalReport(ctx, theirs.ID)
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 404, apiErr.Status)
}

// TestGarbageToken verifies a syntactically broken bearer token is rejected,
// not treated as anonymous.
func TestGarbageToken(t *testing.T) {
	client := startServer(t)

	req, err := http.NewRequest(http.MethodGet, client.BaseURL+"/clients", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer not.a.jwt")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
