package agencyroom_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	httpapi "github.com/Ivannn15/agencyroom/internal/http"
	"github.com/Ivannn15/agencyroom/internal/metrics"
	"github.com/Ivannn15/agencyroom/internal/service"
	"github.com/Ivannn15/agencyroom/internal/store/drivers/sqlite"
	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
	"github.com/Ivannn15/agencyroom/pkg/httpx"
	"github.com/Ivannn15/agencyroom/pkg/jwtx"
	"github.com/Ivannn15/agencyroom/pkg/slogx"
)

const (
	ownerName     = "Owner Test"
	ownerPassword = "OwnerPass123!"
)

// sharedMetrics registers the Prometheus collectors exactly once for the whole
// test binary; promauto panics on duplicate registration against the default
// registry.
var sharedMetrics = metrics.New()

// relaxedLimit keeps rate limiting out of the way for functional tests. The
// dedicated rate limit tests build their server with the shipped defaults.
var relaxedLimit = httpx.RateLimitConfig{
	RequestsPerWindow: 10000,
	Window:            time.Minute,
	Burst:             10000,
}

// startServer boots a fully wired in-process server on a fresh database with
// relaxed rate limits and returns an SDK client pointed at it.
func startServer(t *testing.T) *agencysdk.SDKClient {
	t.Helper()
	return startServerWithLimits(t, relaxedLimit, relaxedLimit, relaxedLimit, relaxedLimit)
}

// startServerWithDefaultRateLimits keeps the shipped rate limit profiles, for
// tests that exercise 429 behaviour.
func startServerWithDefaultRateLimits(t *testing.T) *agencysdk.SDKClient {
	t.Helper()
	return startServerWithLimits(t,
		httpx.StrictLimit, httpx.ModerateLimit, httpx.LenientLimit, httpx.PublicLimit)
}

// startServerWithLimits swaps the rate limit profiles while the routes are
// registered; the middleware captures its config at registration time. The e2e
// tests do not run in parallel, so the temporary swap is safe.
func startServerWithLimits(t *testing.T, strict, moderate, lenient, public httpx.RateLimitConfig) *agencysdk.SDKClient {
	t.Helper()

	st, err := sqlite.NewStore(fmt.Sprintf("file:%s?_busy_timeout=5000",
		filepath.Join(t.TempDir(), "e2e.db")))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256([]byte("e2e-secret-key-0123456789abcdef0"), "agencyroom-e2e")
	require.NoError(t, err)

	logger := slogx.New(slogx.Config{
		Service: "agencyroom-e2e",
		Level:   "error",
		Format:  "text",
	})

	oldStrict, oldModerate := httpx.StrictLimit, httpx.ModerateLimit
	oldLenient, oldPublic := httpx.LenientLimit, httpx.PublicLimit
	httpx.StrictLimit, httpx.ModerateLimit = strict, moderate
	httpx.LenientLimit, httpx.PublicLimit = lenient, public
	defer func() {
		httpx.StrictLimit, httpx.ModerateLimit = oldStrict, oldModerate
		httpx.LenientLimit, httpx.PublicLimit = oldLenient, oldPublic
	}()

	router := httpapi.NewRouter(signer, "e2e", st, logger)
	router.Metrics = sharedMetrics
	router.AuthService = &service.AuthService{Store: st, Signer: signer, SessionTTL: time.Hour}
	router.ClientService = &service.ClientService{Store: st}
	router.InviteService = &service.InviteService{
		Store:       st,
		Signer:      signer,
		SessionTTL:  time.Hour,
		FrontendURL: "http://localhost:3000",
	}
	router.ProjectService = &service.ProjectService{Store: st}
	router.ReportService = &service.ReportService{Store: st}
	router.PortalService = &service.PortalService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return agencysdk.NewSDKClient(srv.URL)
}

// uniqueEmail avoids collisions across tests sharing a server.
func uniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%s@example.com", prefix, uuid.NewString()[:8])
}

// registerAgency creates a fresh agency tenant and returns the owner session.
func registerAgency(t *testing.T, client *agencysdk.SDKClient, agencyName string) *agencysdk.Session {
	t.Helper()
	session, err := client.RegisterAgency(context.Background(), agencysdk.RegisterAgencyRequest{
		AgencyName: agencyName,
		FullName:   ownerName,
		Email:      uniqueEmail("owner"),
		Password:   ownerPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token())
	return session
}

// seedClientProject creates a client and one active project under it.
func seedClientProject(t *testing.T, owner *agencysdk.Session, clientName, projectName string) (agencysdk.Client, agencysdk.Project) {
	t.Helper()
	ctx := context.Background()

	c, err := owner.CreateClient(ctx, agencysdk.CreateClientRequest{
		Name:         clientName,
		ContactEmail: uniqueEmail("contact"),
	})
	require.NoError(t, err)

	p, err := owner.CreateProject(ctx, agencysdk.CreateProjectRequest{
		ClientID: c.ID,
		Name:     projectName,
	})
	require.NoError(t, err)

	return c, p
}

// acceptInviteAsPortalUser mints an invite for the client and redeems it,
// returning the new portal session.
func acceptInviteAsPortalUser(t *testing.T, client *agencysdk.SDKClient, owner *agencysdk.Session, clientID, email, password string) *agencysdk.Session {
	t.Helper()
	ctx := context.Background()

	invite, err := owner.CreateInvite(ctx, clientID, agencysdk.CreateInviteRequest{Email: email})
	require.NoError(t, err)
	require.Len(t, invite.Token, 64)

	portal, err := client.AcceptInvite(ctx, invite.Token, agencysdk.AcceptInviteRequest{
		FullName: "Portal User",
		Password: password,
	})
	require.NoError(t, err)
	return portal
}

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }
