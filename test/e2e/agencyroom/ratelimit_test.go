package agencyroom_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ivannn15/agencyroom/pkg/agencysdk"
)

// TestLoginRateLimited verifies the credential endpoints carry the strict
// limit: the sixth rapid attempt from one address gets a 429 regardless of
// whether the credentials were right.
func TestLoginRateLimited(t *testing.T) {
	client := startServerWithDefaultRateLimits(t)
	ctx := context.Background()

	var lastErr error
	for i := range 6 {
		_, err := client.Login(ctx, "nobody@example.com", "WrongPass123!")
		require.Error(t, err)
		if i < 5 {
			var apiErr *agencysdk.APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, 401, apiErr.Status, "attempt %d should fail auth, not rate limit", i+1)
		} else {
			lastErr = err
		}
	}

	var apiErr *agencysdk.APIError
	require.ErrorAs(t, lastErr, &apiErr)
	require.Equal(t, 429, apiErr.Status)
}

// TestHealthEndpointsNotStarved verifies probes tolerate frequent polling
// under the shipped lenient limit.
func TestHealthEndpointsNotStarved(t *testing.T) {
	client := startServerWithDefaultRateLimits(t)
	ctx := context.Background()

	for i := range 30 {
		live, err := client.Livez(ctx)
		require.NoError(t, err, "livez poll %d", i+1)
		require.Equal(t, "ok", live.Status)

		ready, err := client.Readyz(ctx)
		require.NoError(t, err, "readyz poll %d", i+1)
		require.Equal(t, "ok", ready.Status)
		require.NotNil(t, ready.Checks)
		require.Equal(t, "ok", ready.Checks.Database)
	}
}

// TestAuthenticatedReadsNotStarved verifies the lenient per-actor limit
// leaves room for normal dashboard traffic.
func TestAuthenticatedReadsNotStarved(t *testing.T) {
	client := startServerWithDefaultRateLimits(t)
	ctx := context.Background()

	owner := registerAgency(t, client, "Steady Reads Media")
	for i := range 30 {
		_, err := owner.ListClients(ctx)
		require.NoError(t, err, "read %d should not be rate limited", i+1)
	}
}
