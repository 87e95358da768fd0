package service

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/Ivannn15/agencyroom/internal/store/drivers/sqlite"
	"github.com/Ivannn15/agencyroom/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

// newTestStore opens a migrated store backed by a per-test file so concurrent
// subtests share one database.
func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", filepath.Join(t.TempDir(), "test.db"))
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	require.NoError(t, st.ApplyMigrations())
	return st
}

func newTestSigner(t *testing.T) *jwtx.HS256 {
	t.Helper()
	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), "test-issuer")
	require.NoError(t, err)
	return signer
}

// newTestAgency registers a tenant and returns its live session.
func newTestAgency(t *testing.T, auth *AuthService, name, email string) Session {
	t.Helper()
	sess, err := auth.RegisterAgency(context.Background(), name, "Owner", email, "password1")
	require.NoError(t, err)
	return sess
}

func newTestClient(t *testing.T, clients *ClientService, agencyID, name string) domain.Client {
	t.Helper()
	client, err := clients.CreateClient(context.Background(), agencyID, name, "", name+"@client.example", "")
	require.NoError(t, err)
	return client
}

func newTestProject(t *testing.T, projects *ProjectService, agencyID, clientID, name string) domain.ProjectDetail {
	t.Helper()
	project, err := projects.CreateProject(context.Background(), agencyID, clientID, name, domain.ProjectActive, "")
	require.NoError(t, err)
	return project
}

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }
func str(v string) *string   { return &v }
