package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestActorCanAccess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		actor    Actor
		resource string
		want     bool
	}{
		{"owner same agency", Actor{Role: RoleOwner, AgencyID: "a1"}, "a1", true},
		{"manager same agency", Actor{Role: RoleManager, AgencyID: "a1"}, "a1", true},
		{"owner other agency", Actor{Role: RoleOwner, AgencyID: "a1"}, "a2", false},
		{"client never via tenant check", Actor{Role: RoleClient, AgencyID: "a1", ClientID: "c1"}, "a1", false},
		{"empty agency id", Actor{Role: RoleOwner}, "", false},
		{"unknown role", Actor{Role: Role("viewer"), AgencyID: "a1"}, "a1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.actor.CanAccess(tt.resource))
		})
	}
}

func TestActorKindPredicates(t *testing.T) {
	t.Parallel()

	require.True(t, Actor{Role: RoleOwner}.IsStaff())
	require.True(t, Actor{Role: RoleManager}.IsStaff())
	require.False(t, Actor{Role: RoleClient}.IsStaff())

	require.True(t, Actor{Role: RoleClient, ClientID: "c1"}.IsClient())
	// A client-role actor without a bound client is malformed and gets nothing.
	require.False(t, Actor{Role: RoleClient}.IsClient())
	require.False(t, Actor{Role: RoleOwner, ClientID: "c1"}.IsClient())
}

func TestRoleValid(t *testing.T) {
	t.Parallel()

	for _, r := range []Role{RoleOwner, RoleManager, RoleClient} {
		require.True(t, r.Valid())
	}
	require.False(t, Role("admin").Valid())
}

func TestBulletRoundTrip(t *testing.T) {
	t.Parallel()

	items := []string{"a", "b"}
	require.Equal(t, items, SplitBullets(JoinBullets(items)))

	// Blank entries are dropped on the way in, not resurrected on the way out.
	require.Equal(t, []string{"x", "y"}, SplitBullets(JoinBullets([]string{" x ", "", "y", "  "})))
	require.Nil(t, SplitBullets(""))
	require.Nil(t, SplitBullets("  \n \n"))
}
