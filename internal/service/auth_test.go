package service

import (
	"context"
	"testing"

	"github.com/Ivannn15/agencyroom/internal/domain"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and hyphenates", func(t *testing.T) {
		require.Equal(t, "north-star-media", slugify("North Star Media"))
	})

	t.Run("collapses punctuation runs", func(t *testing.T) {
		require.Equal(t, "smith-co", slugify("Smith & Co."))
	})

	t.Run("trims leading and trailing separators", func(t *testing.T) {
		require.Equal(t, "agency", slugify("  --Agency--  "))
	})

	t.Run("empty input stays empty", func(t *testing.T) {
		require.Empty(t, slugify("!!!"))
	})
}

func TestRegisterAgency(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &AuthService{Store: st, Signer: newTestSigner(t)}

	sess, err := auth.RegisterAgency(ctx, "North Star Media", "Alice", "Alice@Example.com", "password1")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token)
	require.Equal(t, "north-star-media", sess.Agency.Slug)
	require.Equal(t, domain.RoleOwner, sess.User.Role)
	require.Equal(t, "alice@example.com", sess.User.Email, "email should be normalized")
	require.Equal(t, sess.Agency.ID, sess.User.AgencyID)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := auth.RegisterAgency(ctx, "Other Agency", "Bob", "alice@example.com", "password1")
		require.ErrorIs(t, err, ErrEmailTaken)
	})

	t.Run("colliding name gets a suffixed slug", func(t *testing.T) {
		sess2, err := auth.RegisterAgency(ctx, "North Star Media", "Bob", "bob@example.com", "password1")
		require.NoError(t, err)
		require.Equal(t, "north-star-media-1", sess2.Agency.Slug)

		sess3, err := auth.RegisterAgency(ctx, "North Star Media", "Carol", "carol@example.com", "password1")
		require.NoError(t, err)
		require.Equal(t, "north-star-media-2", sess3.Agency.Slug)
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := auth.RegisterAgency(ctx, "Tiny", "Dan", "dan@example.com", "12345")
		require.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("blank agency name rejected", func(t *testing.T) {
		_, err := auth.RegisterAgency(ctx, "   ", "Dan", "dan@example.com", "password1")
		require.ErrorIs(t, err, ErrInvalidRegistration)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &AuthService{Store: st, Signer: newTestSigner(t)}

	newTestAgency(t, auth, "Login Agency", "owner@example.com")

	t.Run("valid credentials", func(t *testing.T) {
		sess, err := auth.Login(ctx, "OWNER@example.com", "password1")
		require.NoError(t, err)
		require.NotEmpty(t, sess.Token)
		require.Equal(t, "Login Agency", sess.Agency.Name)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := auth.Login(ctx, "owner@example.com", "nope-nope")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		_, err := auth.Login(ctx, "ghost@example.com", "password1")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	auth := &AuthService{Store: st, Signer: newTestSigner(t)}

	sess := newTestAgency(t, auth, "Profile Agency", "owner@profile.example")

	user, agency, err := auth.Profile(ctx, sess.User.ID)
	require.NoError(t, err)
	require.Equal(t, sess.User.ID, user.ID)
	require.Equal(t, sess.Agency.ID, agency.ID)

	_, _, err = auth.Profile(ctx, "missing-user")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSessionTokenRoundTrip(t *testing.T) {
	st := newTestStore(t)
	signer := newTestSigner(t)
	auth := &AuthService{Store: st, Signer: signer}

	sess := newTestAgency(t, auth, "Token Agency", "owner@token.example")

	claims, err := signer.Verify(sess.Token)
	require.NoError(t, err)
	require.Equal(t, sess.User.ID, claims.Subject)
	require.Equal(t, string(domain.RoleOwner), claims.Role)
	require.Equal(t, sess.Agency.ID, claims.AgencyID)
	require.Empty(t, claims.ClientID)
}
