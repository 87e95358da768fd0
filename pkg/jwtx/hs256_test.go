package jwtx

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewHS256RejectsShortSecrets(t *testing.T) {
	t.Parallel()

	_, err := NewHS256([]byte("short"), "agencyroom")
	require.ErrorIs(t, err, ErrWeakSecret)
}

func TestSignAndVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "agencyroom")
	require.NoError(t, err)

	now := time.Now().UTC()
	claims := NewSessionClaims("user-1", "owner@acme.test", "owner", "agency-1", "", time.Hour, "agencyroom", now)

	raw, err := h.Sign(claims)
	require.NoError(t, err)
	require.Equal(t, 3, len(strings.Split(raw, ".")))

	got, err := h.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, "owner@acme.test", got.Email)
	require.Equal(t, "owner", got.Role)
	require.Equal(t, "agency-1", got.AgencyID)
	require.Empty(t, got.ClientID)
	require.NoError(t, got.ValidateExpiry())
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256(testSecret, "agencyroom")
	require.NoError(t, err)
	verifier, err := NewHS256([]byte("ffffffffffffffffffffffffffffffff"), "agencyroom")
	require.NoError(t, err)

	raw, err := signer.Sign(NewSessionClaims("u", "e", "owner", "a", "", time.Hour, "agencyroom", time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidSig)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "agencyroom")
	require.NoError(t, err)

	past := time.Now().UTC().Add(-2 * time.Hour)
	raw, err := h.Sign(NewSessionClaims("u", "e", "client", "a", "c", time.Hour, "agencyroom", past))
	require.NoError(t, err)

	_, err = h.Verify(raw)
	require.ErrorIs(t, err, ErrExpired)
}

func TestVerifyRejectsIssuerMismatch(t *testing.T) {
	t.Parallel()

	signer, err := NewHS256(testSecret, "someone-else")
	require.NoError(t, err)
	verifier, err := NewHS256(testSecret, "agencyroom")
	require.NoError(t, err)

	raw, err := signer.Sign(NewSessionClaims("u", "e", "owner", "a", "", time.Hour, "someone-else", time.Now()))
	require.NoError(t, err)

	_, err = verifier.Verify(raw)
	require.ErrorIs(t, err, ErrIssuer)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	h, err := NewHS256(testSecret, "agencyroom")
	require.NoError(t, err)

	_, err = h.Verify("not-a-token")
	require.ErrorIs(t, err, ErrMalformed)
}
