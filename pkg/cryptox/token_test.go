package cryptox

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	token, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.Len(t, token, TokenSize256*2)

	_, err = hex.DecodeString(token)
	require.NoError(t, err)

	other, err := GenerateToken(TokenSize256)
	require.NoError(t, err)
	require.NotEqual(t, token, other)
}

func TestGenerateTokenRejectsNonPositiveSize(t *testing.T) {
	t.Parallel()

	_, err := GenerateToken(0)
	require.Error(t, err)
	_, err = GenerateToken(-4)
	require.Error(t, err)
}

func TestGeneratePublicID(t *testing.T) {
	t.Parallel()

	id, err := GeneratePublicID()
	require.NoError(t, err)
	require.Len(t, id, 12)
}

func TestFingerprintTokenIsDeterministic(t *testing.T) {
	t.Parallel()

	a := FingerprintToken("token-value")
	b := FingerprintToken("token-value")
	require.Equal(t, a, b)
	require.Len(t, a, 64) // sha256 hex

	require.NotEqual(t, a, FingerprintToken("other-value"))
}
