package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Token size constants (in bytes before encoding).
const (
	// TokenSize128 provides 128 bits of entropy (32 hex chars).
	TokenSize128 = 16
	// TokenSize256 provides 256 bits of entropy (64 hex chars). Used for
	// invite tokens.
	TokenSize256 = 32
)

// PublicIDBytes is the entropy behind a public report link identifier.
// 6 bytes hex-encode to the 12-character opaque IDs that appear in URLs.
const PublicIDBytes = 6

// GenerateToken creates a cryptographically secure random token of the given
// byte length, returned hex-encoded. The raw token is handed to the caller
// exactly once; persist only its fingerprint.
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive, got %d", size)
	}
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// GeneratePublicID mints the short opaque identifier for a public report link.
func GeneratePublicID() (string, error) {
	return GenerateToken(PublicIDBytes)
}

// FingerprintToken returns the deterministic SHA-256 fingerprint of a token,
// hex-encoded. This is what gets stored, allowing lookup without ever keeping
// the original token value.
func FingerprintToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
