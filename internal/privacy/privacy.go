// Package privacy provides the identifier helpers that keep raw session
// tokens out of logs: a short one-way display hash and a high-entropy
// session id generator.
package privacy

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// HashSessionID derives a short, non-reversible display token from a session
// identifier. It is used only for log correlation; collisions are tolerable.
func HashSessionID(sessionID string) string {
	sum := sha256.Sum256([]byte(sessionID))
	return hex.EncodeToString(sum[:])[:8]
}

// NewSessionID mints an opaque session token with 256 bits of randomness,
// URL-safe encoded. Clients cannot choose or guess valid ids.
func NewSessionID() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
