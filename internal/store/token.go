package store

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// GenerateToken generates an opaque session token from 16 bytes of
// random data, base64 URL-safe encoded. The token only needs to be
// unique in practice; nothing validates it server-side.
func GenerateToken() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
