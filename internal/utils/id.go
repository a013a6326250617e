package utils

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
)

func GenerateUUID() string {
	return uuid.NewString()
}

// GenerateToken returns a URL-safe random token for password resets.
// 32 bytes of entropy keeps the token unguessable.
func GenerateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand never fails on supported platforms; fall back to a UUID
		// rather than handing out a predictable token.
		return uuid.NewString()
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
