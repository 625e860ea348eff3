package utils

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func ParseUUID(uuidStr string) (uuid.UUID, error) {
	return uuid.Parse(uuidStr)
}

// GenerateStageToken creates the opaque identifier for a staged booking
func GenerateStageToken() uuid.UUID {
	return uuid.New()
}

// ==================== INVITATION TOKEN ====================

// GenerateInvitationToken returns a URL-safe token with 256 bits of entropy.
// The token is the only access control on invitation pages, so it must come
// from a cryptographically secure source.
func GenerateInvitationToken() string {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
