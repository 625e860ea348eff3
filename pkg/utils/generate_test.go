package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateInvitationTokenLength(t *testing.T) {
	token := GenerateInvitationToken()

	// 32 bytes of entropy in unpadded URL-safe base64.
	assert.Len(t, token, 43)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
}

func TestGenerateInvitationTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		token := GenerateInvitationToken()
		assert.False(t, seen[token], "duplicate token generated")
		seen[token] = true
	}
}

func TestParseUUIDRoundTrip(t *testing.T) {
	id := GenerateUUID()

	parsed, err := ParseUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	_, err = ParseUUID("not-a-uuid")
	assert.Error(t, err)
}
