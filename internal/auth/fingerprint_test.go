package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFingerprint_Deterministic(t *testing.T) {
	assert.Equal(t, Fingerprint("some-token"), Fingerprint("some-token"))
	assert.NotEqual(t, Fingerprint("some-token"), Fingerprint("some-other-token"))
}

func TestFingerprint_DoesNotLeakInput(t *testing.T) {
	raw := "raw-refresh-token-value"
	fp := Fingerprint(raw)

	assert.Len(t, fp, 64) // sha256 в hex
	assert.False(t, strings.Contains(fp, raw))
}

func TestGenerateResetToken_Unique(t *testing.T) {
	first, err := GenerateResetToken()
	require.NoError(t, err)
	second, err := GenerateResetToken()
	require.NoError(t, err)

	assert.Len(t, first, 64)
	assert.NotEqual(t, first, second)
}
