package lexactivator

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFingerprint(t *testing.T) {
	t.Setenv(FingerprintEnv, "")

	fp, err := GenerateFingerprint()
	require.NoError(t, err)
	assert.Len(t, fp, 64)
	_, err = hex.DecodeString(fp)
	assert.NoError(t, err)
	assert.NoError(t, validateFingerprint(fp))

	again, err := GenerateFingerprint()
	require.NoError(t, err)
	assert.Equal(t, fp, again, "fingerprint should be deterministic")
}

func TestGenerateFingerprint_EnvOverride(t *testing.T) {
	custom := strings.Repeat("a1", 40)
	t.Setenv(FingerprintEnv, custom)

	fp, err := GenerateFingerprint()
	require.NoError(t, err)
	assert.Equal(t, custom, fp)
}

func TestGenerateFingerprint_EnvOverrideLength(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"too short", "custom-fingerprint-from-env"},
		{"too long", strings.Repeat("x", MaxFingerprintLength+1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(FingerprintEnv, tt.value)
			_, err := GenerateFingerprint()
			assert.ErrorIs(t, err, ErrCustomFingerprintLength)
			assert.ErrorContains(t, err, FingerprintEnv)
		})
	}
}
