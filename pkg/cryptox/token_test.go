package cryptox

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomToken(t *testing.T) {
	for _, size := range []int{1, 16, RefreshTokenSize, 64} {
		tok, err := RandomToken(size)
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(tok)
		require.NoError(t, err)
		require.Len(t, raw, size)

		other, err := RandomToken(size)
		require.NoError(t, err)
		if size >= 16 {
			require.NotEqual(t, tok, other)
		}
	}

	_, err := RandomToken(0)
	require.Error(t, err)
}

func TestNewSecretIsLongEnough(t *testing.T) {
	s, err := NewSecret()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(s), SecretSize)
}

func TestFingerprint(t *testing.T) {
	require.Empty(t, Fingerprint(""))

	fp := Fingerprint("abc")
	require.Len(t, fp, fingerprintLen)
	require.Equal(t, fp, Fingerprint("abc"))
	require.NotEqual(t, fp, Fingerprint("abd"))
}
