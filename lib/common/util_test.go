package common

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

func TestDecodeHex(t *testing.T) {
	for _, s := range []string{"0aff", "0AFF", "0x0aff", "0X0AFF"} {
		b, err := DecodeHex(s)
		require.NoError(t, err, s)
		require.Equal(t, []byte{0x0a, 0xff}, b)
	}

	_, err := DecodeHex("0xzz")
	require.True(t, errors.InvalidHexEncoding.Is(err))
}

func TestIsZeroBytes(t *testing.T) {
	require.True(t, IsZeroBytes(nil))
	require.True(t, IsZeroBytes(make([]byte, 32)))
	require.False(t, IsZeroBytes([]byte{0, 0, 1}))
}

func TestGetENVValue(t *testing.T) {
	key := "GOVERN_TEST_ENV_VALUE"
	os.Unsetenv(key)
	require.Equal(t, "default", GetENVValue(key, "default"))

	os.Setenv(key, "")
	defer os.Unsetenv(key)
	require.Equal(t, "", GetENVValue(key, "default"))
}
