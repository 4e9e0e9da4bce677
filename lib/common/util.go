package common

import (
	"encoding/hex"
	"os"
	"strings"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

func GetENVValue(key, defaultValue string) (v string) {
	var found bool
	if v, found = os.LookupEnv(key); !found {
		return defaultValue
	}

	return
}

// DecodeHex accepts upper or lower case hex with an optional "0x" prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.InvalidHexEncoding.Clone().SetData("error", err.Error())
	}

	return b, nil
}

// IsZeroBytes is true for an empty slice too.
func IsZeroBytes(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}

	return true
}
