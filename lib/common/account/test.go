package account

import (
	"crypto/sha512"
)

// NewTestID derives a stable account id from a name, for tests and fixtures.
func NewTestID(name string) (id ID) {
	s := sha512.Sum512([]byte(name))
	copy(id[:], s[:IDLength])
	return
}
