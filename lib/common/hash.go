package common

import (
	"bytes"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

const HashLength = 32

// Hash is the ledger's 256 bit identifier, the first half of SHA-512.
type Hash [HashLength]byte

var ZeroHash Hash

func SHA512Half(b ...[]byte) (h Hash) {
	s := sha512.New()
	for _, i := range b {
		s.Write(i)
	}
	copy(h[:], s.Sum(nil)[:HashLength])

	return
}

func MakeObjectHash(i interface{}) (h Hash, err error) {
	var e []byte
	if e, err = rlp.EncodeToBytes(i); err != nil {
		return
	}

	h = SHA512Half(e)

	return
}

func MustMakeObjectHash(i interface{}) (h Hash) {
	h, _ = MakeObjectHash(i)
	return
}

func NewHashFromBytes(b []byte) (h Hash, err error) {
	if len(b) != HashLength {
		err = errors.InvalidHash.Clone().SetData("length", len(b))
		return
	}

	copy(h[:], b)
	return
}

func NewHashFromString(s string) (h Hash, err error) {
	var b []byte
	if b, err = DecodeHex(s); err != nil {
		return
	}

	return NewHashFromBytes(b)
}

func (h Hash) IsZero() bool {
	return h == ZeroHash
}

func (h Hash) Bytes() []byte {
	return h[:]
}

func (h Hash) Equal(b []byte) bool {
	return bytes.Equal(h[:], b)
}

func (h Hash) String() string {
	return strings.ToUpper(hex.EncodeToString(h[:]))
}

func (h Hash) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

func (h *Hash) UnmarshalJSON(b []byte) (err error) {
	var s string
	if err = json.Unmarshal(b, &s); err != nil {
		return
	}

	*h, err = NewHashFromString(s)
	return
}

func (h Hash) MarshalYAML() (interface{}, error) {
	return h.String(), nil
}

func (h *Hash) UnmarshalYAML(unmarshal func(interface{}) error) (err error) {
	var s string
	if err = unmarshal(&s); err != nil {
		return
	}

	*h, err = NewHashFromString(s)
	return
}
