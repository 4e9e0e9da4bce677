// Account identifiers of the ledger
//
// An account is identified by 20 bytes. The text form is the classic
// "r-address": base58check with version byte 0, written in the ledger's own
// base58 alphabet instead of the bitcoin one.
package account

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcutil/base58"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

const IDLength = 20

const addressVersion byte = 0

const (
	bitcoinAlphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	ledgerAlphabet  = "rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz"
)

var (
	toLedger  = strings.NewReplacer(pairs(bitcoinAlphabet, ledgerAlphabet)...)
	toBitcoin = strings.NewReplacer(pairs(ledgerAlphabet, bitcoinAlphabet)...)
)

func pairs(from, to string) []string {
	r := make([]string, 0, len(from)*2)
	for i := range from {
		r = append(r, from[i:i+1], to[i:i+1])
	}

	return r
}

type ID [IDLength]byte

var Zero ID

func NewIDFromBytes(b []byte) (id ID, err error) {
	if len(b) != IDLength {
		err = errors.InvalidAccountID.Clone().SetData("length", len(b))
		return
	}

	copy(id[:], b)
	return
}

// Parse accepts an r-address or 40 hex characters.
func Parse(s string) (id ID, err error) {
	if len(s) == IDLength*2 {
		var b []byte
		if b, err = hex.DecodeString(s); err == nil {
			return NewIDFromBytes(b)
		}
	}

	decoded, version, err := base58.CheckDecode(toBitcoin.Replace(s))
	if err != nil {
		err = errors.InvalidAddress.Clone().SetData("address", s).SetData("error", err.Error())
		return
	}
	if version != addressVersion {
		err = errors.InvalidAddress.Clone().SetData("address", s).SetData("version", version)
		return
	}

	return NewIDFromBytes(decoded)
}

func MustParse(s string) ID {
	id, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return id
}

func (id ID) Address() string {
	return toLedger.Replace(base58.CheckEncode(id[:], addressVersion))
}

func (id ID) String() string {
	return id.Address()
}

func (id ID) Hex() string {
	return strings.ToUpper(hex.EncodeToString(id[:]))
}

func (id ID) Bytes() []byte {
	return id[:]
}

func (id ID) IsZero() bool {
	return id == Zero
}

func (id ID) Equal(b []byte) bool {
	return bytes.Equal(id[:], b)
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.Address())
}

func (id *ID) UnmarshalJSON(b []byte) (err error) {
	var s string
	if err = json.Unmarshal(b, &s); err != nil {
		return
	}

	*id, err = Parse(s)
	return
}

func (id ID) MarshalYAML() (interface{}, error) {
	return id.Address(), nil
}

func (id *ID) UnmarshalYAML(unmarshal func(interface{}) error) (err error) {
	var s string
	if err = unmarshal(&s); err != nil {
		return
	}

	*id, err = Parse(s)
	return
}
