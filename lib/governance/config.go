package governance

import (
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

// DefaultGenesis is the genesis account, rHb9CJAWyB4rj91VRWn96DkukG4bwdtyTh.
var DefaultGenesis = account.ID{
	0xB5, 0xF7, 0x62, 0x79, 0x8A, 0x53, 0xD5, 0x43, 0xA0, 0x14,
	0xCA, 0xF8, 0xB2, 0x97, 0xCF, 0xF8, 0xF2, 0xF9, 0x37, 0xE8,
}

// DefaultMaxEnvelopeDrops is the largest native amount a vote may carry.
const DefaultMaxEnvelopeDrops uint64 = 1

var DefaultEnvelopeTypes = []transaction.TxType{transaction.TypePayment}

// Config does not change after `NewConfig`.
type Config struct {
	Genesis          account.ID
	EnvelopeTypes    []transaction.TxType
	MaxEnvelopeDrops uint64
}

// NewConfig returns the config for the table of genesis; without
// envelopeTypes only `Payment` carries votes.
func NewConfig(genesis account.ID, envelopeTypes ...transaction.TxType) (Config, error) {
	if genesis.IsZero() {
		return Config{}, errors.GovernanceInvalidConfig.Clone().SetData("genesis", genesis)
	}

	if len(envelopeTypes) < 1 {
		envelopeTypes = DefaultEnvelopeTypes
	}
	types := make([]transaction.TxType, 0, len(envelopeTypes))
	for _, t := range envelopeTypes {
		if !t.IsKnown() {
			return Config{}, errors.GovernanceInvalidConfig.Clone().SetData("envelope-type", uint16(t))
		}
		types = append(types, t)
	}

	return Config{
		Genesis:          genesis,
		EnvelopeTypes:    types,
		MaxEnvelopeDrops: DefaultMaxEnvelopeDrops,
	}, nil
}

func DefaultConfig() Config {
	config, _ := NewConfig(DefaultGenesis)
	return config
}

// IsPrimary is true for the L1 table, the one hosted on genesis.
func (c Config) IsPrimary(hookAccount account.ID) bool {
	return hookAccount == c.Genesis
}

func (c Config) IsEnvelope(t transaction.TxType) bool {
	for _, e := range c.EnvelopeTypes {
		if e == t {
			return true
		}
	}

	return false
}
