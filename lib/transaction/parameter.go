package transaction

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
)

// HookParameter is a name/value pair handed to the hooks a transaction
// triggers.
type HookParameter struct {
	Name  []byte
	Value []byte
}

func NewHookParameter(name string, value []byte) HookParameter {
	return HookParameter{Name: []byte(name), Value: value}
}

type hookParameterJSON struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (p HookParameter) MarshalJSON() ([]byte, error) {
	return json.Marshal(hookParameterJSON{
		Name:  strings.ToUpper(hex.EncodeToString(p.Name)),
		Value: strings.ToUpper(hex.EncodeToString(p.Value)),
	})
}

func (p *HookParameter) UnmarshalJSON(b []byte) (err error) {
	var j hookParameterJSON
	if err = json.Unmarshal(b, &j); err != nil {
		return
	}

	if p.Name, err = common.DecodeHex(j.Name); err != nil {
		return
	}
	p.Value, err = common.DecodeHex(j.Value)

	return
}

type HookParameters []HookParameter

// Get returns the value of the first parameter named name.
func (ps HookParameters) Get(name string) ([]byte, bool) {
	for _, p := range ps {
		if bytes.Equal(p.Name, []byte(name)) {
			return p.Value, true
		}
	}

	return nil, false
}
