package hook

import (
	"sort"
	"sync"

	"github.com/tequdev/xahau-governance-hook-test/lib/common"
)

var (
	programsLock sync.RWMutex
	programs     = make(map[string]Program)
)

// Program is a native hook. Returning nil or a `common.CheckerStop` accepts
// the originating transaction; any other error rolls the invocation back.
type Program func(ctx *Context) error

// AddHook registers program under name; a later registration replaces the
// earlier one.
func AddHook(name string, program Program) {
	programsLock.Lock()
	defer programsLock.Unlock()

	programs[name] = program
}

func HasHook(name string) bool {
	_, found := GetHook(name)
	return found
}

func GetHook(name string) (Program, bool) {
	programsLock.RLock()
	defer programsLock.RUnlock()

	program, found := programs[name]
	return program, found
}

func Names() []string {
	programsLock.RLock()
	defer programsLock.RUnlock()

	var names []string
	for name := range programs {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Hash is the hook hash of a hook definition, SHA-512Half of its create code.
func Hash(createCode []byte) common.Hash {
	return common.SHA512Half(createCode)
}

// Definition is a hook definition on ledger. Native programs use their
// registered name as create code.
type Definition struct {
	HookHash   common.Hash `json:"hook_hash" yaml:"hook_hash"`
	CreateCode []byte      `json:"create_code" yaml:"create_code"`
	Program    string      `json:"program,omitempty" yaml:"program,omitempty"`
}

func NewNativeDefinition(name string) Definition {
	code := []byte(name)
	return Definition{
		HookHash:   Hash(code),
		CreateCode: code,
		Program:    name,
	}
}

func NewDefinition(createCode []byte) Definition {
	return Definition{
		HookHash:   Hash(createCode),
		CreateCode: createCode,
	}
}

// IsNative is true when the definition runs a registered program.
func (d Definition) IsNative() bool {
	return len(d.Program) > 0
}
