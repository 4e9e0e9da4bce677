package api

import (
	"net/http"

	"github.com/tequdev/xahau-governance-hook-test/lib/api/resource"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/httputils"
	"github.com/tequdev/xahau-governance-hook-test/lib/version"
)

func (api NetworkHandlerAPI) NodeInfoHandler(w http.ResponseWriter, r *http.Request) {
	sequence, err := api.ledger.Sequence()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	emitted, err := api.ledger.Emitted()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	var envelopeTypes []string
	for _, t := range api.config.EnvelopeTypes {
		envelopeTypes = append(envelopeTypes, t.String())
	}

	info := resource.NodeInfo{
		Version:         version.Version,
		Genesis:         api.config.Genesis.Address(),
		EnvelopeTypes:   envelopeTypes,
		Programs:        hook.Names(),
		LedgerSequence:  sequence,
		BaseFee:         api.ledger.BaseFee(),
		EmittedQueueLen: len(emitted),
	}

	httputils.MustWriteJSON(w, http.StatusOK, info)
}
