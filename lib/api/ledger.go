package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tequdev/xahau-governance-hook-test/lib/api/resource"
	"github.com/tequdev/xahau-governance-hook-test/lib/common"
	"github.com/tequdev/xahau-governance-hook-test/lib/httputils"
)

func (api NetworkHandlerAPI) GetLedgerEmittedHandler(w http.ResponseWriter, r *http.Request) {
	emitted, err := api.ledger.Emitted()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	var list []resource.Resource
	for _, tx := range emitted {
		list = append(list, resource.NewTransaction(tx))
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewResourceList(list, resource.URLLedgerEmitted))
}

// PostLedgerCloseHandler closes the current ledger and applies the emitted
// transactions which are due.
func (api NetworkHandlerAPI) PostLedgerCloseHandler(w http.ResponseWriter, r *http.Request) {
	result, err := api.ledger.Close()
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	log.Debug("ledger closed", "sequence", result.Sequence, "applied", len(result.Applied), "expired", len(result.Expired))
	httputils.MustWriteJSON(w, http.StatusOK, resource.NewCloseResult(result))
}

func (api NetworkHandlerAPI) GetDefinitionHandler(w http.ResponseWriter, r *http.Request) {
	hash, err := common.NewHashFromString(mux.Vars(r)["id"])
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	definition, err := api.ledger.Definition(hash)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, http.StatusOK, definition)
}
