package api

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"github.com/tequdev/xahau-governance-hook-test/lib/api/resource"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/httputils"
	"github.com/tequdev/xahau-governance-hook-test/lib/transaction"
)

// MaxTransactionBodySize limits the body of `POST /transactions`.
const MaxTransactionBodySize = 64 * 1024

// PostTransactionHandler applies the posted transaction to the ledger. A
// transaction rolled back by a hook is still `200`; `accepted` tells the
// outcome.
func (api NetworkHandlerAPI) PostTransactionHandler(w http.ResponseWriter, r *http.Request) {
	if !httputils.IsJSONContentType(r) {
		httputils.WriteJSONError(w, errors.ContentTypeNotJSON)
		return
	}

	body, err := ioutil.ReadAll(http.MaxBytesReader(w, r.Body, MaxTransactionBodySize))
	if err != nil {
		httputils.WriteJSONError(w, errors.BadRequestParameter.Clone().SetData("error", err.Error()))
		return
	}

	var tx transaction.Transaction
	if err = json.Unmarshal(body, &tx); err != nil {
		httputils.WriteJSONError(w, errors.BadRequestParameter.Clone().SetData("error", err.Error()))
		return
	}

	result, err := api.ledger.Apply(&tx)
	if err != nil {
		log.Debug("failed to apply transaction", "error", err)
		httputils.WriteJSONError(w, err)
		return
	}

	log.Debug("transaction applied", "hash", result.Hash, "accepted", result.Accepted)
	httputils.MustWriteJSON(w, http.StatusOK, resource.NewApplyResult(result))
}
