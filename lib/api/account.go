package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tequdev/xahau-governance-hook-test/lib/api/resource"
	"github.com/tequdev/xahau-governance-hook-test/lib/common/account"
	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
	"github.com/tequdev/xahau-governance-hook-test/lib/governance"
	"github.com/tequdev/xahau-governance-hook-test/lib/hook"
	"github.com/tequdev/xahau-governance-hook-test/lib/httputils"
)

func accountFromVars(r *http.Request) (account.ID, error) {
	return account.Parse(mux.Vars(r)["id"])
}

func topicFromVars(r *http.Request) (governance.Topic, error) {
	topic, err := governance.ParseTopicString(mux.Vars(r)["topic"])
	if err != nil {
		return topic, err
	}

	return topic, topic.Validate()
}

// layerFromQuery reads `?layer=`; empty means every layer.
func layerFromQuery(r *http.Request) (governance.Layer, error) {
	s := r.URL.Query().Get("layer")
	if len(s) < 1 {
		return 0, nil
	}

	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.GovernanceInvalidLayer
	}

	return governance.ParseLayer([]byte{byte(n)}, true)
}

func (api NetworkHandlerAPI) GetAccountHooksHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountFromVars(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	slots, err := api.ledger.HookSlots(id)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	programs := map[string]string{}
	for _, name := range hook.Names() {
		programs[hook.NewNativeDefinition(name).HookHash.String()] = name
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewAccountHooks(id, slots, programs))
}

func (api NetworkHandlerAPI) GetAccountTableHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountFromVars(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	info, err := governance.Info(api.ledger.Storage(), api.config, id)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewTable(info))
}

func (api NetworkHandlerAPI) GetTopicTalliesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountFromVars(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}
	topic, err := topicFromVars(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}
	layer, err := layerFromQuery(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	records, err := governance.Tallies(api.ledger.Storage(), id, topic, layer)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	var list []resource.Resource
	for _, record := range records {
		list = append(list, resource.NewTally(id.Address(), record))
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewResourceList(list, r.URL.RequestURI()))
}

func (api NetworkHandlerAPI) GetTopicVotesHandler(w http.ResponseWriter, r *http.Request) {
	id, err := accountFromVars(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}
	topic, err := topicFromVars(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}
	layer, err := layerFromQuery(r)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	records, err := governance.Votes(api.ledger.Storage(), id, topic, layer)
	if err != nil {
		httputils.WriteJSONError(w, err)
		return
	}

	var list []resource.Resource
	for _, record := range records {
		list = append(list, resource.NewVote(id.Address(), topic, record))
	}

	httputils.MustWriteJSON(w, http.StatusOK, resource.NewResourceList(list, r.URL.RequestURI()))
}
