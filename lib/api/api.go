package api

import (
	"fmt"
	"net/http"

	ghandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tequdev/xahau-governance-hook-test/lib/governance"
	"github.com/tequdev/xahau-governance-hook-test/lib/ledger"
)

const APIVersionV1 = "v1"

// API Endpoint patterns
const (
	GetNodeInfoPattern      = "/"
	PostTransactionPattern  = "/transactions"
	GetAccountHooksPattern  = "/accounts/{id}/hooks"
	GetAccountTablePattern  = "/accounts/{id}/table"
	GetTopicTalliesPattern  = "/accounts/{id}/topics/{topic}/tallies"
	GetTopicVotesPattern    = "/accounts/{id}/topics/{topic}/votes"
	GetDefinitionPattern    = "/definitions/{id}"
	GetLedgerEmittedPattern = "/ledger/emitted"
	PostLedgerClosePattern  = "/ledger/close"
	MetricsPattern          = "/metrics"
)

type NetworkHandlerAPI struct {
	ledger    *ledger.Ledger
	config    governance.Config
	urlPrefix string
	version   string
}

func NewNetworkHandlerAPI(l *ledger.Ledger, config governance.Config, urlPrefix string) *NetworkHandlerAPI {
	return &NetworkHandlerAPI{
		ledger:    l,
		config:    config,
		urlPrefix: urlPrefix,
		version:   APIVersionV1,
	}
}

func (api NetworkHandlerAPI) HandlerURLPattern(pattern string) string {
	return fmt.Sprintf("%s/%s%s", api.urlPrefix, api.version, pattern)
}

// NewRouter routes the API, `/metrics` and the CORS headers.
func NewRouter(api *NetworkHandlerAPI, printStack bool) http.Handler {
	router := mux.NewRouter()
	router.Use(RecoverMiddleware(printStack), MetricsMiddleware)

	router.HandleFunc(api.HandlerURLPattern(GetNodeInfoPattern), api.NodeInfoHandler).
		Methods("GET", "OPTIONS")
	router.HandleFunc(api.HandlerURLPattern(PostTransactionPattern), api.PostTransactionHandler).
		Methods("POST")
	router.HandleFunc(api.HandlerURLPattern(GetAccountHooksPattern), api.GetAccountHooksHandler).
		Methods("GET", "OPTIONS")
	router.HandleFunc(api.HandlerURLPattern(GetAccountTablePattern), api.GetAccountTableHandler).
		Methods("GET", "OPTIONS")
	router.HandleFunc(api.HandlerURLPattern(GetTopicTalliesPattern), api.GetTopicTalliesHandler).
		Methods("GET", "OPTIONS")
	router.HandleFunc(api.HandlerURLPattern(GetTopicVotesPattern), api.GetTopicVotesHandler).
		Methods("GET", "OPTIONS")
	router.HandleFunc(api.HandlerURLPattern(GetDefinitionPattern), api.GetDefinitionHandler).
		Methods("GET", "OPTIONS")
	router.HandleFunc(api.HandlerURLPattern(GetLedgerEmittedPattern), api.GetLedgerEmittedHandler).
		Methods("GET", "OPTIONS")
	router.HandleFunc(api.HandlerURLPattern(PostLedgerClosePattern), api.PostLedgerCloseHandler).
		Methods("POST")
	router.Handle(api.urlPrefix+MetricsPattern, promhttp.Handler())

	allowedOrigins := ghandlers.AllowedOrigins([]string{"*"})
	allowedMethods := ghandlers.AllowedMethods([]string{"GET", "POST"})
	allowedHeaders := ghandlers.AllowedHeaders([]string{"Content-Type", "X-Requested-With", "Cache-Control", "Access-Control"})

	return ghandlers.CORS(allowedOrigins, allowedMethods, allowedHeaders)(router)
}
