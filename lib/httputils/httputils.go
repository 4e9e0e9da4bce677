package httputils

import (
	"mime"
	"net/http"

	"github.com/tequdev/xahau-governance-hook-test/lib/errors"
)

var ErrorsToStatus = map[uint]int{
	errors.StorageRecordDoesNotExist.Code:  http.StatusNotFound,
	errors.InvalidAccountID.Code:           http.StatusBadRequest,
	errors.InvalidAddress.Code:             http.StatusBadRequest,
	errors.InvalidHash.Code:                http.StatusBadRequest,
	errors.InvalidHexEncoding.Code:         http.StatusBadRequest,
	errors.UnknownTransactionType.Code:     http.StatusBadRequest,
	errors.TransactionInvalidSlot.Code:     http.StatusBadRequest,
	errors.TransactionInvalidAmount.Code:   http.StatusBadRequest,
	errors.TransactionMissingField.Code:    http.StatusBadRequest,
	errors.HookDefinitionNotFound.Code:     http.StatusNotFound,
	errors.HookAccountNotFound.Code:        http.StatusNotFound,
	errors.GovernanceInvalidTopic.Code:     http.StatusBadRequest,
	errors.GovernanceInvalidLayer.Code:     http.StatusBadRequest,
	errors.GovernanceInvalidHookTopic.Code: http.StatusBadRequest,
	errors.BadRequestParameter.Code:        http.StatusBadRequest,
	errors.ContentTypeNotJSON.Code:         http.StatusUnsupportedMediaType,
}

func StatusCode(err error) int {
	if e, ok := err.(*errors.Error); ok {
		if status, found := ErrorsToStatus[e.Code]; found {
			return status
		}
	}

	return http.StatusInternalServerError
}

// IsJSONContentType checks the request has a JSON body.
func IsJSONContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return false
	}

	return mediaType == "application/json"
}
