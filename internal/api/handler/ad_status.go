package handler

import (
	"fmt"
	"net/http"

	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/tracking"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/BrianElionDev/Meta-ads-project/pkg/log"
	jsoniter "github.com/json-iterator/go"
)

// callbackJSON diferencia ad_id de ad_ID, que são campos distintos do callback
var callbackJSON = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	CaseSensitive:          true,
}.Froze()

// UpdateAdStatus recebe o callback da automação a cada etapa concluída
func UpdateAdStatus(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var callback domain.AdStatusCallback
		if err := callbackJSON.NewDecoder(r.Body).Decode(&callback); err != nil {
			log.ForContext(r.Context()).WithError(err).Warn("callback: invalid body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		ad, err := service.ApplyCallback(r.Context(), &callback)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, ad, fmt.Sprintf("Ad status updated to %s for step %s", callback.Status, callback.Step))
	}
}
