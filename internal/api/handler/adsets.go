package handler

import (
	"net/http"

	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/tracking"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
)

func ListAdsets(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		query, msg, ok := parseListQuery(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, msg, nil)
			return
		}

		adsets, err := service.ListAdsets(r.Context(), claims.UserID, query)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, adsets, "Adsets fetched successfully")
	}
}

// GetAdset retorna o conjunto com os anúncios que o compõem
func GetAdset(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		adsetID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		adset, err := service.GetAdset(r.Context(), claims.UserID, adsetID)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, adset, "Adset fetched successfully")
	}
}

// AdsetStatusCounts retorna a contagem de conjuntos por status agregado
func AdsetStatusCounts(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		counts, err := service.AdsetStatusCounts(r.Context(), claims.UserID)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, counts, "Adset status counts fetched successfully")
	}
}
