package handler

import (
	"fmt"
	"net/http"

	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/tracking"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
)

// ListAds retorna os anúncios do client com progresso e etapas
func ListAds(service tracking.Tracker) http.HandlerFunc {
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

		ads, err := service.ListAds(r.Context(), claims.UserID, query)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, ads, "Ads fetched successfully")
	}
}

// AdStatusCounts retorna a contagem de anúncios por status
func AdStatusCounts(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		counts, err := service.StatusCounts(r.Context(), claims.UserID)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, counts, "Status counts fetched successfully")
	}
}

func GetAd(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		ad, err := service.GetAd(r.Context(), claims.UserID, adID)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, ad, "Ad fetched successfully")
	}
}

// ApproveAd move um anúncio pronto para aprovado
func ApproveAd(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		adID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		ad, err := service.ApproveAd(r.Context(), claims.UserID, adID)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, ad, fmt.Sprintf("Ad %s approved", ad.ID))
	}
}
