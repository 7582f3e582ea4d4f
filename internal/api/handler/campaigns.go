package handler

import (
	"net/http"

	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/submission"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/tracking"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
)

func ListCampaigns(service tracking.Tracker) http.HandlerFunc {
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

		campaigns, err := service.ListCampaigns(r.Context(), claims.UserID, query)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, campaigns, "Campaigns fetched successfully")
	}
}

// GetCampaign retorna a campanha com os conjuntos aninhados
func GetCampaign(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := service.GetCampaign(r.Context(), claims.UserID, campaignID)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, campaign, "Campaign fetched successfully")
	}
}

// SubmitCampaign registra o anúncio pendente e dispara a automação
func SubmitCampaign(service submission.Submitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req domain.CampaignSubmission
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		result, err := service.SubmitCampaign(r.Context(), claims.UserID, &req)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusCreated, result, "Campaign submitted successfully")
	}
}

// CampaignStatusCounts retorna a contagem de campanhas por status agregado
func CampaignStatusCounts(service tracking.Tracker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		counts, err := service.CampaignStatusCounts(r.Context(), claims.UserID)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, counts, "Campaign status counts fetched successfully")
	}
}
