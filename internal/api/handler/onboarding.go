package handler

import (
	"net/http"

	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/onboarding"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
)

// CreateClient grava as credenciais da conta de anúncios do usuário
func CreateClient(service onboarding.Onboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		var client domain.Client
		if err := json.NewDecoder(r.Body).Decode(&client); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		created, err := service.CreateClient(r.Context(), claims.UserID, &client)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusCreated, created, "Onboarding completed successfully")
	}
}

func GetClient(service onboarding.Onboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentUser(w, r)
		if !ok {
			return
		}

		client, err := service.GetClient(r.Context(), claims.UserID)
		if err != nil {
			writeUsecaseError(w, r, err)
			return
		}

		writeSuccess(w, http.StatusOK, client, "Client fetched successfully")
	}
}
