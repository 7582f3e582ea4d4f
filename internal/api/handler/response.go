package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/authenticating"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/onboarding"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/submission"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/tracking"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/BrianElionDev/Meta-ads-project/pkg/log"
	"github.com/BrianElionDev/Meta-ads-project/pkg/middleware"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const internalErrorMessage = "Internal server error"

// SuccessResponse é o envelope das respostas de sucesso
type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.L.WithError(err).Error("http: failed to encode response")
	}
}

func writeSuccess(w http.ResponseWriter, status int, data any, message string) {
	writeJSON(w, status, SuccessResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

// currentUser lê as claims colocadas pelo AuthMiddleware
func currentUser(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Unauthorized", nil)
		return nil, false
	}
	return claims, true
}

// writeUsecaseError traduz os erros tipados dos casos de uso para a resposta HTTP.
// Falhas de banco nunca expõem o erro original.
func writeUsecaseError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		code    string
		details any
	)

	var trackingErr *tracking.TrackingError
	var submissionErr *submission.SubmissionError
	var onboardingErr *onboarding.OnboardingError
	var authErr *authenticating.AuthError

	switch {
	case errors.As(err, &trackingErr):
		code = trackingErr.Code
		if trackingErr.AdID != "" {
			details = map[string]any{"ad_id": trackingErr.AdID}
		}
	case errors.As(err, &submissionErr):
		code = submissionErr.Code
	case errors.As(err, &onboardingErr):
		code = onboardingErr.Code
	case errors.As(err, &authErr):
		code = authErr.Code
	default:
		log.ForContext(r.Context()).WithError(err).Error("http: unhandled error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, internalErrorMessage, nil)
		return
	}

	switch code {
	case apiErrors.ErrDatabaseOperation, apiErrors.ErrInternalServer:
		apiErrors.WriteError(w, code, internalErrorMessage, nil)
	default:
		apiErrors.WriteError(w, code, err.Error(), details)
	}
}

// parseListQuery lê os filtros status e limit. status=all ou vazio não filtra.
func parseListQuery(r *http.Request) (tracking.ListQuery, string, bool) {
	var query tracking.ListQuery
	values := r.URL.Query()

	if raw := values.Get("status"); raw != "" && raw != "all" {
		status, err := domain.ParseAdStatus(raw)
		if err != nil {
			return query, "Invalid status filter: " + raw, false
		}
		query.Status = &status
	}

	if raw := values.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || limit == 0 {
			return query, "limit must be a positive integer", false
		}
		query.Limit = limit
	}

	return query, "", true
}
