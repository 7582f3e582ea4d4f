package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BrianElionDev/Meta-ads-project/internal/api/handler/router"
	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/BrianElionDev/Meta-ads-project/pkg/middleware"
	"github.com/stretchr/testify/require"
)

var clientClaims = &domain.Claims{UserID: 7, UserEmail: "ana@example.com", UserRoleID: domain.RoleClient}

// serve executa a requisição pelo router, com as claims já no contexto quando informadas
func serve(t *testing.T, routes []router.Route, req *http.Request, claims *domain.Claims) *httptest.ResponseRecorder {
	t.Helper()

	if claims != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
	}

	rt := router.New(router.WithRoutes(routes...))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func newRequest(method, target, body string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

type envelope struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data"`
	Message string         `json:"message"`
}

type listEnvelope struct {
	Success bool             `json:"success"`
	Data    []map[string]any `json:"data"`
	Message string           `json:"message"`
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()
	var apiErr apiErrors.APIError
	decodeBody(t, rec, &apiErr)
	return apiErr
}

func stringPtr(s string) *string {
	return &s
}
