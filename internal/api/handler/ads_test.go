package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/tracking"
	trackingMocks "github.com/BrianElionDev/Meta-ads-project/internal/usecases/tracking/mocks"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListAds(t *testing.T) {
	createdAt := time.Date(2025, 5, 20, 14, 0, 0, 0, time.UTC)
	ready := domain.AdStatusReady

	tests := []struct {
		name         string
		target       string
		claims       *domain.Claims
		setupMock    func(m *trackingMocks.MockTracker)
		expectedCode int
		expectedErr  string
		expectedLen  int
	}{
		{
			name:   "Deve listar anúncios sem filtro",
			target: "/v1/ads",
			claims: clientClaims,
			setupMock: func(m *trackingMocks.MockTracker) {
				m.EXPECT().ListAds(gomock.Any(), 7, tracking.ListQuery{}).Return([]*domain.AdListItem{
					{ID: "ad-1", Name: "Promo", Status: domain.AdStatusReady, Progress: 60, CreatedAt: createdAt},
					{ID: "ad-2", Name: "Untitled Ad", Status: domain.AdStatusPending, Progress: 10, CreatedAt: createdAt},
				}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name:   "Deve repassar status e limite",
			target: "/v1/ads?status=ready&limit=5",
			claims: clientClaims,
			setupMock: func(m *trackingMocks.MockTracker) {
				m.EXPECT().ListAds(gomock.Any(), 7, tracking.ListQuery{Status: &ready, Limit: 5}).Return([]*domain.AdListItem{}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  0,
		},
		{
			name:   "Deve tratar status all como sem filtro",
			target: "/v1/ads?status=all",
			claims: clientClaims,
			setupMock: func(m *trackingMocks.MockTracker) {
				m.EXPECT().ListAds(gomock.Any(), 7, tracking.ListQuery{}).Return([]*domain.AdListItem{}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Deve rejeitar status desconhecido",
			target:       "/v1/ads?status=archived",
			claims:       clientClaims,
			setupMock:    func(m *trackingMocks.MockTracker) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Deve rejeitar limite zero",
			target:       "/v1/ads?limit=0",
			claims:       clientClaims,
			setupMock:    func(m *trackingMocks.MockTracker) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Deve rejeitar limite não numérico",
			target:       "/v1/ads?limit=abc",
			claims:       clientClaims,
			setupMock:    func(m *trackingMocks.MockTracker) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  apiErrors.ErrInvalidFormat,
		},
		{
			name:         "Deve exigir usuário autenticado",
			target:       "/v1/ads",
			setupMock:    func(m *trackingMocks.MockTracker) {},
			expectedCode: http.StatusUnauthorized,
			expectedErr:  apiErrors.ErrInvalidToken,
		},
		{
			name:   "Deve responder 404 sem onboarding",
			target: "/v1/ads",
			claims: clientClaims,
			setupMock: func(m *trackingMocks.MockTracker) {
				m.EXPECT().ListAds(gomock.Any(), 7, gomock.Any()).
					Return(nil, tracking.NewTrackingError(tracking.ErrClientNotFound, apiErrors.ErrResourceNotFound, ""))
			},
			expectedCode: http.StatusNotFound,
			expectedErr:  apiErrors.ErrResourceNotFound,
		},
		{
			name:   "Deve esconder o erro de banco",
			target: "/v1/ads",
			claims: clientClaims,
			setupMock: func(m *trackingMocks.MockTracker) {
				m.EXPECT().ListAds(gomock.Any(), 7, gomock.Any()).
					Return(nil, tracking.NewTrackingError(tracking.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "pq: relation does not exist"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tracker := trackingMocks.NewMockTracker(ctrl)
			tt.setupMock(tracker)

			rec := serve(t, Tracking(tracker), newRequest(http.MethodGet, tt.target, ""), tt.claims)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			if tt.expectedErr != "" {
				apiErr := decodeError(t, rec)
				assert.Equal(t, tt.expectedErr, apiErr.Code)
				assert.NotContains(t, rec.Body.String(), "pq:")
				return
			}

			var body listEnvelope
			decodeBody(t, rec, &body)
			assert.True(t, body.Success)
			assert.Equal(t, "Ads fetched successfully", body.Message)
			assert.Len(t, body.Data, tt.expectedLen)
		})
	}
}

func TestGetAd(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := trackingMocks.NewMockTracker(ctrl)

	ad := &domain.Ad{ID: "ad-1", AdName: stringPtr("Promo"), Status: domain.AdStatusApproved}
	tracker.EXPECT().GetAd(gomock.Any(), 7, "ad-1").Return(domain.NewAdDetail(ad), nil)
	tracker.EXPECT().GetAd(gomock.Any(), 7, "ad-x").
		Return(nil, tracking.NewTrackingErrorWithID(tracking.ErrAdNotFound, apiErrors.ErrResourceNotFound, "ad-x", ""))

	t.Run("Deve retornar o detalhe com progresso e etapas", func(t *testing.T) {
		rec := serve(t, Tracking(tracker), newRequest(http.MethodGet, "/v1/ads/ad-1", ""), clientClaims)
		require.Equal(t, http.StatusOK, rec.Code)

		var body envelope
		decodeBody(t, rec, &body)
		assert.Equal(t, "ad-1", body.Data["id"])
		assert.Equal(t, "approved", body.Data["status"])
		assert.Equal(t, float64(ad.Progress()), body.Data["progress"])
		assert.NotEmpty(t, body.Data["stages"])
	})

	t.Run("Deve responder 404 com o id do anúncio", func(t *testing.T) {
		rec := serve(t, Tracking(tracker), newRequest(http.MethodGet, "/v1/ads/ad-x", ""), clientClaims)
		require.Equal(t, http.StatusNotFound, rec.Code)

		apiErr := decodeError(t, rec)
		assert.Equal(t, apiErrors.ErrResourceNotFound, apiErr.Code)
		assert.Equal(t, map[string]any{"ad_id": "ad-x"}, apiErr.Details)
	})
}

func TestAdStatusCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := trackingMocks.NewMockTracker(ctrl)

	tracker.EXPECT().StatusCounts(gomock.Any(), 7).Return(&domain.StatusCounts{All: 3, Pending: 1, Posted: 2}, nil)

	rec := serve(t, Tracking(tracker), newRequest(http.MethodGet, "/v1/ad-status-counts", ""), clientClaims)
	require.Equal(t, http.StatusOK, rec.Code)

	var body envelope
	decodeBody(t, rec, &body)
	assert.Equal(t, float64(3), body.Data["all"])
	assert.Equal(t, float64(1), body.Data["pending"])
	assert.Equal(t, float64(2), body.Data["posted"])
	assert.Equal(t, float64(0), body.Data["cancelled"])
}

func TestApproveAd(t *testing.T) {
	tests := []struct {
		name         string
		setupMock    func(m *trackingMocks.MockTracker)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "Deve aprovar o anúncio",
			setupMock: func(m *trackingMocks.MockTracker) {
				m.EXPECT().ApproveAd(gomock.Any(), 7, "ad-1").Return(&domain.Ad{ID: "ad-1", Status: domain.AdStatusApproved}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Deve responder 409 para anúncio cancelado",
			setupMock: func(m *trackingMocks.MockTracker) {
				m.EXPECT().ApproveAd(gomock.Any(), 7, "ad-1").Return(nil, tracking.NewTrackingErrorWithID(
					tracking.ErrStaleTransition, apiErrors.ErrResourceConflict, "ad-1", "cannot move from cancelled to approved"))
			},
			expectedCode: http.StatusConflict,
			expectedErr:  apiErrors.ErrResourceConflict,
		},
		{
			name: "Deve responder 500 genérico para erro desconhecido",
			setupMock: func(m *trackingMocks.MockTracker) {
				m.EXPECT().ApproveAd(gomock.Any(), 7, "ad-1").Return(nil, errors.New("boom"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedErr:  apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			tracker := trackingMocks.NewMockTracker(ctrl)
			tt.setupMock(tracker)

			rec := serve(t, Tracking(tracker), newRequest(http.MethodPost, "/v1/ads/ad-1/approve", ""), clientClaims)
			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedErr != "" {
				apiErr := decodeError(t, rec)
				assert.Equal(t, tt.expectedErr, apiErr.Code)
				if tt.expectedCode == http.StatusConflict {
					assert.Contains(t, apiErr.Message, "cannot move from cancelled to approved")
				}
				return
			}

			var body envelope
			decodeBody(t, rec, &body)
			assert.Equal(t, "approved", body.Data["status"])
		})
	}
}

func TestAdsetAndCampaignRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := trackingMocks.NewMockTracker(ctrl)

	posted := domain.AdStatusPosted
	summary := &domain.AdsetSummary{ID: "as-1", Name: "Lookalike", OptimizationGoal: "REACH", Status: domain.AdStatusReady, AdCount: 2}
	campaign := &domain.CampaignSummary{ID: "c-1", Name: "Summer", Objective: "OUTCOME_SALES", Status: domain.AdStatusReady, AdCount: 2}

	tracker.EXPECT().ListAdsets(gomock.Any(), 7, tracking.ListQuery{Status: &posted}).Return([]*domain.AdsetSummary{summary}, nil)
	tracker.EXPECT().GetAdset(gomock.Any(), 7, "as-1").Return(&domain.AdsetDetail{AdsetSummary: summary, Ads: []*domain.AdRef{{ID: "ad-1"}}}, nil)
	tracker.EXPECT().ListCampaigns(gomock.Any(), 7, tracking.ListQuery{Limit: 10}).Return([]*domain.CampaignSummary{campaign}, nil)
	tracker.EXPECT().GetCampaign(gomock.Any(), 7, "c-404").
		Return(nil, tracking.NewTrackingError(tracking.ErrCampaignNotFound, apiErrors.ErrResourceNotFound, ""))

	t.Run("Deve listar conjuntos filtrando por status", func(t *testing.T) {
		rec := serve(t, Tracking(tracker), newRequest(http.MethodGet, "/v1/adsets?status=posted", ""), clientClaims)
		require.Equal(t, http.StatusOK, rec.Code)

		var body listEnvelope
		decodeBody(t, rec, &body)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "as-1", body.Data[0]["id"])
		assert.Equal(t, float64(2), body.Data[0]["ad_count"])
	})

	t.Run("Deve retornar o conjunto com seus anúncios", func(t *testing.T) {
		rec := serve(t, Tracking(tracker), newRequest(http.MethodGet, "/v1/adsets/as-1", ""), clientClaims)
		require.Equal(t, http.StatusOK, rec.Code)

		var body envelope
		decodeBody(t, rec, &body)
		assert.Equal(t, "Lookalike", body.Data["name"])
		assert.Len(t, body.Data["ads"], 1)
	})

	t.Run("Deve listar campanhas com limite", func(t *testing.T) {
		rec := serve(t, Tracking(tracker), newRequest(http.MethodGet, "/v1/campaigns?limit=10", ""), clientClaims)
		require.Equal(t, http.StatusOK, rec.Code)

		var body listEnvelope
		decodeBody(t, rec, &body)
		require.Len(t, body.Data, 1)
		assert.Equal(t, "OUTCOME_SALES", body.Data[0]["objective"])
	})

	t.Run("Deve responder 404 para campanha inexistente", func(t *testing.T) {
		rec := serve(t, Tracking(tracker), newRequest(http.MethodGet, "/v1/campaigns/c-404", ""), clientClaims)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouterNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := trackingMocks.NewMockTracker(ctrl)

	rec := serve(t, Tracking(tracker), newRequest(http.MethodGet, "/v1/unknown", ""), clientClaims)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)

	rec = serve(t, Tracking(tracker), newRequest(http.MethodDelete, "/v1/ads", ""), clientClaims)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, apiErrors.ErrMethodNotAllowed, decodeError(t, rec).Code)
	assert.Equal(t, "Method not allowed", decodeError(t, rec).Error)
}

func TestGroupStatusCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	tracker := trackingMocks.NewMockTracker(ctrl)

	tracker.EXPECT().AdsetStatusCounts(gomock.Any(), 7).Return(&domain.StatusCounts{All: 2, Ready: 1, Posted: 1}, nil)
	tracker.EXPECT().CampaignStatusCounts(gomock.Any(), 7).Return(&domain.StatusCounts{All: 1, Cancelled: 1}, nil)

	t.Run("Deve contar conjuntos", func(t *testing.T) {
		rec := serve(t, Tracking(tracker), newRequest(http.MethodGet, "/v1/adset-status-counts", ""), clientClaims)
		require.Equal(t, http.StatusOK, rec.Code)

		var body envelope
		decodeBody(t, rec, &body)
		assert.Equal(t, float64(2), body.Data["all"])
		assert.Equal(t, float64(1), body.Data["ready"])
		assert.Equal(t, float64(1), body.Data["posted"])
	})

	t.Run("Deve contar campanhas", func(t *testing.T) {
		rec := serve(t, Tracking(tracker), newRequest(http.MethodGet, "/v1/campaign-status-counts", ""), clientClaims)
		require.Equal(t, http.StatusOK, rec.Code)

		var body envelope
		decodeBody(t, rec, &body)
		assert.Equal(t, float64(1), body.Data["all"])
		assert.Equal(t, float64(1), body.Data["cancelled"])
	})
}
