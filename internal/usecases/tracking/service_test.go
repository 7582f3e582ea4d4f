package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BrianElionDev/Meta-ads-project/infrastructure/repository/mocks"
	"github.com/BrianElionDev/Meta-ads-project/internal/config"
	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/BrianElionDev/Meta-ads-project/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 5, 20, 14, 0, 0, 0, time.UTC)

func stringPtr(s string) *string {
	return &s
}

type trackingFixture struct {
	service    *Service
	adRepo     *mocks.MockAdRepository
	clientRepo *mocks.MockClientRepository
}

func newTrackingFixture(t *testing.T, enforceOrder bool) *trackingFixture {
	ctrl := gomock.NewController(t)

	adRepo := mocks.NewMockAdRepository(ctrl)
	clientRepo := mocks.NewMockClientRepository(ctrl)

	cfg := &config.Config{Workflow: config.Workflow{EnforceStatusOrder: enforceOrder}}

	service := NewService(adRepo, clientRepo, cfg, metrics.New(prometheus.NewRegistry())).(*Service)
	service.now = func() time.Time { return fixedNow }

	return &trackingFixture{
		service:    service,
		adRepo:     adRepo,
		clientRepo: clientRepo,
	}
}

func (f *trackingFixture) expectClient(userID int, accountID string) {
	f.clientRepo.EXPECT().
		GetByUserID(gomock.Any(), userID).
		Return(&domain.Client{ID: "cl1", UserID: userID, AdAccountID: accountID}, nil)
}

func assertTrackingError(t *testing.T, err error, sentinel error, code string) {
	t.Helper()

	var trackingErr *TrackingError
	require.ErrorAs(t, err, &trackingErr)
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, code, trackingErr.Code)
}

func groupedAd(id, campaignID, adsetID string, status domain.AdStatus, createdAt time.Time) *domain.Ad {
	return &domain.Ad{
		ID:           id,
		AdAccountID:  "act_1",
		AdName:       stringPtr("Ad " + id),
		CampaignID:   stringPtr(campaignID),
		CampaignName: stringPtr("Campaign " + campaignID),
		AdsetID:      stringPtr(adsetID),
		AdsetName:    stringPtr("Adset " + adsetID),
		Status:       status,
		CreatedAt:    createdAt,
	}
}

func TestService_ResolveAccount(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(f *trackingFixture)
		wantSentinel error
		wantCode     string
	}{
		{
			name: "Usuário sem onboarding",
			setup: func(f *trackingFixture) {
				f.clientRepo.EXPECT().GetByUserID(gomock.Any(), 7).Return(nil, nil)
			},
			wantSentinel: ErrClientNotFound,
			wantCode:     apiErrors.ErrResourceNotFound,
		},
		{
			name: "Falha no banco ao buscar o client",
			setup: func(f *trackingFixture) {
				f.clientRepo.EXPECT().GetByUserID(gomock.Any(), 7).Return(nil, errors.New("connection reset"))
			},
			wantSentinel: ErrDatabaseOperation,
			wantCode:     apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTrackingFixture(t, true)
			tt.setup(f)

			items, err := f.service.ListAds(context.Background(), 7, ListQuery{})

			assert.Nil(t, items)
			assertTrackingError(t, err, tt.wantSentinel, tt.wantCode)
			assert.NotContains(t, err.Error(), "connection reset")
		})
	}
}

func TestService_ListAds(t *testing.T) {
	f := newTrackingFixture(t, true)
	f.expectClient(7, "act_1")

	posted := domain.AdStatusPosted
	f.adRepo.EXPECT().
		List(gomock.Any(), domain.AdFilter{AccountID: "act_1", Status: &posted, Limit: 5}).
		Return([]*domain.Ad{
			{ID: "a1", Status: domain.AdStatusPosted, AdName: stringPtr("Summer"), CreatedAt: fixedNow},
			{ID: "a2", Status: domain.AdStatusPosted, CreatedAt: fixedNow},
		}, nil)

	items, err := f.service.ListAds(context.Background(), 7, ListQuery{Status: &posted, Limit: 5})

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Summer", items[0].Name)
	assert.Equal(t, 100, items[0].Progress)
	assert.Equal(t, "Untitled Ad", items[1].Name)
}

func TestService_ListAds_DatabaseError(t *testing.T) {
	f := newTrackingFixture(t, true)
	f.expectClient(7, "act_1")
	f.adRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))

	_, err := f.service.ListAds(context.Background(), 7, ListQuery{})

	assertTrackingError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
}

func TestService_GetAd(t *testing.T) {
	t.Run("Anúncio com progresso e etapas", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.expectClient(7, "act_1")

		ad := &domain.Ad{ID: "a1", Status: domain.AdStatusReady, CampaignID: stringPtr("c1"), ContentCreationCompletedAt: &fixedNow}
		f.adRepo.EXPECT().GetByID(gomock.Any(), "act_1", "a1").Return(ad, nil)

		detail, err := f.service.GetAd(context.Background(), 7, "a1")

		require.NoError(t, err)
		assert.Equal(t, 50, detail.Progress)
		require.Len(t, detail.Stages, len(domain.PipelineStages))
		assert.Equal(t, domain.StageStateCompleted, detail.Stages[0].State)
		assert.Equal(t, domain.StageStateInProgress, detail.Stages[1].State)
	})

	t.Run("Anúncio de outra conta não é encontrado", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.expectClient(7, "act_1")
		f.adRepo.EXPECT().GetByID(gomock.Any(), "act_1", "a9").Return(nil, nil)

		detail, err := f.service.GetAd(context.Background(), 7, "a9")

		assert.Nil(t, detail)
		assertTrackingError(t, err, ErrAdNotFound, apiErrors.ErrResourceNotFound)
	})
}

func TestService_ListAdsets(t *testing.T) {
	f := newTrackingFixture(t, true)
	f.expectClient(7, "act_1")

	f.adRepo.EXPECT().
		List(gomock.Any(), domain.AdFilter{AccountID: "act_1", RequireAdset: true}).
		Return([]*domain.Ad{
			groupedAd("3", "C", "A", domain.AdStatusApproved, fixedNow),
			groupedAd("2", "C", "B", domain.AdStatusPending, fixedNow.Add(-time.Hour)),
			groupedAd("1", "C", "A", domain.AdStatusReady, fixedNow.Add(-2*time.Hour)),
		}, nil)

	adsets, err := f.service.ListAdsets(context.Background(), 7, ListQuery{})

	require.NoError(t, err)
	require.Len(t, adsets, 2)
	assert.Equal(t, "A", adsets[0].ID)
	assert.Equal(t, domain.AdStatusApproved, adsets[0].Status)
	assert.Equal(t, 2, adsets[0].AdCount)
	assert.Equal(t, "B", adsets[1].ID)
}

func TestService_GetAdset(t *testing.T) {
	t.Run("Conjunto com anúncios", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.expectClient(7, "act_1")

		adsetID := "A"
		f.adRepo.EXPECT().
			List(gomock.Any(), domain.AdFilter{AccountID: "act_1", AdsetID: &adsetID}).
			Return([]*domain.Ad{
				groupedAd("2", "C", "A", domain.AdStatusPosted, fixedNow),
				groupedAd("1", "C", "A", domain.AdStatusPending, fixedNow.Add(-time.Hour)),
			}, nil)

		detail, err := f.service.GetAdset(context.Background(), 7, "A")

		require.NoError(t, err)
		assert.Equal(t, domain.AdStatusPosted, detail.Status)
		assert.Len(t, detail.Ads, 2)
	})

	t.Run("Conjunto inexistente", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.expectClient(7, "act_1")
		f.adRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return([]*domain.Ad{}, nil)

		detail, err := f.service.GetAdset(context.Background(), 7, "Z")

		assert.Nil(t, detail)
		assertTrackingError(t, err, ErrAdsetNotFound, apiErrors.ErrResourceNotFound)
	})
}

func TestService_ListCampaigns(t *testing.T) {
	f := newTrackingFixture(t, true)
	f.expectClient(7, "act_1")

	cancelled := domain.AdStatusCancelled
	f.adRepo.EXPECT().
		List(gomock.Any(), domain.AdFilter{AccountID: "act_1", Status: &cancelled, Limit: 10, RequireCampaign: true}).
		Return([]*domain.Ad{
			groupedAd("2", "C1", "A", domain.AdStatusCancelled, fixedNow),
			groupedAd("1", "C1", "B", domain.AdStatusCancelled, fixedNow.Add(-time.Hour)),
		}, nil)

	campaigns, err := f.service.ListCampaigns(context.Background(), 7, ListQuery{Status: &cancelled, Limit: 10})

	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, domain.AdStatusCancelled, campaigns[0].Status)
	assert.Equal(t, 2, campaigns[0].AdCount)
}

func TestService_GetCampaign(t *testing.T) {
	t.Run("Campanha com conjuntos aninhados", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.expectClient(7, "act_1")

		campaignID := "C1"
		f.adRepo.EXPECT().
			List(gomock.Any(), domain.AdFilter{AccountID: "act_1", CampaignID: &campaignID}).
			Return([]*domain.Ad{
				groupedAd("3", "C1", "B", domain.AdStatusReady, fixedNow),
				groupedAd("2", "C1", "A", domain.AdStatusApproved, fixedNow.Add(-time.Hour)),
				groupedAd("1", "C1", "A", domain.AdStatusPending, fixedNow.Add(-2*time.Hour)),
			}, nil)

		detail, err := f.service.GetCampaign(context.Background(), 7, "C1")

		require.NoError(t, err)
		assert.Equal(t, domain.AdStatusApproved, detail.Status)
		assert.Equal(t, 3, detail.AdCount)
		require.Len(t, detail.Adsets, 2)
		assert.Equal(t, "B", detail.Adsets[0].ID)
		assert.Len(t, detail.Adsets[1].Ads, 2)
	})

	t.Run("Campanha inexistente", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.expectClient(7, "act_1")
		f.adRepo.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := f.service.GetCampaign(context.Background(), 7, "missing")

		assertTrackingError(t, err, ErrCampaignNotFound, apiErrors.ErrResourceNotFound)
	})
}

func TestService_StatusCounts(t *testing.T) {
	f := newTrackingFixture(t, true)
	f.expectClient(7, "act_1")

	f.adRepo.EXPECT().
		List(gomock.Any(), domain.AdFilter{AccountID: "act_1"}).
		Return([]*domain.Ad{
			{Status: domain.AdStatusPending},
			{Status: domain.AdStatusPending},
			{Status: domain.AdStatusPosted},
			{Status: domain.AdStatus("archived")},
		}, nil)

	counts, err := f.service.StatusCounts(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, 4, counts.All)
	assert.Equal(t, 2, counts.Pending)
	assert.Equal(t, 1, counts.Posted)
	assert.Equal(t, 0, counts.Cancelled)
}

func TestService_GroupStatusCounts(t *testing.T) {
	ads := []*domain.Ad{
		groupedAd("4", "C2", "D", domain.AdStatusCancelled, fixedNow),
		groupedAd("3", "C1", "B", domain.AdStatusReady, fixedNow.Add(-time.Hour)),
		groupedAd("2", "C1", "A", domain.AdStatusPosted, fixedNow.Add(-2*time.Hour)),
		groupedAd("1", "C1", "A", domain.AdStatusPending, fixedNow.Add(-3*time.Hour)),
	}

	t.Run("Conjuntos por status agregado", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.expectClient(7, "act_1")
		f.adRepo.EXPECT().
			List(gomock.Any(), domain.AdFilter{AccountID: "act_1", RequireAdset: true}).
			Return(ads, nil)

		counts, err := f.service.AdsetStatusCounts(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCounts{All: 3, Ready: 1, Posted: 1, Cancelled: 1}, *counts)
	})

	t.Run("Campanhas por status agregado", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.expectClient(7, "act_1")
		f.adRepo.EXPECT().
			List(gomock.Any(), domain.AdFilter{AccountID: "act_1", RequireCampaign: true}).
			Return(ads, nil)

		counts, err := f.service.CampaignStatusCounts(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, domain.StatusCounts{All: 2, Posted: 1, Cancelled: 1}, *counts)
	})

	t.Run("Usuário sem client", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.clientRepo.EXPECT().GetByUserID(gomock.Any(), 7).Return(nil, nil)

		counts, err := f.service.CampaignStatusCounts(context.Background(), 7)

		assert.Nil(t, counts)
		assertTrackingError(t, err, ErrClientNotFound, apiErrors.ErrResourceNotFound)
	})
}

func TestService_ApplyCallback_Validation(t *testing.T) {
	tests := []struct {
		name         string
		callback     *domain.AdStatusCallback
		wantSentinel error
		wantCode     string
	}{
		{
			name:         "Sem ad_id",
			callback:     &domain.AdStatusCallback{Status: "ready", Step: "approval"},
			wantSentinel: ErrMissingRequiredData,
			wantCode:     apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Sem step",
			callback:     &domain.AdStatusCallback{AdID: "a1", Status: "ready"},
			wantSentinel: ErrMissingRequiredData,
			wantCode:     apiErrors.ErrMissingRequiredData,
		},
		{
			name:         "Status fora da lista",
			callback:     &domain.AdStatusCallback{AdID: "a1", Status: "done", Step: "approval"},
			wantSentinel: ErrInvalidStatus,
			wantCode:     apiErrors.ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTrackingFixture(t, true)

			ad, err := f.service.ApplyCallback(context.Background(), tt.callback)

			assert.Nil(t, ad)
			assertTrackingError(t, err, tt.wantSentinel, tt.wantCode)
		})
	}
}

func TestService_ApplyCallback_SparseUpdate(t *testing.T) {
	f := newTrackingFixture(t, true)

	callback := &domain.AdStatusCallback{
		AdID:              "a1",
		Status:            "ready",
		Step:              "adcreative_creation",
		CampaignID:        stringPtr("c9"),
		AdsetIDLower:      stringPtr("s9"),
		AdCreativeID:      stringPtr(""),
		FacebookImageURL:  stringPtr("https://cdn.example.com/img.png"),
		AdCreativeIDLower: nil,
	}

	updated := &domain.Ad{ID: "a1", Status: domain.AdStatusReady}

	f.adRepo.EXPECT().
		ApplyUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update *domain.AdUpdate) (*domain.Ad, error) {
			assert.Equal(t, "a1", update.ID)
			assert.Nil(t, update.AccountID)
			assert.Equal(t, domain.AdStatusReady, update.Status)
			assert.Equal(t, fixedNow, update.At)
			require.NotNil(t, update.Stage)
			assert.Equal(t, domain.StageAdCreativeCreation, *update.Stage)
			assert.Equal(t, "c9", *update.CampaignID)
			assert.Equal(t, "s9", *update.AdsetID)
			assert.Nil(t, update.AdCreativeID)
			assert.Nil(t, update.PlatformAdID)
			assert.Equal(t, "https://cdn.example.com/img.png", *update.FacebookImageURL)
			assert.ElementsMatch(t, []domain.AdStatus{domain.AdStatusPending, domain.AdStatusReady}, update.AllowedPrior)
			return updated, nil
		})

	ad, err := f.service.ApplyCallback(context.Background(), callback)

	require.NoError(t, err)
	assert.Equal(t, updated, ad)
}

func TestService_ApplyCallback_WithoutOrderGuard(t *testing.T) {
	f := newTrackingFixture(t, false)

	f.adRepo.EXPECT().
		ApplyUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, update *domain.AdUpdate) (*domain.Ad, error) {
			assert.Empty(t, update.AllowedPrior)
			return &domain.Ad{ID: update.ID, Status: update.Status}, nil
		})

	ad, err := f.service.ApplyCallback(context.Background(), &domain.AdStatusCallback{AdID: "a1", Status: "pending", Step: "free text step"})

	require.NoError(t, err)
	assert.Equal(t, domain.AdStatusPending, ad.Status)
}

func TestService_ApplyCallback_NoRowsMatched(t *testing.T) {
	tests := []struct {
		name         string
		current      *domain.Ad
		currentErr   error
		wantSentinel error
		wantCode     string
	}{
		{
			name:         "Anúncio inexistente",
			current:      nil,
			wantSentinel: ErrAdNotFound,
			wantCode:     apiErrors.ErrResourceNotFound,
		},
		{
			name:         "Transição recusada pela guarda de ordenação",
			current:      &domain.Ad{ID: "a1", Status: domain.AdStatusPosted},
			wantSentinel: ErrStaleTransition,
			wantCode:     apiErrors.ErrResourceConflict,
		},
		{
			name:         "Falha ao reler o anúncio",
			currentErr:   errors.New("boom"),
			wantSentinel: ErrDatabaseOperation,
			wantCode:     apiErrors.ErrDatabaseOperation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTrackingFixture(t, true)

			f.adRepo.EXPECT().ApplyUpdate(gomock.Any(), gomock.Any()).Return(nil, nil)
			f.adRepo.EXPECT().GetByID(gomock.Any(), "", "a1").Return(tt.current, tt.currentErr)

			ad, err := f.service.ApplyCallback(context.Background(), &domain.AdStatusCallback{AdID: "a1", Status: "ready", Step: "approval"})

			assert.Nil(t, ad)
			assertTrackingError(t, err, tt.wantSentinel, tt.wantCode)
		})
	}
}

func TestService_ApplyCallback_DatabaseError(t *testing.T) {
	f := newTrackingFixture(t, true)
	f.adRepo.EXPECT().ApplyUpdate(gomock.Any(), gomock.Any()).Return(nil, errors.New("pq: deadlock detected"))

	_, err := f.service.ApplyCallback(context.Background(), &domain.AdStatusCallback{AdID: "a1", Status: "ready", Step: "approval"})

	assertTrackingError(t, err, ErrDatabaseOperation, apiErrors.ErrDatabaseOperation)
	assert.NotContains(t, err.Error(), "deadlock")
}

func TestService_ApplyCallback_Posted(t *testing.T) {
	t.Run("Publicado sem id da plataforma gravado nem informado", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.adRepo.EXPECT().GetByID(gomock.Any(), "", "a1").Return(&domain.Ad{ID: "a1", Status: domain.AdStatusApproved}, nil)

		_, err := f.service.ApplyCallback(context.Background(), &domain.AdStatusCallback{AdID: "a1", Status: "posted", Step: "ad_posting"})

		assertTrackingError(t, err, ErrPostedWithoutAdID, apiErrors.ErrMissingRequiredData)
	})

	t.Run("Publicado com id da plataforma já gravado", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.adRepo.EXPECT().
			GetByID(gomock.Any(), "", "a1").
			Return(&domain.Ad{ID: "a1", Status: domain.AdStatusApproved, PlatformAdID: stringPtr("fb_1")}, nil)
		f.adRepo.EXPECT().
			ApplyUpdate(gomock.Any(), gomock.Any()).
			Return(&domain.Ad{ID: "a1", Status: domain.AdStatusPosted, PlatformAdID: stringPtr("fb_1")}, nil)

		ad, err := f.service.ApplyCallback(context.Background(), &domain.AdStatusCallback{AdID: "a1", Status: "posted", Step: "ad_posting"})

		require.NoError(t, err)
		assert.Equal(t, 100, ad.Progress())
	})

	t.Run("Publicado informando o id da plataforma não relê o anúncio", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.adRepo.EXPECT().
			ApplyUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update *domain.AdUpdate) (*domain.Ad, error) {
				assert.Equal(t, "fb_2", *update.PlatformAdID)
				return &domain.Ad{ID: "a1", Status: domain.AdStatusPosted, PlatformAdID: update.PlatformAdID}, nil
			})

		_, err := f.service.ApplyCallback(context.Background(), &domain.AdStatusCallback{
			AdID:         "a1",
			Status:       "posted",
			Step:         "ad_posting",
			PlatformAdID: stringPtr("fb_2"),
		})

		require.NoError(t, err)
	})
}

func TestService_ApproveAd(t *testing.T) {
	t.Run("Aprovação restrita à conta do usuário", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.expectClient(7, "act_1")

		f.adRepo.EXPECT().
			ApplyUpdate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, update *domain.AdUpdate) (*domain.Ad, error) {
				require.NotNil(t, update.AccountID)
				assert.Equal(t, "act_1", *update.AccountID)
				assert.Equal(t, domain.AdStatusApproved, update.Status)
				assert.Equal(t, domain.StageApproval, *update.Stage)
				assert.NotContains(t, update.AllowedPrior, domain.AdStatusCancelled)
				assert.NotContains(t, update.AllowedPrior, domain.AdStatusPosted)
				return &domain.Ad{ID: "a1", Status: domain.AdStatusApproved, ApprovalCompletedAt: &fixedNow}, nil
			})

		ad, err := f.service.ApproveAd(context.Background(), 7, "a1")

		require.NoError(t, err)
		assert.Equal(t, domain.AdStatusApproved, ad.Status)
	})

	t.Run("Anúncio cancelado não pode ser aprovado", func(t *testing.T) {
		f := newTrackingFixture(t, true)
		f.expectClient(7, "act_1")
		f.adRepo.EXPECT().ApplyUpdate(gomock.Any(), gomock.Any()).Return(nil, nil)
		f.adRepo.EXPECT().GetByID(gomock.Any(), "act_1", "a1").Return(&domain.Ad{ID: "a1", Status: domain.AdStatusCancelled}, nil)

		_, err := f.service.ApproveAd(context.Background(), 7, "a1")

		assertTrackingError(t, err, ErrStaleTransition, apiErrors.ErrResourceConflict)
		assert.Contains(t, err.Error(), "cannot move from cancelled to approved")
	})
}
