package tracking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BrianElionDev/Meta-ads-project/infrastructure/repository"
	"github.com/BrianElionDev/Meta-ads-project/internal/config"
	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/BrianElionDev/Meta-ads-project/pkg/log"
	"github.com/BrianElionDev/Meta-ads-project/pkg/metrics"
	"github.com/BrianElionDev/Meta-ads-project/pkg/utils"
)

type Tracker interface {
	ListAds(ctx context.Context, userID int, query ListQuery) ([]*domain.AdListItem, error)
	GetAd(ctx context.Context, userID int, adID string) (*domain.AdDetail, error)
	ListAdsets(ctx context.Context, userID int, query ListQuery) ([]*domain.AdsetSummary, error)
	GetAdset(ctx context.Context, userID int, adsetID string) (*domain.AdsetDetail, error)
	ListCampaigns(ctx context.Context, userID int, query ListQuery) ([]*domain.CampaignSummary, error)
	GetCampaign(ctx context.Context, userID int, campaignID string) (*domain.CampaignDetail, error)
	StatusCounts(ctx context.Context, userID int) (*domain.StatusCounts, error)
	AdsetStatusCounts(ctx context.Context, userID int) (*domain.StatusCounts, error)
	CampaignStatusCounts(ctx context.Context, userID int) (*domain.StatusCounts, error)
	ApplyCallback(ctx context.Context, callback *domain.AdStatusCallback) (*domain.Ad, error)
	ApproveAd(ctx context.Context, userID int, adID string) (*domain.Ad, error)
}

// ListQuery são os filtros aceitos pelas listagens. O filtro de status e o
// limite valem para os anúncios, antes do agrupamento.
type ListQuery struct {
	Status *domain.AdStatus
	Limit  uint64
}

type Service struct {
	adRepo     repository.AdRepository
	clientRepo repository.ClientRepository
	cfg        *config.Config
	metrics    *metrics.Metrics
	now        func() time.Time
}

func NewService(
	adRepo repository.AdRepository,
	clientRepo repository.ClientRepository,
	cfg *config.Config,
	m *metrics.Metrics,
) Tracker {
	return &Service{
		adRepo:     adRepo,
		clientRepo: clientRepo,
		cfg:        cfg,
		metrics:    m,
		now:        time.Now,
	}
}

// resolveAccount retorna a conta de anúncios do usuário, que define o escopo de todas as leituras
func (s *Service) resolveAccount(ctx context.Context, userID int) (string, error) {
	client, err := s.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("tracking: failed to load client")
		return "", NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	if client == nil {
		return "", NewTrackingError(ErrClientNotFound, apiErrors.ErrResourceNotFound, "")
	}

	return client.AdAccountID, nil
}

func (s *Service) listAds(ctx context.Context, filter domain.AdFilter) ([]*domain.Ad, error) {
	ads, err := s.adRepo.List(ctx, filter)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("ad_account_id", filter.AccountID).Error("tracking: failed to list ads")
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}
	return ads, nil
}

func (s *Service) ListAds(ctx context.Context, userID int, query ListQuery) ([]*domain.AdListItem, error) {
	accountID, err := s.resolveAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	ads, err := s.listAds(ctx, domain.AdFilter{
		AccountID: accountID,
		Status:    query.Status,
		Limit:     query.Limit,
	})
	if err != nil {
		return nil, err
	}

	items := make([]*domain.AdListItem, 0, len(ads))
	for _, ad := range ads {
		items = append(items, domain.NewAdListItem(ad))
	}

	return items, nil
}

func (s *Service) GetAd(ctx context.Context, userID int, adID string) (*domain.AdDetail, error) {
	accountID, err := s.resolveAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	ad, err := s.adRepo.GetByID(ctx, accountID, adID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("ad_id", adID).Error("tracking: failed to load ad")
		return nil, NewTrackingErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, adID, "")
	}

	if ad == nil {
		return nil, NewTrackingErrorWithID(ErrAdNotFound, apiErrors.ErrResourceNotFound, adID, "")
	}

	return domain.NewAdDetail(ad), nil
}

func (s *Service) ListAdsets(ctx context.Context, userID int, query ListQuery) ([]*domain.AdsetSummary, error) {
	accountID, err := s.resolveAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	ads, err := s.listAds(ctx, domain.AdFilter{
		AccountID:    accountID,
		Status:       query.Status,
		Limit:        query.Limit,
		RequireAdset: true,
	})
	if err != nil {
		return nil, err
	}

	return domain.RollupAdsets(ads), nil
}

func (s *Service) GetAdset(ctx context.Context, userID int, adsetID string) (*domain.AdsetDetail, error) {
	accountID, err := s.resolveAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	ads, err := s.listAds(ctx, domain.AdFilter{
		AccountID: accountID,
		AdsetID:   &adsetID,
	})
	if err != nil {
		return nil, err
	}

	detail := domain.BuildAdsetDetail(adsetID, ads)
	if detail == nil {
		return nil, NewTrackingError(ErrAdsetNotFound, apiErrors.ErrResourceNotFound, "")
	}

	return detail, nil
}

func (s *Service) ListCampaigns(ctx context.Context, userID int, query ListQuery) ([]*domain.CampaignSummary, error) {
	accountID, err := s.resolveAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	ads, err := s.listAds(ctx, domain.AdFilter{
		AccountID:       accountID,
		Status:          query.Status,
		Limit:           query.Limit,
		RequireCampaign: true,
	})
	if err != nil {
		return nil, err
	}

	return domain.RollupCampaigns(ads), nil
}

func (s *Service) GetCampaign(ctx context.Context, userID int, campaignID string) (*domain.CampaignDetail, error) {
	accountID, err := s.resolveAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	ads, err := s.listAds(ctx, domain.AdFilter{
		AccountID:  accountID,
		CampaignID: &campaignID,
	})
	if err != nil {
		return nil, err
	}

	detail := domain.BuildCampaignDetail(campaignID, ads)
	if detail == nil {
		return nil, NewTrackingError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, "")
	}

	return detail, nil
}

func (s *Service) StatusCounts(ctx context.Context, userID int) (*domain.StatusCounts, error) {
	accountID, err := s.resolveAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	ads, err := s.listAds(ctx, domain.AdFilter{AccountID: accountID})
	if err != nil {
		return nil, err
	}

	counts := domain.CountByStatus(ads)
	return &counts, nil
}

// AdsetStatusCounts conta os conjuntos da conta pelo status agregado
func (s *Service) AdsetStatusCounts(ctx context.Context, userID int) (*domain.StatusCounts, error) {
	adsets, err := s.ListAdsets(ctx, userID, ListQuery{})
	if err != nil {
		return nil, err
	}

	counts := domain.CountAdsetsByStatus(adsets)
	return &counts, nil
}

// CampaignStatusCounts conta as campanhas da conta pelo status agregado
func (s *Service) CampaignStatusCounts(ctx context.Context, userID int) (*domain.StatusCounts, error) {
	campaigns, err := s.ListCampaigns(ctx, userID, ListQuery{})
	if err != nil {
		return nil, err
	}

	counts := domain.CountCampaignsByStatus(campaigns)
	return &counts, nil
}

// ApplyCallback registra o avanço informado pela automação. Os campos ausentes
// não são alterados e o timestamp da etapa só é gravado na primeira vez.
func (s *Service) ApplyCallback(ctx context.Context, callback *domain.AdStatusCallback) (*domain.Ad, error) {
	if err := utils.ValidateStruct(callback); err != nil {
		sentinel, code := ErrMissingRequiredData, apiErrors.ErrMissingRequiredData
		if utils.HasValidationTag(err, "oneof") {
			sentinel, code = ErrInvalidStatus, apiErrors.ErrInvalidFormat
		}

		s.recordCallback(callback.Status, "invalid")
		return nil, NewTrackingErrorWithID(sentinel, code, callback.AdID, strings.Join(utils.ValidationMessages(err), "; "))
	}

	update := domain.NewAdUpdate(callback, s.now())

	ad, err := s.applyUpdate(ctx, update)
	if err != nil {
		s.recordCallback(callback.Status, outcomeOf(err))
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"ad_id":  ad.ID,
		"status": ad.Status,
		"step":   callback.Step,
	}).Info("tracking: ad status updated")

	s.recordCallback(callback.Status, "applied")
	return ad, nil
}

// ApproveAd aprova um anúncio da conta do usuário
func (s *Service) ApproveAd(ctx context.Context, userID int, adID string) (*domain.Ad, error) {
	accountID, err := s.resolveAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	stage := domain.StageApproval
	update := &domain.AdUpdate{
		ID:        adID,
		AccountID: &accountID,
		Status:    domain.AdStatusApproved,
		Stage:     &stage,
		At:        s.now(),
	}

	ad, err := s.applyUpdate(ctx, update)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"ad_id":   ad.ID,
		"user_id": userID,
	}).Info("tracking: ad approved")

	return ad, nil
}

func (s *Service) applyUpdate(ctx context.Context, update *domain.AdUpdate) (*domain.Ad, error) {
	if update.Status == domain.AdStatusPosted && update.PlatformAdID == nil {
		current, err := s.getForUpdate(ctx, update)
		if err != nil {
			return nil, err
		}
		if current.PlatformAdID == nil || *current.PlatformAdID == "" {
			return nil, NewTrackingErrorWithID(ErrPostedWithoutAdID, apiErrors.ErrMissingRequiredData, update.ID, "ad_ID is required")
		}
	}

	if s.cfg.Workflow.EnforceStatusOrder {
		update.AllowedPrior = domain.AllowedPriorStatuses(update.Status)
	}

	ad, err := s.adRepo.ApplyUpdate(ctx, update)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("ad_id", update.ID).Error("tracking: failed to update ad")
		return nil, NewTrackingErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, update.ID, "")
	}

	if ad != nil {
		return ad, nil
	}

	// nenhuma linha foi alterada: o anúncio não existe ou a guarda recusou a transição
	current, err := s.getForUpdate(ctx, update)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"ad_id":          update.ID,
		"current_status": current.Status,
		"status":         update.Status,
	}).Warn("tracking: stale status transition refused")

	return nil, NewTrackingErrorWithID(
		ErrStaleTransition,
		apiErrors.ErrResourceConflict,
		update.ID,
		fmt.Sprintf("cannot move from %s to %s", current.Status, update.Status),
	)
}

func (s *Service) getForUpdate(ctx context.Context, update *domain.AdUpdate) (*domain.Ad, error) {
	accountID := ""
	if update.AccountID != nil {
		accountID = *update.AccountID
	}

	current, err := s.adRepo.GetByID(ctx, accountID, update.ID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("ad_id", update.ID).Error("tracking: failed to load ad")
		return nil, NewTrackingErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, update.ID, "")
	}

	if current == nil {
		return nil, NewTrackingErrorWithID(ErrAdNotFound, apiErrors.ErrResourceNotFound, update.ID, "")
	}

	return current, nil
}

func (s *Service) recordCallback(status, outcome string) {
	if s.metrics == nil {
		return
	}
	if !domain.AdStatus(status).IsValid() {
		status = "unknown"
	}
	s.metrics.RecordStatusCallback(status, outcome)
}

func outcomeOf(err error) string {
	if trackingErr, ok := err.(*TrackingError); ok {
		switch trackingErr.Err {
		case ErrAdNotFound:
			return "not_found"
		case ErrStaleTransition:
			return "stale"
		case ErrDatabaseOperation:
			return "error"
		}
	}
	return "invalid"
}
