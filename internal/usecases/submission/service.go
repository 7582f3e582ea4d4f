package submission

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/BrianElionDev/Meta-ads-project/infrastructure/database/postgres"
	"github.com/BrianElionDev/Meta-ads-project/infrastructure/integrator/workflow"
	"github.com/BrianElionDev/Meta-ads-project/infrastructure/repository"
	"github.com/BrianElionDev/Meta-ads-project/internal/config"
	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/BrianElionDev/Meta-ads-project/pkg/log"
	"github.com/BrianElionDev/Meta-ads-project/pkg/utils"
	"github.com/google/uuid"
)

type Submitter interface {
	SubmitCampaign(ctx context.Context, userID int, submission *domain.CampaignSubmission) (*domain.SubmissionResult, error)
}

type Service struct {
	adRepo     repository.AdRepository
	clientRepo repository.ClientRepository
	transactor postgres.Transactor
	workflow   workflow.Client
	cfg        *config.Config
	now        func() time.Time
	newID      func() string
}

func NewService(
	adRepo repository.AdRepository,
	clientRepo repository.ClientRepository,
	transactor postgres.Transactor,
	workflowClient workflow.Client,
	cfg *config.Config,
) Submitter {
	return &Service{
		adRepo:     adRepo,
		clientRepo: clientRepo,
		transactor: transactor,
		workflow:   workflowClient,
		cfg:        cfg,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// SubmitCampaign grava o anúncio como pending e só depois aciona a automação,
// para que os callbacks já encontrem o registro. Uma falha no webhook marca o
// anúncio como cancelled com a mensagem da falha; o registro nunca é apagado.
func (s *Service) SubmitCampaign(ctx context.Context, userID int, submission *domain.CampaignSubmission) (*domain.SubmissionResult, error) {
	client, err := s.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("submission: failed to load client")
		return nil, NewSubmissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	if client == nil {
		return nil, NewSubmissionError(ErrClientNotFound, apiErrors.ErrResourceNotFound, "")
	}

	if err := utils.ValidateStruct(submission); err != nil {
		return nil, NewSubmissionError(ErrInvalidSubmission, apiErrors.ErrMissingRequiredData, strings.Join(utils.ValidationMessages(err), "; "))
	}

	ad := s.newPendingAd(client.AdAccountID, submission)

	err = s.transactor.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return s.adRepo.Create(ctx, tx, ad)
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("ad_id", ad.ID).Error("submission: failed to store ad")
		return nil, NewSubmissionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "")
	}

	response, err := s.workflow.TriggerCampaign(ctx, &domain.WorkflowRequest{
		CampaignSubmission: submission,
		AdID:               ad.ID,
		AdAccountID:        client.AdAccountID,
		CallbackURL:        s.cfg.Workflow.CallbackURL,
	})
	if err != nil {
		submissionErr := s.classify(ctx, ad, err)
		s.markFailed(ctx, ad, submissionErr)
		return nil, submissionErr
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"ad_id":         ad.ID,
		"ad_account_id": ad.AdAccountID,
		"user_id":       userID,
	}).Info("submission: campaign submitted")

	return &domain.SubmissionResult{
		Ad:       ad,
		Workflow: response.Data,
	}, nil
}

// markFailed registra a falha do webhook no anúncio. Só altera anúncios ainda
// pending, para não sobrescrever um callback que chegou antes da resposta.
func (s *Service) markFailed(ctx context.Context, ad *domain.Ad, submissionErr *SubmissionError) {
	message := submissionErr.Details
	if message == "" {
		message = submissionErr.Err.Error()
	}

	update := &domain.AdUpdate{
		ID:           ad.ID,
		AccountID:    &ad.AdAccountID,
		Status:       domain.AdStatusCancelled,
		AllowedPrior: []domain.AdStatus{domain.AdStatusPending},
		At:           s.now(),
		ErrorMessage: &message,
	}

	// a requisição pode ter sido cancelada junto com o webhook
	updated, err := s.adRepo.ApplyUpdate(context.WithoutCancel(ctx), update)
	logger := log.ForContext(ctx).WithField("ad_id", ad.ID)
	switch {
	case err != nil:
		logger.WithError(err).Error("submission: failed to mark ad as cancelled")
	case updated == nil:
		logger.Warn("submission: ad already advanced, failure not recorded")
	default:
		logger.Info("submission: ad cancelled after workflow failure")
	}
}

func (s *Service) newPendingAd(accountID string, submission *domain.CampaignSubmission) *domain.Ad {
	now := s.now()

	ad := &domain.Ad{
		ID:                s.newID(),
		AdAccountID:       accountID,
		AdName:            &submission.AdHeadline,
		Message:           &submission.AdDescription,
		ImageURL:          submission.SubmittedMediaFile,
		CampaignName:      submission.CampaignName(),
		CampaignObjective: submission.AdCampaignObjective,
		AdsetName:         submission.AdsetName(),
		Status:            domain.AdStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	// ids já existentes na plataforma são reaproveitados
	if submission.CampaignCreation == domain.CreationExisting {
		ad.CampaignID = submission.AdCampaignID
	}
	if submission.AdSetCreation == domain.CreationExisting {
		ad.AdsetID = submission.AdSetID
	}
	if submission.AdCreativeCreation == domain.CreationReuse {
		ad.AdCreativeID = submission.AdCreativeID
	}

	return ad
}

func (s *Service) classify(ctx context.Context, ad *domain.Ad, err error) *SubmissionError {
	logger := log.ForContext(ctx).WithError(err).WithField("ad_id", ad.ID)

	var workflowErr *workflow.Error
	if !errors.As(err, &workflowErr) {
		logger.Error("submission: failed to build workflow request")
		return NewSubmissionError(ErrWorkflowRejected, apiErrors.ErrInternalServer, "")
	}

	logger = logger.WithField("kind", workflowErr.Kind)

	if workflowErr.IsUnavailable() {
		logger.Warn("submission: workflow engine unavailable")
		return NewSubmissionError(ErrWorkflowUnavailable, apiErrors.ErrCommunication, workflowErr.Message())
	}

	logger.Warn("submission: workflow engine rejected request")
	return NewSubmissionError(ErrWorkflowRejected, apiErrors.ErrExternalService, workflowErr.Message())
}
