package onboarding

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/BrianElionDev/Meta-ads-project/infrastructure/repository"
	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/BrianElionDev/Meta-ads-project/pkg/log"
	"github.com/BrianElionDev/Meta-ads-project/pkg/utils"
)

type Onboarder interface {
	CreateClient(ctx context.Context, userID int, client *domain.Client) (*domain.Client, error)
	GetClient(ctx context.Context, userID int) (*domain.Client, error)
}

type Service struct {
	clientRepo repository.ClientRepository
	now        func() time.Time
	generateID func() (string, error)
}

func NewService(clientRepo repository.ClientRepository) Onboarder {
	return &Service{
		clientRepo: clientRepo,
		now:        time.Now,
		generateID: utils.GenerateID,
	}
}

// CreateClient cadastra as credenciais da conta de anúncios do usuário.
// Cada usuário possui no máximo um client.
func (s *Service) CreateClient(ctx context.Context, userID int, client *domain.Client) (*domain.Client, error) {
	client.AdAccountID = strings.TrimSpace(client.AdAccountID)

	if err := utils.ValidateStruct(client); err != nil {
		return nil, NewOnboardingError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, userID, strings.Join(utils.ValidationMessages(err), "; "))
	}

	existing, err := s.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("onboarding: failed to load client")
		return nil, NewOnboardingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "")
	}

	if existing != nil {
		return nil, NewOnboardingError(ErrClientAlreadyExists, apiErrors.ErrResourceConflict, userID, "")
	}

	id, err := s.generateID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("onboarding: failed to generate client id")
		return nil, NewOnboardingError(ErrGenerateID, apiErrors.ErrInternalServer, userID, "")
	}

	now := s.now()
	client.ID = id
	client.UserID = userID
	client.CreatedAt = now
	client.LastModified = now

	if err := s.clientRepo.Create(ctx, client); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, NewOnboardingError(ErrClientAlreadyExists, apiErrors.ErrResourceConflict, userID, "")
		}

		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("onboarding: failed to create client")
		return nil, NewOnboardingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "")
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"client_id":     client.ID,
		"ad_account_id": client.AdAccountID,
		"user_id":       userID,
	}).Info("onboarding: client created")

	return client, nil
}

func (s *Service) GetClient(ctx context.Context, userID int) (*domain.Client, error) {
	client, err := s.clientRepo.GetByUserID(ctx, userID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_id", userID).Error("onboarding: failed to load client")
		return nil, NewOnboardingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, userID, "")
	}

	if client == nil {
		return nil, NewOnboardingError(ErrClientNotFound, apiErrors.ErrResourceNotFound, userID, "")
	}

	return client, nil
}
