// Package scheduler contém os serviços de agendamento executados em segundo plano
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/BrianElionDev/Meta-ads-project/infrastructure/repository"
	"github.com/BrianElionDev/Meta-ads-project/internal/config"
	"github.com/BrianElionDev/Meta-ads-project/internal/domain"
	"github.com/BrianElionDev/Meta-ads-project/pkg/metrics"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

type StatusMetricsSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// StatusMetricsSyncService publica periodicamente a contagem de anúncios por
// status de cada conta. Apenas leitura: nenhum anúncio é alterado.
type StatusMetricsSyncService struct {
	scheduler           *gocron.Scheduler
	adRepo              repository.AdRepository
	clientRepo          repository.ClientRepository
	metrics             *metrics.Metrics
	config              StatusMetricsSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncAccounts    int
}

func NewStatusMetricsSyncService(
	adRepo repository.AdRepository,
	clientRepo repository.ClientRepository,
	m *metrics.Metrics,
	cfg *config.Config,
) *StatusMetricsSyncService {
	syncConfig := StatusMetricsSyncConfig{
		CronSchedule: cfg.StatusMetricsSync.CronSchedule,
		SyncEnabled:  cfg.StatusMetricsSync.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"enabled":       syncConfig.SyncEnabled,
	}).Info("scheduler: status metrics sync configured")

	return &StatusMetricsSyncService{
		scheduler:  gocron.NewScheduler(time.Local),
		adRepo:     adRepo,
		clientRepo: clientRepo,
		metrics:    m,
		config:     syncConfig,
	}
}

func (s *StatusMetricsSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("scheduler: status metrics sync disabled")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncStatusMetrics(ctx); err != nil {
			logrus.WithError(err).Error("scheduler: status metrics sync failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule status metrics sync: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping status metrics sync")
		s.scheduler.Stop()
	}()

	return nil
}

// SyncStatusMetrics conta os anúncios de cada conta cadastrada e atualiza os gauges.
// Uma execução concorrente é ignorada.
func (s *StatusMetricsSyncService) SyncStatusMetrics(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("scheduler: status metrics sync already running")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	synced := 0
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.lastSyncAccounts = synced
		s.syncMutex.Unlock()
	}()

	start := time.Now()

	accountIDs, err := s.clientRepo.ListAdAccountIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list ad accounts: %w", err)
	}

	for _, accountID := range accountIDs {
		ads, err := s.adRepo.List(ctx, domain.AdFilter{AccountID: accountID})
		if err != nil {
			// uma conta com falha não interrompe as demais
			logrus.WithError(err).WithField("ad_account_id", accountID).Error("scheduler: failed to load ads")
			continue
		}

		counts := domain.CountByStatus(ads)
		for status, count := range counts.ByStatus() {
			s.metrics.SetAdsByStatus(accountID, string(status), count)
		}
		synced++
	}

	s.metrics.ObserveStatusSync(time.Since(start).Seconds())

	logrus.WithFields(logrus.Fields{
		"accounts": len(accountIDs),
		"synced":   synced,
	}).Info("scheduler: status metrics sync completed")

	return nil
}

// TriggerManualSync inicia uma sincronização fora do agendamento
func (s *StatusMetricsSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("scheduler: status metrics sync already running, ignoring manual trigger")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("scheduler: manual status metrics sync triggered")
	go func() {
		if err := s.SyncStatusMetrics(context.Background()); err != nil {
			logrus.WithError(err).Error("scheduler: status metrics sync failed")
		}
	}()
}

func (s *StatusMetricsSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_accounts":     s.lastSyncAccounts,
	}
}
