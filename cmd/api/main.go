package main

import (
	"context"

	"github.com/BrianElionDev/Meta-ads-project/infrastructure/database/postgres"
	"github.com/BrianElionDev/Meta-ads-project/infrastructure/integrator/workflow"
	"github.com/BrianElionDev/Meta-ads-project/infrastructure/repository"
	"github.com/BrianElionDev/Meta-ads-project/internal/api"
	"github.com/BrianElionDev/Meta-ads-project/internal/config"
	"github.com/BrianElionDev/Meta-ads-project/internal/scheduler"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/authenticating"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/onboarding"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/submission"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/tracking"
	"github.com/BrianElionDev/Meta-ads-project/pkg/log"
	"github.com/BrianElionDev/Meta-ads-project/pkg/metrics"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.WithError(err).Fatal("config: failed to load")
	}

	log.Setup(log.Options{
		Level:     cfg.App.LogLevel,
		File:      cfg.App.LogFile,
		MaxSizeMB: cfg.App.LogMaxSize,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	m := metrics.Default()

	adRepo := repository.NewAdRepository(pgConn)
	clientRepo := repository.NewClientRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	workflowClient := workflow.NewClient(cfg, m)

	services := api.Services{
		Authenticator: authenticating.NewService(userRepo, cfg),
		Onboarder:     onboarding.NewService(clientRepo),
		Submitter:     submission.NewService(adRepo, clientRepo, pgConn, workflowClient, cfg),
		Tracker:       tracking.NewService(adRepo, clientRepo, cfg, m),
	}

	services.StatusMetricsSync = scheduler.NewStatusMetricsSyncService(
		adRepo,
		clientRepo,
		m,
		cfg,
	)

	if err := services.StatusMetricsSync.Start(ctx); err != nil {
		log.L.WithError(err).Error("scheduler: failed to start status metrics sync")
	}

	server, err := api.New(cfg, services, m)
	if err != nil {
		log.L.WithError(err).Fatal("server: failed to build")
	}

	if err := server.Run(ctx); err != nil {
		log.L.WithError(err).Error("server: stopped with error")
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("postgres: failed to connect")
	}

	if err := conn.Ping(ctx); err != nil {
		log.L.WithError(err).Fatal("postgres: ping failed")
	}

	log.L.Info("postgres: connection established")
	return conn
}
