package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BrianElionDev/Meta-ads-project/internal/api/handler"
	"github.com/BrianElionDev/Meta-ads-project/internal/api/handler/router"
	"github.com/BrianElionDev/Meta-ads-project/internal/config"
	"github.com/BrianElionDev/Meta-ads-project/internal/scheduler"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/authenticating"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/onboarding"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/submission"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/tracking"
	"github.com/BrianElionDev/Meta-ads-project/pkg/log"
	"github.com/BrianElionDev/Meta-ads-project/pkg/metrics"
	"github.com/BrianElionDev/Meta-ads-project/pkg/middleware"
	"github.com/justinas/alice"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API
type Services struct {
	Authenticator     authenticating.Authenticator
	Onboarder         onboarding.Onboarder
	Submitter         submission.Submitter
	Tracker           tracking.Tracker
	StatusMetricsSync *scheduler.StatusMetricsSyncService
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services, m *metrics.Metrics) (*Server, error) {
	cronServices := handler.CronJobServices{
		StatusMetricsSync: services.StatusMetricsSync,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics()...),
		router.WithMetrics(m),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Onboarding(services.Onboarder)...),
		router.WithRoutes(handler.Submission(services.Submitter)...),
		router.WithRoutes(handler.Tracking(services.Tracker)...),
		router.WithRoutes(handler.AdStatus(services.Tracker, cfg.Workflow.CallbackSecret)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Cors.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("server: interrupt signal received")
	case <-ctx.Done():
		log.L.Info("server: context cancelled")
	case err := <-errCh:
		log.L.WithError(err).Error("server: listen failed")
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.L.WithField("timeout", shutdownTimeout.String()).Info("server: shutting down")

	if err := s.Shutdown(shutdownCtx); err != nil {
		log.L.WithError(err).Error("server: shutdown failed")
		return err
	}

	log.L.Info("server: stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
