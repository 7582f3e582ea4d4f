package handler

import (
	"net/http"

	"github.com/BrianElionDev/Meta-ads-project/internal/api/handler/router"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/authenticating"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/onboarding"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/submission"
	"github.com/BrianElionDev/Meta-ads-project/internal/usecases/tracking"
	"github.com/BrianElionDev/Meta-ads-project/pkg/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Metrics expõe o registry padrão do Prometheus
func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Onboarding(service onboarding.Onboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/onboarding",
			Method:      http.MethodPost,
			Handler:     CreateClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/onboarding",
			Method:      http.MethodGet,
			Handler:     GetClient(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Submission(service submission.Submitter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/campaigns/submit",
			Method:      http.MethodPost,
			Handler:     SubmitCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Tracking(service tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/ads",
			Method:      http.MethodGet,
			Handler:     ListAds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ad-status-counts",
			Method:      http.MethodGet,
			Handler:     AdStatusCounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ads/:id",
			Method:      http.MethodGet,
			Handler:     GetAd(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/ads/:id/approve",
			Method:      http.MethodPost,
			Handler:     ApproveAd(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/adsets",
			Method:      http.MethodGet,
			Handler:     ListAdsets(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/adset-status-counts",
			Method:      http.MethodGet,
			Handler:     AdsetStatusCounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/adsets/:id",
			Method:      http.MethodGet,
			Handler:     GetAdset(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaign-status-counts",
			Method:      http.MethodGet,
			Handler:     CampaignStatusCounts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/campaigns/:id",
			Method:      http.MethodGet,
			Handler:     GetCampaign(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// AdStatus é a rota do callback da automação, protegida pelo segredo compartilhado
func AdStatus(service tracking.Tracker, callbackSecret string) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/update-ad-status",
			Method:      http.MethodPost,
			Handler:     UpdateAdStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.CallbackSecret(callbackSecret)},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
