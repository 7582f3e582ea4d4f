package handler

import (
	"net/http"

	"github.com/BrianElionDev/Meta-ads-project/internal/scheduler"
	"github.com/BrianElionDev/Meta-ads-project/pkg/apiErrors"
	"github.com/BrianElionDev/Meta-ads-project/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeStatusMetrics = "status-metrics"
	CronJobTypeAll           = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	StatusMetricsSync *scheduler.StatusMetricsSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cron job type is required", nil)
			return
		}

		switch cronType {
		case CronJobTypeStatusMetrics, CronJobTypeAll:
			if services.StatusMetricsSync == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Status metrics sync is not available", nil)
				return
			}
			services.StatusMetricsSync.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: status-metrics, all", nil)
			return
		}

		log.ForContext(r.Context()).WithField("type", cronType).Info("cron: manual run triggered")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.StatusMetricsSync != nil {
			status[CronJobTypeStatusMetrics] = services.StatusMetricsSync.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	}
}
