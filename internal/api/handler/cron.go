package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/instagram-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/instagram-dashboard-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeReport = "report"
)

// ReportJob é o agendador do relatório do pipeline visto pelos handlers
type ReportJob interface {
	TriggerManualReport(ctx context.Context)
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron que podem ser executados manualmente
type CronJobServices struct {
	PipelineReportService ReportJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeReport:
			if services.PipelineReportService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de relatório do pipeline não disponível", nil)
				return
			}
			// O relatório segue em background depois que a requisição termina
			services.PipelineReportService.TriggerManualReport(context.WithoutCancel(r.Context()))
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: report", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.PipelineReportService != nil {
			status[CronJobTypeReport] = services.PipelineReportService.GetStatus()
		}

		writeJSON(w, log.ForContext(r.Context()), status)
	}
}
