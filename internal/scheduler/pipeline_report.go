package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-dashboard-api/internal/config"
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
)

// Reporter executa o pipeline completo e devolve o resumo
type Reporter interface {
	Report(ctx context.Context) (*domain.PipelineReport, error)
}

// PipelineReportConfig representa a configuração do agendador de relatórios
type PipelineReportConfig struct {
	CronSchedule string
	Enabled      bool
}

// PipelineReportService aquece o cache de documentos e registra periodicamente o
// resumo do pipeline de normalização
type PipelineReportService struct {
	scheduler *gocron.Scheduler
	config    PipelineReportConfig
	reporter  Reporter

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastReport      *domain.PipelineReport
	lastError       string
}

func NewPipelineReportService(reporter Reporter, appConfig *config.Config) *PipelineReportService {
	reportConfig := PipelineReportConfig{
		CronSchedule: appConfig.PipelineReport.CronSchedule,
		Enabled:      appConfig.PipelineReport.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reportConfig.CronSchedule,
		"enabled":       reportConfig.Enabled,
	}).Info("Configuração do agendador de relatório do pipeline carregada")

	return &PipelineReportService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    reportConfig,
		reporter:  reporter,
	}
}

// Start agenda o relatório e o cancela junto com o contexto
func (s *PipelineReportService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Relatório do pipeline desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de relatório do pipeline")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runReport(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar relatório do pipeline: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de relatório do pipeline")
		s.scheduler.Stop()
	}()

	return nil
}

// runReport executa o relatório, ignorando a chamada se outro já estiver em andamento
func (s *PipelineReportService) runReport(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Relatório do pipeline já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	report, err := s.reporter.Report(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.lastCompletedAt = time.Now()

	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao gerar relatório do pipeline")
		return
	}

	s.lastError = ""
	s.lastReport = report

	entry := logrus.WithFields(logrus.Fields{
		"snapshot_id":         report.SnapshotID,
		"source":              report.Source,
		"insight_records":     report.InsightRecords,
		"first_date":          report.FirstDate,
		"last_date":           report.LastDate,
		"state_rows":          report.StateRows,
		"unresolved_regions":  report.UnresolvedRegions,
		"resolved_share":      report.ResolvedShare,
		"city_rows":           report.CityRows,
		"interactions_status": report.InteractionsStatus,
		"duration":            s.lastCompletedAt.Sub(s.lastStartedAt).String(),
	})
	if report.UnresolvedRegions > 0 || report.InteractionsStatus != domain.ViewStatusOK {
		entry.Warn("Relatório do pipeline concluído com avisos")
		return
	}
	entry.Info("Relatório do pipeline concluído")
}

// RunNow executa o relatório de forma síncrona (usado no aquecimento do cache)
func (s *PipelineReportService) RunNow(ctx context.Context) {
	s.runReport(ctx)
}

// TriggerManualReport inicia manualmente um relatório em background
func (s *PipelineReportService) TriggerManualReport(ctx context.Context) {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Relatório do pipeline já em andamento, ignorando solicitação manual")
		return
	}
	s.mu.Unlock()

	logrus.Info("Iniciando relatório manual do pipeline")
	go s.runReport(ctx)
}

// GetStatus retorna o status atual do agendador
func (s *PipelineReportService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"enabled":           s.config.Enabled,
		"cron":              s.config.CronSchedule,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_report":       s.lastReport,
		"last_error":        s.lastError,
	}
}
