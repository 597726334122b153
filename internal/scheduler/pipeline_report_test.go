package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/instagram-dashboard-api/internal/config"
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
)

type stubReporter struct {
	report *domain.PipelineReport
	err    error
	calls  int
}

func (s *stubReporter) Report(ctx context.Context) (*domain.PipelineReport, error) {
	s.calls++
	return s.report, s.err
}

func newTestConfig(enabled bool) *config.Config {
	return &config.Config{
		PipelineReport: config.PipelineReport{
			CronSchedule: "0 * * * *",
			Enabled:      enabled,
		},
	}
}

func TestPipelineReportService_RunNow(t *testing.T) {
	tests := []struct {
		name     string
		reporter *stubReporter
		validate func(t *testing.T, status map[string]any)
	}{
		{
			name: "Relatório gerado com sucesso fica no status",
			reporter: &stubReporter{report: &domain.PipelineReport{
				SnapshotID:         "Ab12Cd",
				InsightRecords:     30,
				InteractionsStatus: domain.ViewStatusOK,
			}},
			validate: func(t *testing.T, status map[string]any) {
				report, ok := status["last_report"].(*domain.PipelineReport)
				require.True(t, ok)
				assert.Equal(t, 30, report.InsightRecords)
				assert.Equal(t, "", status["last_error"])
				assert.Equal(t, false, status["running"])
			},
		},
		{
			name:     "Erro do pipeline é registrado",
			reporter: &stubReporter{err: errors.New("documento não encontrado")},
			validate: func(t *testing.T, status map[string]any) {
				assert.Nil(t, status["last_report"])
				assert.Equal(t, "documento não encontrado", status["last_error"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewPipelineReportService(tt.reporter, newTestConfig(false))

			service.RunNow(context.Background())

			assert.Equal(t, 1, tt.reporter.calls)
			tt.validate(t, service.GetStatus())
		})
	}
}

func TestPipelineReportService_StartDisabled(t *testing.T) {
	reporter := &stubReporter{}
	service := NewPipelineReportService(reporter, newTestConfig(false))

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["enabled"])
	assert.Equal(t, 0, reporter.calls)
}

func TestPipelineReportService_StartInvalidCron(t *testing.T) {
	cfg := newTestConfig(true)
	cfg.PipelineReport.CronSchedule = "toda hora"
	service := NewPipelineReportService(&stubReporter{}, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}
