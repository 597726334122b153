package dashboarding

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/instagram-dashboard-api/internal/config"
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
	"github.com/vfg2006/instagram-dashboard-api/internal/usecases/normalizing"
	"github.com/vfg2006/instagram-dashboard-api/pkg/log"
	"github.com/vfg2006/instagram-dashboard-api/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Campos somados na visão de interações
var interactionFields = []string{
	domain.LikesField,
	domain.CommentsField,
	domain.SharesField,
}

// Service implementa Dashboard sobre o pipeline de normalização
type Service struct {
	cfg   *config.Config
	store DocumentStore

	// Total de categorias de estado descartadas desde o início do processo
	unresolvedRegions atomic.Int64
}

// NewService cria o serviço. Com a origem sintética, store pode ser nil.
func NewService(cfg *config.Config, store DocumentStore) *Service {
	return &Service{
		cfg:   cfg,
		store: store,
	}
}

func (s *Service) synthetic() bool {
	return s.cfg.Data.Source == config.DataSourceSynthetic || s.store == nil
}

func (s *Service) sourceName() string {
	if s.synthetic() {
		return config.DataSourceSynthetic
	}
	return s.cfg.Data.Source
}

func (s *Service) syntheticPoints() []domain.ReachImpressionsPoint {
	start, err := time.Parse(time.DateOnly, s.cfg.Synthetic.StartDate)
	if err != nil {
		log.L.WithError(err).Warnf("Data inicial sintética inválida: %s, usando a data atual", s.cfg.Synthetic.StartDate)
		start = time.Now().UTC()
	}
	return normalizing.SynthesizeReachImpressions(start, s.cfg.Synthetic.Days, s.cfg.Synthetic.Seed)
}

// records monta a série de insights a partir do documento (ou dos dados sintéticos)
func (s *Service) records(ctx context.Context) ([]domain.InsightRecord, error) {
	if s.synthetic() {
		points := s.syntheticPoints()
		records := make([]domain.InsightRecord, len(points))
		for i, point := range points {
			records[i] = domain.InsightRecord{
				Date: point.Date,
				Fields: []domain.RawField{
					{Key: domain.ReachField, Value: point.Reach},
					{Key: domain.ImpressionsField, Value: point.Impressions},
				},
			}
		}
		return records, nil
	}

	doc, err := s.store.Insights(ctx)
	if err != nil {
		return nil, err
	}

	records, err := normalizing.ExtractInsightSeries(doc.Data)
	if err != nil {
		return nil, errors.Wrap(err, domain.UserInsightsDocument)
	}

	return records, nil
}

func (s *Service) Series(ctx context.Context) (*domain.SeriesResponse, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SeriesResponse{
		Records: records,
		Source:  s.sourceName(),
	}, nil
}

func (s *Service) ReachImpressions(ctx context.Context, filters *domain.InsightFilters) (*domain.ReachImpressionsResponse, error) {
	if filters != nil && filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return nil, ErrInvalidDateRange
	}

	var points []domain.ReachImpressionsPoint
	if s.synthetic() {
		points = s.syntheticPoints()
	} else {
		records, err := s.records(ctx)
		if err != nil {
			return nil, err
		}
		points = normalizing.ReachImpressionsSeries(records)
	}

	// A ordenação cronológica é responsabilidade da visão, não do pipeline
	points = normalizing.SortByDate(normalizing.FilterByDateRange(points, filters))

	response := &domain.ReachImpressionsResponse{
		Points: points,
		Source: s.sourceName(),
	}
	if filters != nil && filters.StartDate != nil {
		response.StartDate = filters.StartDate.Format(time.DateOnly)
	}
	if filters != nil && filters.EndDate != nil {
		response.EndDate = filters.EndDate.Format(time.DateOnly)
	}

	return response, nil
}

func (s *Service) Interactions(ctx context.Context) (*domain.InteractionsResponse, error) {
	records, err := s.records(ctx)
	if err != nil {
		return nil, err
	}

	rows := normalizing.AggregateByKey(records, domain.ContentTypeField, interactionFields)

	response := &domain.InteractionsResponse{
		Rows:   rows,
		Status: domain.ViewStatusOK,
		Source: s.sourceName(),
	}

	if len(rows) == 0 {
		log.ForContext(ctx).WithField("source", s.sourceName()).Warn("Nenhum dado de Content_Type disponível nos insights")
		response.Status = domain.ViewStatusNoContentType
		response.Message = "No 'Content_Type' data available in user insights."
	}

	return response, nil
}

func (s *Service) StateAudience(ctx context.Context) (*domain.StateAudienceResponse, error) {
	if s.synthetic() {
		return &domain.StateAudienceResponse{
			Rows:   normalizing.SynthesizeUniformAudience(s.cfg.Synthetic.Seed),
			Status: domain.ViewStatusOK,
			Source: s.sourceName(),
		}, nil
	}

	doc, err := s.store.Demographics(ctx, domain.DemographicsStateDocument)
	if err != nil {
		return nil, err
	}

	counts := normalizing.ExtractCategoryCounts(doc, domain.AudienceStateMetric)
	rows, unresolved := normalizing.ResolveRegionCodesWithReport(counts)

	if len(unresolved) > 0 {
		s.unresolvedRegions.Add(int64(len(unresolved)))
		log.ForContext(ctx).WithFields(log.Fields{
			"unresolved": unresolved,
			"count":      len(unresolved),
		}).Warn("Categorias de estado sem código conhecido foram descartadas")
	}

	status := domain.ViewStatusOK
	if len(counts) == 0 {
		status = domain.ViewStatusNoMetric
	}

	return &domain.StateAudienceResponse{
		Rows:       rows,
		Unresolved: unresolved,
		Status:     status,
		Source:     s.sourceName(),
	}, nil
}

func (s *Service) CityAudience(ctx context.Context) (*domain.CityAudienceResponse, error) {
	if s.synthetic() {
		return &domain.CityAudienceResponse{
			Rows:   []domain.CategoryCount{},
			Status: domain.ViewStatusNoMetric,
			Source: s.sourceName(),
		}, nil
	}

	doc, err := s.store.Demographics(ctx, domain.DemographicsCityDocument)
	if err != nil {
		return nil, err
	}

	counts := normalizing.ExtractCategoryCounts(doc, domain.AudienceCityMetric)

	status := domain.ViewStatusOK
	if len(counts) == 0 {
		status = domain.ViewStatusNoMetric
	}

	return &domain.CityAudienceResponse{
		Rows:   counts,
		Status: status,
		Source: s.sourceName(),
	}, nil
}

// UnresolvedRegions retorna o total de categorias de estado descartadas
func (s *Service) UnresolvedRegions() int64 {
	return s.unresolvedRegions.Load()
}

// Report executa as visões em paralelo e resume o resultado
func (s *Service) Report(ctx context.Context) (*domain.PipelineReport, error) {
	report := &domain.PipelineReport{
		Source:      s.sourceName(),
		GeneratedAt: time.Now(),
	}
	if s.store != nil {
		report.SnapshotID = s.store.SnapshotID()
	}

	var (
		series       *domain.SeriesResponse
		interactions *domain.InteractionsResponse
		states       *domain.StateAudienceResponse
		cities       *domain.CityAudienceResponse
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		series, err = s.Series(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		interactions, err = s.Interactions(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		states, err = s.StateAudience(egCtx)
		return err
	})
	eg.Go(func() (err error) {
		cities, err = s.CityAudience(egCtx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report.InsightRecords = len(series.Records)
	if len(series.Records) > 0 {
		first, last := series.Records[0].Date, series.Records[0].Date
		for _, record := range series.Records {
			if record.Date.Before(first) {
				first = record.Date
			}
			if record.Date.After(last) {
				last = record.Date
			}
		}
		report.FirstDate = first.Format(time.DateOnly)
		report.LastDate = last.Format(time.DateOnly)
	}

	report.InteractionGroups = len(interactions.Rows)
	report.InteractionsStatus = interactions.Status

	report.StateRows = len(states.Rows)
	report.UnresolvedRegions = len(states.Unresolved)
	share := 0.0
	for _, row := range states.Rows {
		share += row.Percentage
	}
	report.ResolvedShare = utils.RoundWithTwoDecimalPlace(share)

	report.CityRows = len(cities.Rows)

	return report, nil
}
