package normalizing

import (
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
)

var errMissingDate = errors.New("date field is missing")

// Formatos aceitos para o campo date, do mais comum ao menos comum
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04:05-0700", // end_time da Graph API
	time.DateTime,
}

// ExtractInsightSeries converte os registros brutos em InsightRecords, um por entrada,
// na mesma ordem da entrada. Apenas o campo date é validado.
func ExtractInsightSeries(raw []domain.RawRecord) ([]domain.InsightRecord, error) {
	records := make([]domain.InsightRecord, 0, len(raw))

	for i, rawRecord := range raw {
		value, ok := rawRecord.Get(domain.DateField)
		if !ok || value == nil {
			return nil, &MalformedDateError{Index: i, Value: value, Err: errMissingDate}
		}

		date, err := ParseDate(value)
		if err != nil {
			return nil, &MalformedDateError{Index: i, Value: value, Err: err}
		}

		fields := make([]domain.RawField, 0, len(rawRecord))
		for _, field := range rawRecord {
			if field.Key == domain.DateField {
				continue
			}
			fields = append(fields, field)
		}

		records = append(records, domain.InsightRecord{Date: date, Fields: fields})
	}

	return records, nil
}

// ParseDate interpreta o valor bruto de uma data e mantém o dia do calendário no
// fuso do próprio valor, sem conversão; o resultado é rotulado como UTC à meia-noite
func ParseDate(value any) (time.Time, error) {
	s, ok := value.(string)
	if !ok {
		return time.Time{}, errors.Errorf("date must be a string, got %T", value)
	}

	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, errors.Errorf("unrecognized date %q", s)
}

// ExtractCategoryCounts achata o mapa values[0].value da primeira métrica com o nome
// informado. A ausência da métrica não é erro: o resultado é vazio.
func ExtractCategoryCounts(doc *domain.DemographicsDocument, metricName string) []domain.CategoryCount {
	counts := make([]domain.CategoryCount, 0)
	if doc == nil {
		return counts
	}

	for _, metric := range doc.Data {
		if metric.Name != metricName {
			continue
		}
		if len(metric.Values) == 0 {
			return counts
		}
		return append(counts, metric.Values[0].Value...)
	}

	return counts
}

// ReachImpressionsSeries projeta alcance e impressões da série de insights.
// Registros sem nenhuma das duas métricas são ignorados.
func ReachImpressionsSeries(records []domain.InsightRecord) []domain.ReachImpressionsPoint {
	points := make([]domain.ReachImpressionsPoint, 0, len(records))
	for _, record := range records {
		reach, hasReach := record.Number(domain.ReachField)
		impressions, hasImpressions := record.Number(domain.ImpressionsField)
		if !hasReach && !hasImpressions {
			continue
		}
		points = append(points, domain.ReachImpressionsPoint{
			Date:        record.Date,
			Reach:       reach,
			Impressions: impressions,
		})
	}
	return points
}

// FilterByDateRange mantém os pontos dentro do intervalo [start, end]; limites nil são abertos
func FilterByDateRange(points []domain.ReachImpressionsPoint, filters *domain.InsightFilters) []domain.ReachImpressionsPoint {
	if filters == nil || (filters.StartDate == nil && filters.EndDate == nil) {
		return points
	}

	filtered := make([]domain.ReachImpressionsPoint, 0, len(points))
	for _, point := range points {
		if filters.StartDate != nil && !filters.StartDate.IsZero() && point.Date.Before(*filters.StartDate) {
			continue
		}
		if filters.EndDate != nil && !filters.EndDate.IsZero() && point.Date.After(*filters.EndDate) {
			continue
		}
		filtered = append(filtered, point)
	}
	return filtered
}

// SortByDate ordena os pontos cronologicamente, preservando a ordem de datas repetidas
func SortByDate(points []domain.ReachImpressionsPoint) []domain.ReachImpressionsPoint {
	sorted := make([]domain.ReachImpressionsPoint, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return sorted
}
