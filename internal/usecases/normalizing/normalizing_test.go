package normalizing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
)

func decodeInsights(t *testing.T, payload string) []domain.RawRecord {
	t.Helper()
	doc, err := domain.DecodeInsightsDocument([]byte(payload))
	require.NoError(t, err)
	return doc.Data
}

func decodeDemographics(t *testing.T, payload string) *domain.DemographicsDocument {
	t.Helper()
	doc, err := domain.DecodeDemographicsDocument([]byte(payload))
	require.NoError(t, err)
	return doc
}

func TestExtractInsightSeries(t *testing.T) {
	t.Run("Data válida é convertida e métricas são preservadas", func(t *testing.T) {
		raw := decodeInsights(t, `{"data":[{"date":"2023-01-01","reach":100}]}`)

		records, err := ExtractInsightSeries(raw)
		require.NoError(t, err)
		require.Len(t, records, 1)

		assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), records[0].Date)
		reach, ok := records[0].Number("reach")
		assert.True(t, ok)
		assert.Equal(t, 100.0, reach)
	})

	t.Run("Data inválida retorna MalformedDateError", func(t *testing.T) {
		raw := decodeInsights(t, `{"data":[{"date":"2023-01-01","reach":1},{"date":"not-a-date","reach":2}]}`)

		records, err := ExtractInsightSeries(raw)
		assert.Nil(t, records)

		var dateErr *MalformedDateError
		require.True(t, errors.As(err, &dateErr))
		assert.Equal(t, 1, dateErr.Index)
		assert.Equal(t, "not-a-date", dateErr.Value)
	})

	t.Run("Registro sem data retorna MalformedDateError", func(t *testing.T) {
		raw := decodeInsights(t, `{"data":[{"reach":2}]}`)

		_, err := ExtractInsightSeries(raw)

		var dateErr *MalformedDateError
		require.True(t, errors.As(err, &dateErr))
		assert.Equal(t, 0, dateErr.Index)
		assert.Nil(t, dateErr.Value)
	})

	t.Run("Ordem da entrada e dos campos é mantida", func(t *testing.T) {
		raw := decodeInsights(t, `{"data":[
			{"date":"2023-01-03","reach":3,"likes":"abc","impressions":9},
			{"date":"2023-01-01T08:00:00+0000","reach":1}
		]}`)

		records, err := ExtractInsightSeries(raw)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC), records[0].Date)
		assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), records[1].Date)

		keys := make([]string, 0)
		for _, field := range records[0].Fields {
			keys = append(keys, field.Key)
		}
		assert.Equal(t, []string{"reach", "likes", "impressions"}, keys)

		// Campo não numérico passa sem alteração
		likes, ok := records[0].Value("likes")
		assert.True(t, ok)
		assert.Equal(t, "abc", likes)
	})

	t.Run("Entrada vazia", func(t *testing.T) {
		records, err := ExtractInsightSeries(nil)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    time.Time
		wantErr bool
	}{
		{name: "Somente data", value: "2023-05-10", want: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)},
		{name: "RFC3339", value: "2023-05-10T13:45:00Z", want: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)},
		{name: "Formato da Graph API", value: "2023-05-10T07:00:00+0000", want: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)},
		{name: "Data e hora", value: "2023-05-10 22:10:00", want: time.Date(2023, 5, 10, 0, 0, 0, 0, time.UTC)},
		{name: "Dia do próprio fuso", value: "2023-01-01T22:30:00-0300", want: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)},
		{name: "Texto inválido", value: "not-a-date", wantErr: true},
		{name: "Número", value: 20230510.0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractCategoryCounts(t *testing.T) {
	doc := decodeDemographics(t, `{"data":[
		{"name":"audience_gender_age","values":[{"value":{"F.18-24":10.5}}]},
		{"name":"audience_state","values":[{"value":{"São Paulo":40,"Rio de Janeiro":25.5,"Other":4}}]},
		{"name":"audience_state","values":[{"value":{"Bahia":99}}]},
		{"name":"audience_country","values":[]}
	]}`)

	t.Run("Primeira métrica com o nome é achatada na ordem das chaves", func(t *testing.T) {
		counts := ExtractCategoryCounts(doc, domain.AudienceStateMetric)

		assert.Equal(t, []domain.CategoryCount{
			{Category: "São Paulo", Percentage: 40},
			{Category: "Rio de Janeiro", Percentage: 25.5},
			{Category: "Other", Percentage: 4},
		}, counts)
	})

	t.Run("Métrica ausente retorna sequência vazia", func(t *testing.T) {
		counts := ExtractCategoryCounts(doc, domain.AudienceCityMetric)
		assert.NotNil(t, counts)
		assert.Empty(t, counts)
	})

	t.Run("Métrica sem valores retorna sequência vazia", func(t *testing.T) {
		counts := ExtractCategoryCounts(doc, "audience_country")
		assert.NotNil(t, counts)
		assert.Empty(t, counts)
	})

	t.Run("Documento nil", func(t *testing.T) {
		assert.Empty(t, ExtractCategoryCounts(nil, domain.AudienceStateMetric))
	})
}

func TestResolveRegionCodes(t *testing.T) {
	t.Run("Todos os nomes da tabela resolvem para o código", func(t *testing.T) {
		for _, region := range domain.BrazilStates {
			rows := ResolveRegionCodes([]domain.CategoryCount{{Category: region.Name, Percentage: 1}})
			require.Len(t, rows, 1, region.Name)
			assert.Equal(t, region.Code, rows[0].RegionCode)
		}
	})

	t.Run("Códigos conhecidos são mantidos", func(t *testing.T) {
		for _, region := range domain.BrazilStates {
			rows := ResolveRegionCodes([]domain.CategoryCount{{Category: region.Code, Percentage: 2}})
			require.Len(t, rows, 1, region.Code)
			assert.Equal(t, region.Code, rows[0].RegionCode)
			assert.Equal(t, region.Code, rows[0].Category)
		}
	})

	t.Run("Categorias desconhecidas são descartadas sem renormalizar", func(t *testing.T) {
		input := []domain.CategoryCount{
			{Category: "São Paulo", Percentage: 50},
			{Category: "Other", Percentage: 20},
			{Category: "RJ", Percentage: 20},
			{Category: "Unknown", Percentage: 5},
			{Category: "sp", Percentage: 3},
			{Category: "XX", Percentage: 2},
		}

		rows, unresolved := ResolveRegionCodesWithReport(input)

		assert.Equal(t, []domain.ResolvedAudienceRow{
			{Category: "São Paulo", Percentage: 50, RegionCode: "SP"},
			{Category: "RJ", Percentage: 20, RegionCode: "RJ"},
		}, rows)
		assert.Equal(t, []string{"Other", "Unknown", "sp", "XX"}, unresolved)
		assert.Len(t, ResolveRegionCodes(input), len(input)-len(unresolved))
	})
}

func TestAggregateByKey(t *testing.T) {
	raw := decodeInsights(t, `{"data":[
		{"date":"2023-01-01","type":"Photo","likes":10,"comments":2,"shares":1},
		{"date":"2023-01-02","type":"Video","likes":5,"comments":1,"shares":0},
		{"date":"2023-01-03","type":"Photo","likes":3,"comments":0,"shares":2}
	]}`)
	records, err := ExtractInsightSeries(raw)
	require.NoError(t, err)

	t.Run("Agrupa por tipo na ordem de aparição", func(t *testing.T) {
		rows := AggregateByKey(records, "type", []string{"likes", "comments", "shares"})
		require.Len(t, rows, 2)

		assert.Equal(t, "Photo", rows[0].Key)
		assert.Equal(t, 13.0, rows[0].Sum("likes"))
		assert.Equal(t, 2.0, rows[0].Sum("comments"))
		assert.Equal(t, 3.0, rows[0].Sum("shares"))
		assert.Equal(t, 18.0, rows[0].Total)

		assert.Equal(t, "Video", rows[1].Key)
		assert.Equal(t, 5.0, rows[1].Sum("likes"))
		assert.Equal(t, 1.0, rows[1].Sum("comments"))
		assert.Equal(t, 0.0, rows[1].Sum("shares"))
		assert.Equal(t, 6.0, rows[1].Total)
	})

	t.Run("Chave ausente em todos os registros retorna vazio", func(t *testing.T) {
		rows := AggregateByKey(records, domain.ContentTypeField, []string{"likes"})
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("Registros sem chave são ignorados e strings numéricas somadas", func(t *testing.T) {
		mixed := decodeInsights(t, `{"data":[
			{"date":"2023-01-01","Content_Type":"Reel","likes":"7"},
			{"date":"2023-01-02","likes":100},
			{"date":"2023-01-03","Content_Type":"Reel","likes":1,"comments":"n/a"}
		]}`)
		mixedRecords, err := ExtractInsightSeries(mixed)
		require.NoError(t, err)

		rows := AggregateByKey(mixedRecords, domain.ContentTypeField, []string{"likes", "comments"})
		require.Len(t, rows, 1)
		assert.Equal(t, 8.0, rows[0].Sum("likes"))
		assert.Equal(t, 0.0, rows[0].Sum("comments"))
		assert.Equal(t, 8.0, rows[0].Total)
	})

	t.Run("Chave repetida soma o último valor", func(t *testing.T) {
		records, err := ExtractInsightSeries(decodeInsights(t, `{"data":[{"date":"2023-01-01","Content_Type":"Photo","likes":1,"likes":5}]}`))
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Len(t, records[0].Fields, 2)

		rows := AggregateByKey(records, "Content_Type", []string{"likes"})
		require.Len(t, rows, 1)
		assert.Equal(t, 5.0, rows[0].Sum("likes"))
	})
}

func TestSynthesizeUniformAudience(t *testing.T) {
	first := SynthesizeUniformAudience(42)
	second := SynthesizeUniformAudience(42)

	require.Len(t, first, len(domain.BrazilStates))
	assert.Equal(t, first, second)

	total := 0.0
	for i, row := range first {
		assert.Equal(t, domain.BrazilStates[i].Code, row.RegionCode)
		assert.Greater(t, row.Percentage, 0.0)
		total += row.Percentage
	}
	assert.InDelta(t, 100.0, total, 1e-9)

	assert.NotEqual(t, first, SynthesizeUniformAudience(7))
}

func TestSynthesizeReachImpressions(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	points := SynthesizeReachImpressions(start, 30, 1)
	require.Len(t, points, 30)
	assert.Equal(t, start, points[0].Date)

	for i, point := range points {
		assert.GreaterOrEqual(t, point.Impressions, point.Reach)
		assert.GreaterOrEqual(t, point.Reach, 2000.0)
		assert.Less(t, point.Reach, 5000.0)
		assert.GreaterOrEqual(t, point.Impressions-point.Reach, 500.0)
		assert.Less(t, point.Impressions-point.Reach, 2000.0)
		if i > 0 {
			assert.Equal(t, points[i-1].Date.AddDate(0, 0, 1), point.Date)
		}
	}

	assert.Equal(t, points, SynthesizeReachImpressions(start, 30, 1))
	assert.Empty(t, SynthesizeReachImpressions(start, 0, 1))
}

func TestReachImpressionsSeries(t *testing.T) {
	raw := decodeInsights(t, `{"data":[
		{"date":"2023-01-02","reach":"200","impressions":300},
		{"date":"2023-01-01","likes":4},
		{"date":"2023-01-03","reach":150,"impressions":220}
	]}`)
	records, err := ExtractInsightSeries(raw)
	require.NoError(t, err)

	points := ReachImpressionsSeries(records)
	require.Len(t, points, 2)
	assert.Equal(t, 200.0, points[0].Reach)
	assert.Equal(t, 300.0, points[0].Impressions)

	end := time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)
	filtered := FilterByDateRange(points, &domain.InsightFilters{EndDate: &end})
	require.Len(t, filtered, 1)
	assert.Equal(t, end, filtered[0].Date)

	unsorted := []domain.ReachImpressionsPoint{points[1], points[0]}
	sorted := SortByDate(unsorted)
	assert.Equal(t, points, sorted)
	assert.Equal(t, points[1], unsorted[0])
}
