package normalizing

import (
	"math/rand"
	"time"

	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
)

// Faixas dos dados sintéticos: [min, max)
const (
	minAudienceWeight = 1
	maxAudienceWeight = 20
	minReach          = 2000
	maxReach          = 5000
	minExtraImpress   = 500
	maxExtraImpress   = 2000
)

// SynthesizeUniformAudience gera uma distribuição de audiência para os 27 estados a
// partir da semente. A mesma semente gera exatamente a mesma sequência.
func SynthesizeUniformAudience(seed int64) []domain.ResolvedAudienceRow {
	rng := rand.New(rand.NewSource(seed))

	weights := make([]int, len(domain.BrazilStates))
	totalWeight := 0
	for i := range domain.BrazilStates {
		weights[i] = minAudienceWeight + rng.Intn(maxAudienceWeight-minAudienceWeight)
		totalWeight += weights[i]
	}

	rows := make([]domain.ResolvedAudienceRow, len(domain.BrazilStates))
	for i, region := range domain.BrazilStates {
		rows[i] = domain.ResolvedAudienceRow{
			Category:   region.Name,
			Percentage: float64(weights[i]) / float64(totalWeight) * 100,
			RegionCode: region.Code,
		}
	}

	return rows
}

// SynthesizeReachImpressions gera days datas consecutivas a partir de startDate com
// alcance em [2000, 5000) e impressões iguais ao alcance mais [500, 2000).
func SynthesizeReachImpressions(startDate time.Time, days int, seed int64) []domain.ReachImpressionsPoint {
	if days <= 0 {
		return []domain.ReachImpressionsPoint{}
	}

	rng := rand.New(rand.NewSource(seed))
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, time.UTC)

	points := make([]domain.ReachImpressionsPoint, days)
	for i := 0; i < days; i++ {
		reach := minReach + rng.Intn(maxReach-minReach)
		extra := minExtraImpress + rng.Intn(maxExtraImpress-minExtraImpress)
		points[i] = domain.ReachImpressionsPoint{
			Date:        start.AddDate(0, 0, i),
			Reach:       float64(reach),
			Impressions: float64(reach + extra),
		}
	}

	return points
}
