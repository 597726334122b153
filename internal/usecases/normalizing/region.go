package normalizing

import (
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
)

// Categorias com até maxCodeLength caracteres são tratadas como código de estado
// e só passam se o código existir.
const maxCodeLength = 2

// ResolveRegionCodes associa cada categoria ao código do estado e descarta as que
// não resolvem. Os percentuais não são renormalizados após o descarte.
func ResolveRegionCodes(rows []domain.CategoryCount) []domain.ResolvedAudienceRow {
	resolved, _ := ResolveRegionCodesWithReport(rows)
	return resolved
}

// ResolveRegionCodesWithReport é como ResolveRegionCodes, mas também devolve as
// categorias descartadas, na ordem da entrada.
func ResolveRegionCodesWithReport(rows []domain.CategoryCount) ([]domain.ResolvedAudienceRow, []string) {
	resolved := make([]domain.ResolvedAudienceRow, 0, len(rows))
	unresolved := make([]string, 0)

	for _, row := range rows {
		code, ok := resolveRegionCode(row.Category)
		if !ok {
			unresolved = append(unresolved, row.Category)
			continue
		}
		resolved = append(resolved, domain.ResolvedAudienceRow{
			Category:   row.Category,
			Percentage: row.Percentage,
			RegionCode: code,
		})
	}

	return resolved, unresolved
}

func resolveRegionCode(category string) (string, bool) {
	if len(category) <= maxCodeLength {
		if domain.IsRegionCode(category) {
			return category, true
		}
		return "", false
	}
	return domain.RegionCodeByName(category)
}
