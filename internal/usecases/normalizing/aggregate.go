package normalizing

import (
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
)

// AggregateByKey agrupa os registros pelo valor de key e soma cada campo de sumFields.
// Os grupos saem na ordem da primeira aparição da chave. Registros sem a chave são
// ignorados; campos ausentes ou não numéricos contam como zero. Se nenhum registro
// tiver a chave, o resultado é vazio.
func AggregateByKey(rows []domain.InsightRecord, key string, sumFields []string) []domain.AggregateRow {
	aggregates := make([]domain.AggregateRow, 0)
	position := make(map[string]int)

	for _, row := range rows {
		label, ok := row.Label(key)
		if !ok {
			continue
		}

		i, seen := position[label]
		if !seen {
			sums := make([]domain.FieldSum, len(sumFields))
			for j, field := range sumFields {
				sums[j] = domain.FieldSum{Field: field}
			}
			i = len(aggregates)
			position[label] = i
			aggregates = append(aggregates, domain.AggregateRow{Key: label, Sums: sums})
		}

		for j, field := range sumFields {
			value, _ := row.Number(field)
			aggregates[i].Sums[j].Sum += value
		}
	}

	for i := range aggregates {
		total := 0.0
		for _, s := range aggregates[i].Sums {
			total += s.Sum
		}
		aggregates[i].Total = total
	}

	return aggregates
}
