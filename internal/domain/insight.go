package domain

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Campos conhecidos dos registros de insights
const (
	DateField        = "date"
	ReachField       = "reach"
	ImpressionsField = "impressions"
	LikesField       = "likes"
	CommentsField    = "comments"
	SharesField      = "shares"
	ContentTypeField = "Content_Type"
)

type InsightFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// InsightRecord é uma linha por data de relatório com as métricas na ordem original
type InsightRecord struct {
	Date   time.Time
	Fields []RawField
}

// Value retorna o valor bruto de um campo
func (r InsightRecord) Value(name string) (any, bool) {
	return RawRecord(r.Fields).Get(name)
}

// Number retorna o valor numérico de um campo. Strings numéricas também são aceitas,
// já que a Graph API devolve métricas como texto.
func (r InsightRecord) Number(name string) (float64, bool) {
	value, ok := r.Value(name)
	if !ok {
		return 0, false
	}
	return toFloat(value)
}

// Label retorna o valor de um campo discreto (ex.: tipo de conteúdo)
func (r InsightRecord) Label(name string) (string, bool) {
	value, ok := r.Value(name)
	if !ok || value == nil {
		return "", false
	}
	if s, isString := value.(string); isString {
		return s, true
	}
	return fmt.Sprint(value), true
}

func (r InsightRecord) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"date":"`)
	buf.WriteString(r.Date.Format(time.DateOnly))
	buf.WriteByte('"')

	for _, field := range r.Fields {
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field.Value)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// FieldSum é a soma de uma coluna dentro de um grupo
type FieldSum struct {
	Field string  `json:"field"`
	Sum   float64 `json:"sum"`
}

// AggregateRow é o resultado do agrupamento de InsightRecords por uma chave discreta
type AggregateRow struct {
	Key   string     `json:"key"`
	Sums  []FieldSum `json:"sums"`
	Total float64    `json:"total"`
}

// Sum retorna a soma de uma coluna do grupo
func (a AggregateRow) Sum(field string) float64 {
	for _, s := range a.Sums {
		if s.Field == field {
			return s.Sum
		}
	}
	return 0
}

// ReachImpressionsPoint é um ponto da série de alcance e impressões
type ReachImpressionsPoint struct {
	Date        time.Time `json:"-"`
	Reach       float64   `json:"reach"`
	Impressions float64   `json:"impressions"`
}

func (p ReachImpressionsPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Date        string  `json:"date"`
		Reach       float64 `json:"reach"`
		Impressions float64 `json:"impressions"`
	}{
		Date:        p.Date.Format(time.DateOnly),
		Reach:       p.Reach,
		Impressions: p.Impressions,
	})
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
