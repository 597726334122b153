package domain

import "time"

// Status consultivo quando uma visão não tem dados
const (
	ViewStatusOK            = "ok"
	ViewStatusNoContentType = "no_content_type"
	ViewStatusNoMetric      = "no_metric"
)

// ReachImpressionsResponse alimenta o gráfico de linha de alcance x impressões
type ReachImpressionsResponse struct {
	Points    []ReachImpressionsPoint `json:"points"`
	StartDate string                  `json:"start_date,omitempty"`
	EndDate   string                  `json:"end_date,omitempty"`
	Source    string                  `json:"source"`
}

// InteractionsResponse alimenta o gráfico de barras de interações por tipo de conteúdo
type InteractionsResponse struct {
	Rows    []AggregateRow `json:"rows"`
	Status  string         `json:"status"`
	Message string         `json:"message,omitempty"`
	Source  string         `json:"source"`
}

// StateAudienceResponse alimenta o mapa coroplético por estado
type StateAudienceResponse struct {
	Rows       []ResolvedAudienceRow `json:"rows"`
	Unresolved []string              `json:"unresolved,omitempty"`
	Status     string                `json:"status"`
	Source     string                `json:"source"`
}

// CityAudienceResponse lista a audiência por cidade
type CityAudienceResponse struct {
	Rows   []CategoryCount `json:"rows"`
	Status string          `json:"status"`
	Source string          `json:"source"`
}

// SeriesResponse devolve a série completa de insights
type SeriesResponse struct {
	Records []InsightRecord `json:"records"`
	Source  string          `json:"source"`
}

// PipelineReport resume uma execução completa do pipeline de normalização
type PipelineReport struct {
	SnapshotID         string    `json:"snapshot_id"`
	Source             string    `json:"source"`
	InsightRecords     int       `json:"insight_records"`
	FirstDate          string    `json:"first_date,omitempty"`
	LastDate           string    `json:"last_date,omitempty"`
	StateRows          int       `json:"state_rows"`
	UnresolvedRegions  int       `json:"unresolved_regions"`
	ResolvedShare      float64   `json:"resolved_share"`
	CityRows           int       `json:"city_rows"`
	InteractionGroups  int       `json:"interaction_groups"`
	InteractionsStatus string    `json:"interactions_status"`
	GeneratedAt        time.Time `json:"generated_at"`
}
