package dashboarding

import (
	"context"

	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
)

// DocumentStore define a interface de leitura dos documentos brutos já decodificados
type DocumentStore interface {
	Insights(ctx context.Context) (*domain.InsightsDocument, error)
	Demographics(ctx context.Context, name string) (*domain.DemographicsDocument, error)
	SnapshotID() string
}

// Dashboard é a interface consumida pelos handlers HTTP
type Dashboard interface {
	// Series retorna a série completa de insights na ordem do documento
	Series(ctx context.Context) (*domain.SeriesResponse, error)

	// ReachImpressions retorna alcance e impressões por data, em ordem cronológica
	ReachImpressions(ctx context.Context, filters *domain.InsightFilters) (*domain.ReachImpressionsResponse, error)

	// Interactions retorna likes, comentários e compartilhamentos somados por tipo de conteúdo
	Interactions(ctx context.Context) (*domain.InteractionsResponse, error)

	// StateAudience retorna a audiência por estado com o código resolvido
	StateAudience(ctx context.Context) (*domain.StateAudienceResponse, error)

	// CityAudience retorna a audiência por cidade
	CityAudience(ctx context.Context) (*domain.CityAudienceResponse, error)

	// Report executa todas as visões e resume o resultado
	Report(ctx context.Context) (*domain.PipelineReport, error)
}
