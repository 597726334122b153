package geo

import (
	"context"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Fetcher busca o conteúdo de uma URL
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// featureCollection é o mínimo do GeoJSON necessário para ler as siglas
type featureCollection struct {
	Type     string `json:"type"`
	Features []struct {
		Properties struct {
			Sigla string `json:"sigla"`
			Name  string `json:"name"`
		} `json:"properties"`
	} `json:"features"`
}

// CodesReport compara as siglas do GeoJSON com a tabela de estados
type CodesReport struct {
	Codes   []string `json:"codes"`
	Missing []string `json:"missing"` // Estados da tabela sem geometria
	Extra   []string `json:"extra"`   // Siglas do GeoJSON fora da tabela
}

// GeoIntegrator busca o GeoJSON dos estados uma única vez por processo
type GeoIntegrator struct {
	url     string
	fetcher Fetcher

	mu      sync.Mutex
	geojson []byte
}

func New(url string, fetcher Fetcher) *GeoIntegrator {
	return &GeoIntegrator{
		url:     url,
		fetcher: fetcher,
	}
}

// BrazilStates retorna o GeoJSON bruto dos estados
func (g *GeoIntegrator) BrazilStates(ctx context.Context) ([]byte, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.geojson != nil {
		return g.geojson, nil
	}

	data, err := g.fetcher.Fetch(ctx, g.url)
	if err != nil {
		return nil, errors.Wrap(err, "geo: erro ao buscar o GeoJSON dos estados")
	}

	var collection featureCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, errors.Wrap(err, "geo: GeoJSON inválido")
	}

	logrus.WithFields(logrus.Fields{
		"url":      g.url,
		"features": len(collection.Features),
	}).Info("GeoJSON dos estados carregado")

	g.geojson = data
	return data, nil
}

// CheckCodes confere se as siglas do GeoJSON cobrem exatamente a tabela de estados
func (g *GeoIntegrator) CheckCodes(ctx context.Context) (*CodesReport, error) {
	data, err := g.BrazilStates(ctx)
	if err != nil {
		return nil, err
	}

	var collection featureCollection
	if err := json.Unmarshal(data, &collection); err != nil {
		return nil, errors.Wrap(err, "geo: GeoJSON inválido")
	}

	report := &CodesReport{
		Codes:   make([]string, 0, len(collection.Features)),
		Missing: make([]string, 0),
		Extra:   make([]string, 0),
	}

	present := make(map[string]bool)
	for _, feature := range collection.Features {
		code := feature.Properties.Sigla
		report.Codes = append(report.Codes, code)
		present[code] = true
		if !domain.IsRegionCode(code) {
			report.Extra = append(report.Extra, code)
		}
	}

	for _, region := range domain.BrazilStates {
		if !present[region.Code] {
			report.Missing = append(report.Missing, region.Code)
		}
	}

	if len(report.Missing) > 0 || len(report.Extra) > 0 {
		logrus.WithFields(logrus.Fields{
			"missing": report.Missing,
			"extra":   report.Extra,
		}).Warn("Siglas do GeoJSON divergem da tabela de estados")
	}

	return report, nil
}
