package handler

import (
	"context"
	"net/http"

	"github.com/vfg2006/instagram-dashboard-api/infrastructure/integrator/geo"
	"github.com/vfg2006/instagram-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/instagram-dashboard-api/pkg/log"
)

// GeoProvider fornece as geometrias dos estados para o mapa
type GeoProvider interface {
	BrazilStates(ctx context.Context) ([]byte, error)
	CheckCodes(ctx context.Context) (*geo.CodesReport, error)
}

func GetBrazilStatesGeoJSON(provider GeoProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		data, err := provider.BrazilStates(r.Context())
		if err != nil {
			logger.WithError(err).Error("geo: falha ao obter o GeoJSON dos estados")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível obter o GeoJSON dos estados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/geo+json")
		if _, err := w.Write(data); err != nil {
			logger.WithError(err).Warn("geo: falha ao escrever a resposta")
		}
	})
}

func GetBrazilStatesCodes(provider GeoProvider) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		report, err := provider.CheckCodes(r.Context())
		if err != nil {
			logger.WithError(err).Error("geo: falha ao conferir as siglas do GeoJSON")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Não foi possível conferir as siglas do GeoJSON", nil)
			return
		}

		writeJSON(w, logger, report)
	})
}
