package handler

import (
	"net/http"

	"github.com/vfg2006/instagram-dashboard-api/internal/domain"
	"github.com/vfg2006/instagram-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/instagram-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/instagram-dashboard-api/pkg/log"
	"github.com/vfg2006/instagram-dashboard-api/pkg/utils"
)

func GetInsightSeries(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		series, err := service.Series(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"source": series.Source,
			"count":  len(series.Records),
		}).Info("insights: série retornada")

		writeJSON(w, logger, series)
	})
}

func GetReachImpressions(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("insights: parâmetro start_date inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": r.URL.Query().Get("end_date"),
				"error":    err.Error(),
			}).Warn("insights: parâmetro end_date inválido")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		filters := &domain.InsightFilters{
			StartDate: startDate,
			EndDate:   endDate,
		}

		response, err := service.ReachImpressions(r.Context(), filters)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"source": response.Source,
			"count":  len(response.Points),
		}).Info("insights: alcance e impressões retornados")

		writeJSON(w, logger, response)
	})
}

func GetInteractions(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response, err := service.Interactions(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		if response.Status != domain.ViewStatusOK {
			logger.WithField("status", response.Status).Warn("insights: interações sem dados")
		}

		writeJSON(w, logger, response)
	})
}
