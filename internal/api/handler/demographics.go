package handler

import (
	"net/http"

	"github.com/vfg2006/instagram-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/instagram-dashboard-api/pkg/log"
)

func GetStateAudience(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response, err := service.StateAudience(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, response)
	})
}

func GetCityAudience(service dashboarding.Dashboard) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		response, err := service.CityAudience(r.Context())
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, response)
	})
}
