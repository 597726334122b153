package handler

import (
	"net/http"

	"github.com/vfg2006/instagram-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/instagram-dashboard-api/internal/usecases/dashboarding"
)

func Healthcheck(snapshot SnapshotProvider, source string) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(snapshot, source),
		},
	}
}

func Insights(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights/series",
			Method:  http.MethodGet,
			Handler: GetInsightSeries(service),
		},
		{
			Path:    "/v1/insights/reach-impressions",
			Method:  http.MethodGet,
			Handler: GetReachImpressions(service),
		},
		{
			Path:    "/v1/insights/interactions",
			Method:  http.MethodGet,
			Handler: GetInteractions(service),
		},
	}
}

func Demographics(service dashboarding.Dashboard) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/demographics/states",
			Method:  http.MethodGet,
			Handler: GetStateAudience(service),
		},
		{
			Path:    "/v1/demographics/cities",
			Method:  http.MethodGet,
			Handler: GetCityAudience(service),
		},
	}
}

func Geo(provider GeoProvider) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/geo/brazil-states",
			Method:  http.MethodGet,
			Handler: GetBrazilStatesGeoJSON(provider),
		},
		{
			Path:    "/v1/geo/brazil-states/codes",
			Method:  http.MethodGet,
			Handler: GetBrazilStatesCodes(provider),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
