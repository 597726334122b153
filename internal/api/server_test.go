package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/instagram-dashboard-api/infrastructure/integrator/geo"
	"github.com/vfg2006/instagram-dashboard-api/internal/config"
	"github.com/vfg2006/instagram-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/instagram-dashboard-api/pkg/middleware"
)

type fakeFetcher struct{}

func (fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return []byte(`{"type":"FeatureCollection","features":[{"properties":{"sigla":"AC","name":"Acre"}}]}`), nil
}

func newSyntheticServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Server: config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:3000"}},
		Data:   config.Data{Source: config.DataSourceSynthetic},
		Synthetic: config.Synthetic{
			Seed:      7,
			StartDate: "2023-03-01",
			Days:      10,
		},
	}

	dashboard := dashboarding.NewService(cfg, nil)
	srv, err := New(cfg, dashboard, nil, geo.New("http://geo.local/states.geojson", fakeFetcher{}), nil)
	require.NoError(t, err)
	return srv
}

func TestServer_SyntheticEndToEnd(t *testing.T) {
	srv := newSyntheticServer(t)

	tests := []struct {
		path     string
		contains string
	}{
		{path: "/v1/insights/reach-impressions", contains: `"date":"2023-03-01"`},
		{path: "/v1/demographics/states", contains: `"state_code":"AC"`},
		{path: "/v1/demographics/cities", contains: `"status":"no_metric"`},
		{path: "/v1/insights/interactions", contains: `"status":"no_content_type"`},
		{path: "/v1/geo/brazil-states/codes", contains: `"codes":["AC"]`},
		{path: "/healthcheck", contains: `"source":"synthetic"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			req.Header.Set("Origin", "http://localhost:3000")
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
			assert.NotEmpty(t, rec.Header().Get(middleware.CorrelationIDHeader))
			assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestServer_CronWithoutReportJob(t *testing.T) {
	srv := newSyntheticServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/cron/report/run", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
