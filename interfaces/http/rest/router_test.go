package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pipeline-backend/application/services"
	"pipeline-backend/infrastructure/config"
	"pipeline-backend/pkg/observability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.Config{
		ServerAddress: ":8000",
		Environment:   "test",
		MaxBodyBytes:  1 << 20,
		EnableCORS:    true,
		EnableMetrics: true,
	}
	metrics := observability.NewCollector("pipeline_backend")
	service := services.NewPipelineService(zap.NewNop(), metrics)

	return NewRouter(cfg, service, metrics, zap.NewNop()).Setup()
}

func TestProbeEndpoints(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		path     string
		contains string
	}{
		{"/", `"status":"running"`},
		{"/test", `"test":"success"`},
		{"/health", `"status":"healthy"`},
		{"/ready", `"status":"ready"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.contains)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestParseEndToEnd(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"nodes": [
			{"id":"in","type":"customInput","position":{"x":0,"y":0},"data":{}},
			{"id":"out","type":"customOutput","position":{"x":200,"y":0},"data":{}}
		],
		"edges": [
			{"id":"e1","source":"in","target":"out","sourceHandle":"value","targetHandle":"value"}
		]
	}`

	req := httptest.NewRequest(http.MethodPost, "/pipelines/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"num_nodes":2,"num_edges":1,"is_dag":true}`, rec.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/pipelines/parse", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/pipelines/unknown", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
