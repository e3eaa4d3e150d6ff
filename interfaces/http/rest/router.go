package rest

import (
	"net/http"
	"time"

	"pipeline-backend/application/services"
	"pipeline-backend/infrastructure/config"
	"pipeline-backend/interfaces/http/rest/handlers"
	"pipeline-backend/interfaces/http/rest/middleware"
	"pipeline-backend/pkg/observability"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Router creates and configures the HTTP router
type Router struct {
	config  *config.Config
	service *services.PipelineService
	metrics *observability.Collector
	logger  *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	cfg *config.Config,
	service *services.PipelineService,
	metrics *observability.Collector,
	logger *zap.Logger,
) *Router {
	return &Router{
		config:  cfg,
		service: service,
		metrics: metrics,
		logger:  logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))
	if rt.config.EnableMetrics {
		router.Use(middleware.Metrics(rt.metrics))
	}

	// CORS configuration: the frontend may be served from anywhere, so every
	// origin is allowed to call the parse endpoint.
	if rt.config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"*"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Service banner and connectivity probes
	router.Get("/", rt.root)
	router.Get("/test", rt.connectivityTest)
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	if rt.config.EnableMetrics {
		router.Handle("/metrics", promhttp.HandlerFor(rt.metrics.Registry(), promhttp.HandlerOpts{}))
	}

	// Pipeline endpoints
	router.Route("/pipelines", func(r chi.Router) {
		pipelineHandler := handlers.NewPipelineHandler(rt.service, rt.logger, rt.config.MaxBodyBytes)
		r.Post("/parse", pipelineHandler.ParsePipeline)
	})

	return router
}

// root handles GET / with a service banner
func (rt *Router) root(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message":"Pipeline Parser API","status":"running"}`))
}

// connectivityTest handles GET /test, a trivial probe the frontend uses to
// confirm it can reach the backend at all.
func (rt *Router) connectivityTest(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"test":"success","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}`))
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	// The service holds no state and talks to nothing, so ready == healthy.
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
