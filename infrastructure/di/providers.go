package di

import (
	"pipeline-backend/application/services"
	"pipeline-backend/infrastructure/config"
	"pipeline-backend/pkg/observability"

	"go.uber.org/zap"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// ProvideMetrics creates the Prometheus metrics collector
func ProvideMetrics(cfg *config.Config) *observability.Collector {
	return observability.NewCollector("pipeline_backend")
}

// ProvidePipelineService creates the pipeline analysis service
func ProvidePipelineService(logger *zap.Logger, metrics *observability.Collector) *services.PipelineService {
	return services.NewPipelineService(logger, metrics)
}
