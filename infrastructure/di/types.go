// Package di provides the dependency injection container. The Container
// type lives here so both the Wire injector and the manual initializer can
// share it.
package di

import (
	"pipeline-backend/application/services"
	"pipeline-backend/infrastructure/config"
	"pipeline-backend/pkg/observability"

	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	Metrics         *observability.Collector
	PipelineService *services.PipelineService
}
