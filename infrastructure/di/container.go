//go:build !wireinject
// +build !wireinject

package di

import (
	"pipeline-backend/infrastructure/config"
)

// InitializeContainer creates a fully wired container. This mirrors what the
// Wire injector in wire.go produces; regenerate with `wire ./infrastructure/di`
// after changing the provider set.
func InitializeContainer(cfg *config.Config) (*Container, error) {
	logger, err := ProvideLogger(cfg)
	if err != nil {
		return nil, err
	}
	metrics := ProvideMetrics(cfg)
	pipelineService := ProvidePipelineService(logger, metrics)

	return &Container{
		Config:          cfg,
		Logger:          logger,
		Metrics:         metrics,
		PipelineService: pipelineService,
	}, nil
}
