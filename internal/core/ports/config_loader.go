// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/rig/internal/core/domain"

// ConfigLoader defines the interface for loading the pipeline configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at the given path and returns the
	// fully-resolved pipeline spec. A missing file is fatal for the batch.
	Load(path string) (*domain.PipelineSpec, error)
}
