package ports

import "go.trai.ch/rig/internal/core/domain"

// TargetDiscoverer enumerates buildable targets from the source directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=discoverer.go -destination=mocks/mock_discoverer.go -package=mocks
type TargetDiscoverer interface {
	// Discover lists the source directory and returns targets sorted by name
	// so batch iteration order is reproducible. A missing source directory is
	// a fatal error.
	Discover() ([]domain.Target, error)
}
