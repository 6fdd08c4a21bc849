package ports

import (
	"context"

	"go.trai.ch/rig/internal/core/domain"
)

// TransformEngine performs the actual model/animation assembly and export:
// reset its workspace, import the source model, fail fast when no skeletal
// rig is found, attach each resolved clip as a named motion track (applying
// the per-target arm-angle correction when configured), and emit one export
// artifact named after the target. The engine is opaque to the pipeline; any
// failure it reports is isolated to the current target.
//
//go:generate go run go.uber.org/mock/mockgen -source=engine.go -destination=mocks/mock_engine.go -package=mocks
type TransformEngine interface {
	Assemble(ctx context.Context, target domain.Target, snap domain.Snapshot) error
}
