package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/adapters/assembler"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rig/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rig/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rig/internal/adapters/manifest"           //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rig/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rig/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.ResolverNodeID,
			manifest.NodeID,
			assembler.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			resolver, err := graft.Dep[ports.SnapshotResolver](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}

			engine, err := graft.Dep[ports.TransformEngine](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(resolver, store, engine, log, telemetry), nil
		},
	})
}
