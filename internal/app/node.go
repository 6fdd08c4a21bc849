package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/adapters/watcher"            //nolint:depguard // Wired in app layer
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.SpecNodeID,
			fs.DiscovererNodeID,
			pipeline.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{AppNodeID, logger.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: application, Logger: log, Telemetry: tel}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	spec, err := graft.Dep[*domain.PipelineSpec](ctx)
	if err != nil {
		return nil, err
	}

	discoverer, err := graft.Dep[ports.TargetDiscoverer](ctx)
	if err != nil {
		return nil, err
	}

	pipe, err := graft.Dep[*pipeline.Pipeline](ctx)
	if err != nil {
		return nil, err
	}

	watch, err := graft.Dep[ports.Watcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(spec, discoverer, pipe, watch, log), nil
}
