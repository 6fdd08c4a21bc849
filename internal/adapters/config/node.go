package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// SpecNodeID is the unique identifier for the loaded pipeline spec node.
	SpecNodeID graft.ID = "adapter.pipeline_spec"
)

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[*domain.PipelineSpec]{
		ID:        SpecNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.PipelineSpec, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			return loader.Load(Path())
		},
	})
}
