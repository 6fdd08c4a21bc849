package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/adapters/config"
	"go.trai.ch/rig/internal/adapters/logger"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
)

// NodeID is the unique identifier for the manifest store Graft node.
const NodeID graft.ID = "adapter.manifest_store"

func init() {
	graft.Register(graft.Node[ports.ManifestStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SpecNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ManifestStore, error) {
			spec, err := graft.Dep[*domain.PipelineSpec](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewStore(spec.ManifestPath, log), nil
		},
	})
}
