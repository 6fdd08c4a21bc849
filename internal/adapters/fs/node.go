package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/internal/adapters/config"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
)

const (
	// DiscovererNodeID is the unique identifier for the discoverer Graft node.
	DiscovererNodeID graft.ID = "adapter.fs.discoverer"
	// ResolverNodeID is the unique identifier for the resolver Graft node.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
)

func init() {
	graft.Register(graft.Node[ports.TargetDiscoverer]{
		ID:        DiscovererNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SpecNodeID},
		Run: func(ctx context.Context) (ports.TargetDiscoverer, error) {
			spec, err := graft.Dep[*domain.PipelineSpec](ctx)
			if err != nil {
				return nil, err
			}
			return NewDiscoverer(spec), nil
		},
	})

	graft.Register(graft.Node[ports.SnapshotResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SpecNodeID},
		Run: func(ctx context.Context) (ports.SnapshotResolver, error) {
			spec, err := graft.Dep[*domain.PipelineSpec](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(spec), nil
		},
	})
}
