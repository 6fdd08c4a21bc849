package ports

import (
	"context"

	"go.trai.ch/rig/internal/core/domain"
)

// SnapshotResolver resolves the full dependency state of one target.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type SnapshotResolver interface {
	// Resolve stats the target's source model and animation clips and returns
	// an immutable snapshot. An animation slot with no resolvable file is
	// omitted from the snapshot, not an error. Resolve is side-effect-free:
	// for unchanged filesystem state two calls yield identical snapshots.
	Resolve(ctx context.Context, target domain.Target) (domain.Snapshot, error)
}
