package ports

import "go.trai.ch/rig/internal/core/domain"

// ManifestStore owns the persisted build history. It is loaded once at
// startup; the orchestrator proposes entries which the store keeps in memory
// until the batch driver flushes them in a single write.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Entry returns a copy of the stored entry for a target name.
	Entry(name string) (*domain.ManifestEntry, bool)

	// Commit stages a new entry in memory, overwriting any prior entry for
	// the same target. Nothing reaches disk until Flush.
	Commit(name string, entry domain.ManifestEntry)

	// Flush writes the manifest to disk in one shot.
	Flush() error
}
