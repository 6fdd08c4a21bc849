// Package telemetry provides progress-recording implementations.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/rig/internal/core/ports"
)

// Noop is a no-op implementation of ports.Telemetry.
type Noop struct{}

// NewNoop creates a new no-op telemetry recorder.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a no-op vertex.
func (t *Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := &NoopVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (t *Noop) Close() error { return nil }

// NoopVertex is a no-op implementation of ports.Vertex.
type NoopVertex struct{}

// Stdout discards all output.
func (v *NoopVertex) Stdout() io.Writer { return io.Discard }

// Stderr discards all output.
func (v *NoopVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (v *NoopVertex) Complete(error) {}

// Cached does nothing.
func (v *NoopVertex) Cached() {}
