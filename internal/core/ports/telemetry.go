package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress vertices, one per target per batch pass.
type Telemetry interface {
	// Record starts recording a new vertex and attaches it to the context so
	// downstream adapters can stream output into it.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one tracked unit of work.
type Vertex interface {
	// Stdout returns a writer capturing the standard output stream.
	Stdout() io.Writer
	// Stderr returns a writer capturing the error output stream.
	Stderr() io.Writer
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
	// Cached marks the vertex as skipped because the target was up to date.
	Cached()
}

type vertexContextKey struct{}

// ContextWithVertex attaches a vertex to the context.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexContextKey{}, v)
}

// VertexFromContext retrieves the vertex attached to the context, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexContextKey{}).(Vertex)
	return v, ok
}
