package progrock

import (
	"io"

	"github.com/vito/progrock"
)

// Vertex wraps *progrock.VertexRecorder as a ports.Vertex.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer capturing the standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Stderr returns a writer capturing the error output stream.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Complete marks the vertex as finished, successfully or with an error.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as skipped because the target was up to date.
func (v *Vertex) Cached() {
	v.vertex.Cached()
	v.vertex.Done(nil)
}
