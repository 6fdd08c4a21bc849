package progrock_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/logger"
	"go.trai.ch/rig/internal/adapters/telemetry/progrock"
	"go.trai.ch/rig/internal/core/ports"
)

// Vertex output must surface through the logger; the tape has no other
// consumer in this application.
func TestRecorder_ForwardsVertexOutputToLogger(t *testing.T) {
	log := logger.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	rec := progrock.New(log)

	ctx, vertex := rec.Record(context.Background(), "hero")

	_, err := vertex.Stdout().Write([]byte("importing hero.fbx\nexporting hero.glb\n"))
	require.NoError(t, err)
	_, err = vertex.Stderr().Write([]byte("no F_glide.fbx, using M variant\n"))
	require.NoError(t, err)

	vertex.Complete(nil)
	require.NoError(t, rec.Close())

	out := buf.String()
	assert.Contains(t, out, "hero: importing hero.fbx")
	assert.Contains(t, out, "hero: exporting hero.glb")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "hero: no F_glide.fbx, using M variant")

	// The vertex attached to the context is what the exec adapter streams to.
	attached, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, vertex, attached)
}

func TestRecorder_CachedVertex(t *testing.T) {
	log := logger.New()
	var buf bytes.Buffer
	log.SetOutput(&buf)

	rec := progrock.New(log)

	_, vertex := rec.Record(context.Background(), "orc")
	vertex.Cached()

	assert.NoError(t, rec.Close())
}
