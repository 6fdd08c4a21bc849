package commands_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/cmd/rig/commands"
	"go.trai.ch/rig/internal/adapters/logger"
	"go.trai.ch/rig/internal/app"
	"go.trai.ch/rig/internal/build"
	"go.trai.ch/rig/internal/core/domain"
)

func newCLI(spec *domain.PipelineSpec) (*commands.CLI, *bytes.Buffer) {
	a := app.New(spec, nil, nil, nil, logger.New())
	cli := commands.New(a)

	var out bytes.Buffer
	cli.SetOutput(&out)
	return cli, &out
}

func TestVersionCommand(t *testing.T) {
	cli, out := newCLI(&domain.PipelineSpec{})
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, build.Version, strings.TrimSpace(out.String()))
}

func TestCleanCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "build_manifest.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	cli, _ := newCLI(&domain.PipelineSpec{ManifestPath: path})
	cli.SetArgs([]string{"clean"})

	require.NoError(t, cli.Execute(context.Background()))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestUnknownCommandFails(t *testing.T) {
	cli, _ := newCLI(&domain.PipelineSpec{})
	cli.SetArgs([]string{"frobnicate"})

	assert.Error(t, cli.Execute(context.Background()))
}
