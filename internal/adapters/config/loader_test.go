package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/config"
	"go.trai.ch/rig/internal/core/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
version: "1"
paths:
  source_dir: models
  anim_dir: clips
  output_dir: out
  manifest: state/manifest.json
defaults:
  gender: M
  extra_arm_angle: 2.5
models:
  sorceress:
    gender: F
    extra_arm_angle: 5
animations:
  - slot: walk
    file: walk.fbx
  - slot: cast
    file: cast_spell.fbx
force_rebuild: true
assembler:
  command: ["blender", "--background", "--python", "assemble.py"]
  export_ext: fbx
`)
	root := filepath.Dir(path)

	spec, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, root, spec.Root)
	assert.Equal(t, filepath.Join(root, "models"), spec.SourceDir)
	assert.Equal(t, filepath.Join(root, "clips"), spec.AnimDir)
	assert.Equal(t, filepath.Join(root, "out"), spec.OutputDir)
	assert.Equal(t, filepath.Join(root, "state", "manifest.json"), spec.ManifestPath)
	assert.Equal(t, "fbx", spec.ExportExt)
	assert.True(t, spec.ForceRebuild)

	assert.Equal(t, domain.Config{Gender: domain.GenderMale, ExtraArmAngle: 2.5}, spec.Defaults)
	assert.Equal(t, domain.Config{Gender: domain.GenderFemale, ExtraArmAngle: 5}, spec.ConfigFor("sorceress"))
	assert.Equal(t, spec.Defaults, spec.ConfigFor("unlisted"))

	require.Len(t, spec.Slots, 2)
	assert.Equal(t, domain.AnimationSlot{Name: "walk", File: "walk.fbx"}, spec.Slots[0])
	assert.Equal(t, domain.AnimationSlot{Name: "cast", File: "cast_spell.fbx"}, spec.Slots[1])

	assert.Equal(t, []string{"blender", "--background", "--python", "assemble.py"}, spec.Assembler)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "version: \"1\"\n")
	root := filepath.Dir(path)

	spec, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "0_source_models"), spec.SourceDir)
	assert.Equal(t, filepath.Join(root, "1_anim_library"), spec.AnimDir)
	assert.Equal(t, filepath.Join(filepath.Dir(root), "raw_assets"), spec.OutputDir)
	assert.Equal(t, filepath.Join(root, "build_manifest.json"), spec.ManifestPath)
	assert.Equal(t, "glb", spec.ExportExt)
	assert.Equal(t, domain.GenderMale, spec.Defaults.Gender)
	assert.False(t, spec.ForceRebuild)

	// The canonical slot table applies when none is declared.
	assert.Equal(t, config.DefaultSlots, spec.Slots)
	require.Len(t, spec.Slots, 11)
	assert.Equal(t, "falling_to_idle.fbx", spec.Slots[5].File)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConfigNotFound))
}

func TestLoad_InvalidGender(t *testing.T) {
	path := writeConfig(t, `
models:
  hero:
    gender: X
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidGender))
}

func TestLoad_DuplicateSlot(t *testing.T) {
	path := writeConfig(t, `
animations:
  - slot: walk
    file: walk.fbx
  - slot: walk
    file: walk_v2.fbx
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateSlot))
}

func TestLoad_IncompleteSlot(t *testing.T) {
	path := writeConfig(t, `
animations:
  - slot: walk
`)

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("RIG_CONFIG", "/etc/rig/pipeline.yaml")
	assert.Equal(t, "/etc/rig/pipeline.yaml", config.Path())

	t.Setenv("RIG_CONFIG", "")
	assert.Equal(t, config.DefaultFilename, config.Path())
}
