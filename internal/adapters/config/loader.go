// Package config provides the configuration loader for rig.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory when
// no override is given.
const DefaultFilename = "rig.yaml"

// DefaultSlots is the canonical animation slot table used when the config
// file does not declare its own. Order matters: it fixes resolution and
// reporting order for every target.
var DefaultSlots = []domain.AnimationSlot{
	{Name: "idle", File: "idle.fbx"},
	{Name: "walk", File: "walk.fbx"},
	{Name: "run", File: "run.fbx"},
	{Name: "jump_up", File: "jump_up.fbx"},
	{Name: "falling_idle", File: "falling_idle.fbx"},
	{Name: "landing", File: "falling_to_idle.fbx"},
	{Name: "walk_backwards", File: "walk_backwards.fbx"},
	{Name: "strafe_left", File: "strafe_left.fbx"},
	{Name: "strafe_right", File: "strafe_right.fbx"},
	{Name: "glide", File: "glide.fbx"},
	{Name: "cast", File: "cast.fbx"},
}

// Path returns the config file location, honoring the RIG_CONFIG override.
func Path() string {
	if p := os.Getenv("RIG_CONFIG"); p != "" {
		return p
	}
	return DefaultFilename
}

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the configuration file at the given path and returns the
// fully-resolved pipeline spec.
func (l *Loader) Load(path string) (*domain.PipelineSpec, error) {
	return Load(path)
}

// Load reads a configuration file from the given path, applies defaults, and
// resolves all paths against the config file's directory.
func Load(path string) (*domain.PipelineSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var rigfile Rigfile
	if err := yaml.Unmarshal(data, &rigfile); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to resolve config path")
	}
	root := filepath.Dir(abs)

	defaults := domain.Config{Gender: domain.GenderMale}
	if rigfile.Defaults != nil {
		defaults, err = parseModel("defaults", *rigfile.Defaults)
		if err != nil {
			return nil, err
		}
	}

	models := make(map[string]domain.Config, len(rigfile.Models))
	for name, dto := range rigfile.Models {
		cfg, err := parseModel(name, dto)
		if err != nil {
			return nil, err
		}
		models[name] = cfg
	}

	slots, err := parseSlots(rigfile.Animations)
	if err != nil {
		return nil, err
	}

	exportExt := rigfile.Assembler.ExportExt
	if exportExt == "" {
		exportExt = "glb"
	}

	return &domain.PipelineSpec{
		Root:         root,
		SourceDir:    resolvePath(root, rigfile.Paths.SourceDir, "0_source_models"),
		AnimDir:      resolvePath(root, rigfile.Paths.AnimDir, "1_anim_library"),
		OutputDir:    resolvePath(root, rigfile.Paths.OutputDir, filepath.Join("..", "raw_assets")),
		ManifestPath: resolvePath(root, rigfile.Paths.Manifest, "build_manifest.json"),
		ExportExt:    exportExt,
		Defaults:     defaults,
		Models:       models,
		Slots:        slots,
		ForceRebuild: rigfile.ForceRebuild,
		Assembler:    rigfile.Assembler.Command,
	}, nil
}

func parseModel(name string, dto ModelDTO) (domain.Config, error) {
	gender := domain.Gender(dto.Gender)
	if dto.Gender == "" {
		gender = domain.GenderMale
	}
	if !gender.Valid() {
		err := zerr.With(domain.ErrInvalidGender, "model", name)
		return domain.Config{}, zerr.With(err, "gender", dto.Gender)
	}
	return domain.Config{Gender: gender, ExtraArmAngle: dto.ExtraArmAngle}, nil
}

func parseSlots(dtos []SlotDTO) ([]domain.AnimationSlot, error) {
	if len(dtos) == 0 {
		return DefaultSlots, nil
	}

	seen := make(map[string]bool, len(dtos))
	slots := make([]domain.AnimationSlot, 0, len(dtos))
	for _, dto := range dtos {
		if dto.Slot == "" || dto.File == "" {
			return nil, zerr.With(zerr.New("animation slot requires both slot and file"), "slot", dto.Slot)
		}
		if seen[dto.Slot] {
			return nil, zerr.With(domain.ErrDuplicateSlot, "slot", dto.Slot)
		}
		seen[dto.Slot] = true
		slots = append(slots, domain.AnimationSlot{Name: dto.Slot, File: dto.File})
	}
	return slots, nil
}

func resolvePath(root, value, fallback string) string {
	if value == "" {
		value = fallback
	}
	if filepath.IsAbs(value) {
		return filepath.Clean(value)
	}
	return filepath.Join(root, value)
}
