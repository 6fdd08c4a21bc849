package domain

import "path/filepath"

// AnimationSlot maps a logical animation role (e.g. "walk") to its canonical
// base filename in the animation library. The slot table is ordered and
// shared by all targets.
type AnimationSlot struct {
	Name string
	File string
}

// PipelineSpec is the fully-resolved static configuration for one run. All
// paths are absolute; relative paths from the config file were resolved
// against its directory at load time.
type PipelineSpec struct {
	Root         string
	SourceDir    string
	AnimDir      string
	OutputDir    string
	ManifestPath string
	ExportExt    string
	Defaults     Config
	Models       map[string]Config
	Slots        []AnimationSlot
	ForceRebuild bool
	Assembler    []string
}

// ConfigFor returns the configuration for the named target, falling back to
// the defaults for any unlisted name.
func (s *PipelineSpec) ConfigFor(name string) Config {
	if cfg, ok := s.Models[name]; ok {
		return cfg
	}
	return s.Defaults
}

// ExportPath returns the artifact path for one target.
func (s *PipelineSpec) ExportPath(name string) string {
	return filepath.Join(s.OutputDir, name+"."+s.ExportExt)
}
