// Package fs implements filesystem-backed target discovery and snapshot
// resolution.
package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TargetDiscoverer = (*Discoverer)(nil)

// Discoverer lists buildable targets from the source directory.
type Discoverer struct {
	spec *domain.PipelineSpec
}

// NewDiscoverer creates a new Discoverer for the given pipeline spec.
func NewDiscoverer(spec *domain.PipelineSpec) *Discoverer {
	return &Discoverer{spec: spec}
}

// Discover lists the source directory and returns targets sorted by name.
// Files whose extension is outside the supported source formats are ignored.
func (d *Discoverer) Discover() ([]domain.Target, error) {
	entries, err := os.ReadDir(d.spec.SourceDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrSourceDirMissing, "dir", d.spec.SourceDir)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to list source directory"), "dir", d.spec.SourceDir)
	}

	var targets []domain.Target
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
		format, ok := domain.FormatForExtension(ext)
		if !ok {
			continue
		}

		stem := strings.TrimSuffix(name, filepath.Ext(name))
		targets = append(targets, domain.Target{
			Name:       stem,
			SourceFile: name,
			SourcePath: filepath.Join(d.spec.SourceDir, name),
			Format:     format,
			Config:     d.spec.ConfigFor(stem),
		})
	}

	// ReadDir already sorts by filename, but the batch contract is on target
	// names, so sort on those.
	sort.Slice(targets, func(i, j int) bool { return targets[i].Name < targets[j].Name })

	return targets, nil
}
