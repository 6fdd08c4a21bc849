package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.SnapshotResolver = (*Resolver)(nil)

// Resolver resolves dependency snapshots by statting the filesystem. It
// performs reads only.
type Resolver struct {
	animDir string
	slots   []domain.AnimationSlot
}

// NewResolver creates a new Resolver for the given pipeline spec.
func NewResolver(spec *domain.PipelineSpec) *Resolver {
	return &Resolver{
		animDir: spec.AnimDir,
		slots:   spec.Slots,
	}
}

// Resolve stats the target's source model and every slot of the animation
// table and returns the resulting snapshot.
func (r *Resolver) Resolve(ctx context.Context, target domain.Target) (domain.Snapshot, error) {
	sourceModTime, err := modTime(target.SourcePath)
	if err != nil {
		return domain.Snapshot{}, err
	}

	// Stat the animation library concurrently. Assembly below stays
	// deterministic because results land in slot-table order.
	refs := make([]*domain.AnimationRef, len(r.slots))
	g, _ := errgroup.WithContext(ctx)
	for i, slot := range r.slots {
		g.Go(func() error {
			ref, err := r.resolveSlot(slot, target.Config.Gender)
			if err != nil {
				return err
			}
			refs[i] = ref
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domain.Snapshot{}, err
	}

	animations := make(map[string]domain.AnimationRef, len(r.slots))
	for i, slot := range r.slots {
		if refs[i] != nil {
			animations[slot.Name] = *refs[i]
		}
	}

	return domain.Snapshot{
		SourceModTime: sourceModTime,
		Config:        target.Config,
		Animations:    animations,
	}, nil
}

// resolveSlot locates the gender-prefixed clip for one slot. Female targets
// fall back to the male variant, so libraries authored for one gender are
// silently inherited by the other. An unresolvable slot returns nil, nil.
func (r *Resolver) resolveSlot(slot domain.AnimationSlot, gender domain.Gender) (*domain.AnimationRef, error) {
	candidates := []string{string(gender) + "_" + slot.File}
	if gender == domain.GenderFemale {
		candidates = append(candidates, string(domain.GenderMale)+"_"+slot.File)
	}

	for _, base := range candidates {
		info, err := os.Stat(filepath.Join(r.animDir, base))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat animation file"), "file", base)
		}
		return &domain.AnimationRef{File: base, ModTime: info.ModTime().UnixNano()}, nil
	}

	return nil, nil
}

// modTime returns the file's modification time in unix nanoseconds, or 0 when
// the file is absent. A missing source surfaces later as a build failure, not
// as a resolver error.
func modTime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", path)
	}
	return info.ModTime().UnixNano(), nil
}
