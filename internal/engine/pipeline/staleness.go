package pipeline

import (
	"sort"

	"go.trai.ch/rig/internal/core/domain"
)

// Evaluate decides whether a target must be rebuilt by comparing its fresh
// snapshot against the stored manifest entry. It returns the reason for the
// first mismatch found. Pure function, safe to call speculatively.
//
// The animation comparison is asymmetric on purpose: slots present in the old
// entry but absent from the fresh snapshot do not trigger a rebuild, so
// deleting a clip from the library leaves previously-built artifacts alone.
// Do not "fix" this without changing the regression test that pins it.
func Evaluate(entry *domain.ManifestEntry, snap domain.Snapshot, force bool) (bool, string) {
	if force {
		return true, "forced rebuild"
	}
	if entry == nil {
		return true, "no prior build"
	}

	if snap.SourceModTime != entry.SourceModTime {
		return true, "source model changed"
	}
	if snap.Config != entry.Config {
		return true, "configuration changed"
	}

	for _, slot := range sortedSlots(snap.Animations) {
		prev, ok := entry.Animations[slot]
		if !ok {
			return true, "new animation added: " + slot
		}
		if snap.Animations[slot].ModTime != prev.ModTime {
			return true, "animation file changed: " + slot
		}
	}

	return false, "up to date"
}

// sortedSlots fixes iteration order so the reported reason is deterministic
// when several animations changed at once.
func sortedSlots(animations map[string]domain.AnimationRef) []string {
	slots := make([]string, 0, len(animations))
	for slot := range animations {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}
