package domain

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
)

// AnimationRef records one resolved animation clip: the basename the lookup
// landed on (after gender fallback) and its modification time.
type AnimationRef struct {
	File    string `json:"file"`
	ModTime int64  `json:"mtime"`
}

// Snapshot is the fully-resolved dependency state of one target at one point
// in time: the source model timestamp, the static configuration, and every
// animation slot that resolved to a file. Slots without a resolvable file are
// simply absent. A snapshot is a pure function of filesystem state plus
// configuration and is never mutated after construction.
type Snapshot struct {
	SourceModTime int64
	Config        Config
	Animations    map[string]AnimationRef
}

// Fingerprint returns a short digest of the snapshot for logs and manifest
// metadata. It is informational only: staleness decisions compare fields
// directly so the asymmetric animation check keeps its documented semantics.
func (s Snapshot) Fingerprint() string {
	h := xxhash.New()
	_, _ = fmt.Fprintf(h, "%d\x00%s\x00%g\x00", s.SourceModTime, s.Config.Gender, s.Config.ExtraArmAngle)

	slots := make([]string, 0, len(s.Animations))
	for slot := range s.Animations {
		slots = append(slots, slot)
	}
	sort.Strings(slots)

	for _, slot := range slots {
		ref := s.Animations[slot]
		_, _ = fmt.Fprintf(h, "%s\x00%s\x00%d\x00", slot, ref.File, ref.ModTime)
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
