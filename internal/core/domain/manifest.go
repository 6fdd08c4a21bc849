package domain

// ManifestEntry is the persisted snapshot from the last successful build of
// one target. BuildDate and Fingerprint are human-readable metadata and are
// never used in staleness comparisons.
type ManifestEntry struct {
	BuildDate     string                  `json:"build_date"`
	SourceFile    string                  `json:"source_file"`
	SourceModTime int64                   `json:"source_mtime"`
	Config        Config                  `json:"config"`
	Animations    map[string]AnimationRef `json:"animations"`
	Fingerprint   string                  `json:"fingerprint,omitempty"`
}

// Manifest maps target names to their last successful build state. It is the
// sole source of build history across process runs.
type Manifest map[string]ManifestEntry

// NewEntry promotes a snapshot into a manifest entry after a successful build.
func NewEntry(target Target, snap Snapshot, buildDate string) ManifestEntry {
	return ManifestEntry{
		BuildDate:     buildDate,
		SourceFile:    target.SourceFile,
		SourceModTime: snap.SourceModTime,
		Config:        snap.Config,
		Animations:    snap.Animations,
		Fingerprint:   snap.Fingerprint(),
	}
}
