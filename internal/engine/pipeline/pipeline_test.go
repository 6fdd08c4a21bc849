package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/telemetry"
	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

type fakeResolver struct {
	snaps map[string]domain.Snapshot
	errs  map[string]error
}

func (f *fakeResolver) Resolve(_ context.Context, target domain.Target) (domain.Snapshot, error) {
	if err := f.errs[target.Name]; err != nil {
		return domain.Snapshot{}, err
	}
	return f.snaps[target.Name], nil
}

type fakeStore struct {
	entries domain.Manifest
	commits int
	flushes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(domain.Manifest)}
}

func (f *fakeStore) Entry(name string) (*domain.ManifestEntry, bool) {
	entry, ok := f.entries[name]
	if !ok {
		return nil, false
	}
	return &entry, true
}

func (f *fakeStore) Commit(name string, entry domain.ManifestEntry) {
	f.entries[name] = entry
	f.commits++
}

func (f *fakeStore) Flush() error {
	f.flushes++
	return nil
}

type fakeEngine struct {
	fail  map[string]error
	calls []string
}

func (f *fakeEngine) Assemble(_ context.Context, target domain.Target, _ domain.Snapshot) error {
	f.calls = append(f.calls, target.Name)
	return f.fail[target.Name]
}

type nopLogger struct{}

func (nopLogger) Info(string) {}
func (nopLogger) Warn(string) {}
func (nopLogger) Error(error) {}

func newPipeline(resolver *fakeResolver, store *fakeStore, engine *fakeEngine) *pipeline.Pipeline {
	return pipeline.New(resolver, store, engine, nopLogger{}, telemetry.NewNoop())
}

func target(name string) domain.Target {
	return domain.Target{
		Name:       name,
		SourceFile: name + ".fbx",
		SourcePath: "/models/" + name + ".fbx",
		Format:     domain.FormatFBX,
		Config:     domain.Config{Gender: domain.GenderMale},
	}
}

func snapshot(mtime int64) domain.Snapshot {
	return domain.Snapshot{
		SourceModTime: mtime,
		Config:        domain.Config{Gender: domain.GenderMale},
		Animations: map[string]domain.AnimationRef{
			"walk": {File: "M_walk.fbx", ModTime: 10},
		},
	}
}

func TestRun_BuildsAndFlushesOnce(t *testing.T) {
	resolver := &fakeResolver{snaps: map[string]domain.Snapshot{
		"hero": snapshot(100),
		"orc":  snapshot(200),
	}}
	store := newFakeStore()
	engine := &fakeEngine{}

	summary, err := newPipeline(resolver, store, engine).Run(
		context.Background(), []domain.Target{target("hero"), target("orc")}, false)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Built)
	assert.Equal(t, 2, store.commits)
	assert.Equal(t, 1, store.flushes, "manifest must be flushed exactly once per batch")

	entry, ok := store.Entry("hero")
	require.True(t, ok)
	assert.Equal(t, int64(100), entry.SourceModTime)
	assert.Equal(t, "hero.fbx", entry.SourceFile)
	assert.NotEmpty(t, entry.Fingerprint)

	require.Len(t, summary.Results, 2)
	assert.Equal(t, entry.Fingerprint, summary.Results[0].Fingerprint)
}

func TestRun_SecondPassSkipsEverything(t *testing.T) {
	resolver := &fakeResolver{snaps: map[string]domain.Snapshot{"hero": snapshot(100)}}
	store := newFakeStore()
	engine := &fakeEngine{}
	pipe := newPipeline(resolver, store, engine)

	targets := []domain.Target{target("hero")}

	first, err := pipe.Run(context.Background(), targets, false)
	require.NoError(t, err)
	require.Equal(t, 1, first.Built)

	second, err := pipe.Run(context.Background(), targets, false)
	require.NoError(t, err)

	assert.Equal(t, 0, second.Built)
	assert.Equal(t, 1, second.Skipped)
	assert.Len(t, engine.calls, 1, "engine must not run for an up-to-date target")
	assert.Equal(t, 1, store.flushes, "an all-skipped batch must not rewrite the manifest")
}

func TestRun_ForceRebuildsUpToDateTargets(t *testing.T) {
	resolver := &fakeResolver{snaps: map[string]domain.Snapshot{"hero": snapshot(100)}}
	store := newFakeStore()
	engine := &fakeEngine{}
	pipe := newPipeline(resolver, store, engine)

	targets := []domain.Target{target("hero")}

	_, err := pipe.Run(context.Background(), targets, false)
	require.NoError(t, err)

	summary, err := pipe.Run(context.Background(), targets, true)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Built)
	assert.Len(t, engine.calls, 2)
}

func TestRun_FailureIsolation(t *testing.T) {
	resolver := &fakeResolver{snaps: map[string]domain.Snapshot{
		"alpha": snapshot(100),
		"beta":  snapshot(200),
		"gamma": snapshot(300),
	}}
	store := newFakeStore()
	store.entries["alpha"] = domain.ManifestEntry{SourceModTime: 50} // stale prior entry
	engine := &fakeEngine{fail: map[string]error{"alpha": zerr.New("no armature found")}}

	summary, err := newPipeline(resolver, store, engine).Run(
		context.Background(),
		[]domain.Target{target("alpha"), target("beta"), target("gamma")},
		false)
	require.NoError(t, err, "per-target failures must not fail the batch")

	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 2, summary.Built)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, engine.calls, "failure must not stop iteration")

	// The failed target keeps its stale entry so the next run retries it.
	entry, ok := store.Entry("alpha")
	require.True(t, ok)
	assert.Equal(t, int64(50), entry.SourceModTime)

	entry, ok = store.Entry("beta")
	require.True(t, ok)
	assert.Equal(t, int64(200), entry.SourceModTime)
}

func TestBuildOne_ResolverErrorIsFailed(t *testing.T) {
	resolver := &fakeResolver{errs: map[string]error{"hero": zerr.New("stat failed")}}
	store := newFakeStore()
	engine := &fakeEngine{}

	res := newPipeline(resolver, store, engine).BuildOne(context.Background(), target("hero"), false)

	assert.Equal(t, domain.OutcomeFailed, res.Outcome)
	assert.Empty(t, engine.calls)
	assert.Equal(t, 0, store.commits)
}

func TestStatus_ReportsWithoutMutating(t *testing.T) {
	resolver := &fakeResolver{snaps: map[string]domain.Snapshot{
		"hero": snapshot(100),
		"orc":  snapshot(200),
	}}
	store := newFakeStore()
	store.entries["hero"] = domain.ManifestEntry{
		SourceModTime: 100,
		Config:        domain.Config{Gender: domain.GenderMale},
		Animations: map[string]domain.AnimationRef{
			"walk": {File: "M_walk.fbx", ModTime: 10},
		},
	}
	engine := &fakeEngine{}

	reports := newPipeline(resolver, store, engine).Status(
		context.Background(), []domain.Target{target("hero"), target("orc")})

	require.Len(t, reports, 2)
	assert.False(t, reports[0].Stale)
	assert.True(t, reports[1].Stale)
	assert.Equal(t, "no prior build", reports[1].Reason)

	assert.Empty(t, engine.calls)
	assert.Equal(t, 0, store.commits)
	assert.Equal(t, 0, store.flushes)
}
