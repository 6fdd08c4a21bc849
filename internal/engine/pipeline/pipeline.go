// Package pipeline implements the incremental build orchestration engine.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

// buildDateLayout is the human-readable timestamp format stored in manifest
// entries. Informational only, never compared.
const buildDateLayout = "2006-01-02 15:04:05"

// Pipeline coordinates snapshot resolution, staleness evaluation, transform
// engine invocation, and manifest commits for a batch of independent targets.
// Targets run strictly one at a time: the transform engine owns a single
// shared workspace.
type Pipeline struct {
	resolver  ports.SnapshotResolver
	store     ports.ManifestStore
	engine    ports.TransformEngine
	logger    ports.Logger
	telemetry ports.Telemetry
	now       func() time.Time
}

// New creates a new Pipeline.
func New(
	resolver ports.SnapshotResolver,
	store ports.ManifestStore,
	engine ports.TransformEngine,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Pipeline {
	return &Pipeline{
		resolver:  resolver,
		store:     store,
		engine:    engine,
		logger:    logger,
		telemetry: telemetry,
		now:       time.Now,
	}
}

// BuildOne processes a single target. Engine failures are converted into a
// Failed result and never propagate past this boundary; the manifest entry
// is committed only after the engine reports success, so a failed build is
// retried on the next run instead of being masked as up to date.
func (p *Pipeline) BuildOne(ctx context.Context, target domain.Target, force bool) domain.BuildResult {
	ctx, vertex := p.telemetry.Record(ctx, target.Name)

	snap, err := p.resolver.Resolve(ctx, target)
	if err != nil {
		vertex.Complete(err)
		return domain.BuildResult{
			Target:  target.Name,
			Outcome: domain.OutcomeFailed,
			Reason:  "snapshot resolution failed",
			Err:     err,
		}
	}

	entry, _ := p.store.Entry(target.Name)
	stale, reason := Evaluate(entry, snap, force)
	if !stale {
		vertex.Cached()
		return domain.BuildResult{Target: target.Name, Outcome: domain.OutcomeSkipped, Reason: reason}
	}

	if err := p.engine.Assemble(ctx, target, snap); err != nil {
		vertex.Complete(err)
		return domain.BuildResult{Target: target.Name, Outcome: domain.OutcomeFailed, Reason: reason, Err: err}
	}

	fresh := domain.NewEntry(target, snap, p.now().Format(buildDateLayout))
	p.store.Commit(target.Name, fresh)
	vertex.Complete(nil)
	return domain.BuildResult{
		Target:      target.Name,
		Outcome:     domain.OutcomeBuilt,
		Reason:      reason,
		Fingerprint: fresh.Fingerprint,
	}
}

// Run processes every target in the given order, isolating per-target
// failures, and flushes the manifest once at the end, only when at least one
// target was built. Skipping the write on an all-skipped batch both avoids
// churn and guarantees an untouched manifest file for unchanged inputs.
func (p *Pipeline) Run(ctx context.Context, targets []domain.Target, force bool) (domain.BatchSummary, error) {
	var summary domain.BatchSummary

	for i := range targets {
		res := p.BuildOne(ctx, targets[i], force)
		p.logResult(res)
		summary.Add(res)
	}

	if summary.Updated() {
		if err := p.store.Flush(); err != nil {
			return summary, zerr.Wrap(err, "failed to persist manifest")
		}
	}

	p.logger.Info(fmt.Sprintf("batch complete: %d built, %d skipped, %d failed",
		summary.Built, summary.Skipped, summary.Failed))

	return summary, nil
}

// TargetStatus is the dry-run staleness report for one target.
type TargetStatus struct {
	Target string
	Stale  bool
	Reason string
}

// Status evaluates every target without building or committing anything.
func (p *Pipeline) Status(ctx context.Context, targets []domain.Target) []TargetStatus {
	reports := make([]TargetStatus, 0, len(targets))

	for _, target := range targets {
		snap, err := p.resolver.Resolve(ctx, target)
		if err != nil {
			reports = append(reports, TargetStatus{Target: target.Name, Stale: true, Reason: err.Error()})
			continue
		}

		entry, _ := p.store.Entry(target.Name)
		stale, reason := Evaluate(entry, snap, false)
		reports = append(reports, TargetStatus{Target: target.Name, Stale: stale, Reason: reason})
	}

	return reports
}

func (p *Pipeline) logResult(res domain.BuildResult) {
	switch res.Outcome {
	case domain.OutcomeSkipped:
		p.logger.Info("skipped " + res.Target + " (up to date)")
	case domain.OutcomeBuilt:
		p.logger.Info("built " + res.Target + " (" + res.Reason + ") fingerprint=" + res.Fingerprint)
	case domain.OutcomeFailed:
		p.logger.Error(zerr.With(zerr.Wrap(res.Err, "build failed"), "target", res.Target))
	}
}
