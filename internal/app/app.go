// Package app implements the application layer for rig.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/rig/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	spec       *domain.PipelineSpec
	discoverer ports.TargetDiscoverer
	pipeline   *pipeline.Pipeline
	watcher    ports.Watcher
	logger     ports.Logger
}

// New creates a new App instance.
func New(
	spec *domain.PipelineSpec,
	discoverer ports.TargetDiscoverer,
	pipe *pipeline.Pipeline,
	watcher ports.Watcher,
	logger ports.Logger,
) *App {
	return &App{
		spec:       spec,
		discoverer: discoverer,
		pipeline:   pipe,
		watcher:    watcher,
		logger:     logger,
	}
}

// Run executes one batch pass over every discovered target. Per-target
// failures are counted, not fatal; only discovery-level errors abort.
func (a *App) Run(ctx context.Context, force bool) error {
	targets, err := a.discoverer.Discover()
	if err != nil {
		return zerr.Wrap(err, "target discovery failed")
	}

	if len(targets) == 0 {
		a.logger.Warn("no models found in " + a.spec.SourceDir)
		return nil
	}

	_, err = a.pipeline.Run(ctx, targets, force || a.spec.ForceRebuild)
	return err
}

// Status reports per-target staleness without building anything.
func (a *App) Status(ctx context.Context, out io.Writer) error {
	targets, err := a.discoverer.Discover()
	if err != nil {
		return zerr.Wrap(err, "target discovery failed")
	}

	for _, report := range a.pipeline.Status(ctx, targets) {
		state := "up to date"
		if report.Stale {
			state = "stale: " + report.Reason
		}
		if _, err := fmt.Fprintf(out, "%-24s %s\n", report.Target, state); err != nil {
			return err
		}
	}

	return nil
}

// Watch runs one batch pass, then keeps rebuilding whenever the source or
// animation directories change, until the context is canceled.
func (a *App) Watch(ctx context.Context) error {
	if err := a.Run(ctx, false); err != nil {
		return err
	}

	if err := a.watcher.Start(ctx, []string{a.spec.SourceDir, a.spec.AnimDir}); err != nil {
		return zerr.Wrap(err, "failed to start watch mode")
	}
	defer func() { _ = a.watcher.Stop() }()

	a.logger.Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths, ok := <-a.watcher.Changes():
			if !ok {
				return nil
			}
			a.logger.Info(fmt.Sprintf("%d change(s) detected, rebuilding", len(paths)))
			if err := a.Run(ctx, false); err != nil {
				// Keep watching; a transient discovery failure (e.g. the
				// source dir momentarily renamed) should not end the session.
				a.logger.Error(err)
			}
		}
	}
}

// Clean removes the build manifest so the next run rebuilds everything.
func (a *App) Clean() error {
	if err := os.Remove(a.spec.ManifestPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to remove manifest")
	}
	a.logger.Info("removed " + a.spec.ManifestPath)
	return nil
}
