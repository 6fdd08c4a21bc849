// Package assembler invokes the external transform engine that performs the
// actual scene assembly and export.
package assembler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/rig/internal/core/domain"
	"go.trai.ch/rig/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TransformEngine = (*Engine)(nil)

// Engine implements ports.TransformEngine by shelling out to a configured
// headless assembler command. The command owns all scene work: it resets its
// workspace, imports the source model, fails when no skeletal rig is found,
// attaches each resolved clip as an independently-switchable motion track
// (applying the arm-angle correction when configured), and exports one
// artifact named after the target. The build item is handed over through
// RIG_* environment variables.
type Engine struct {
	spec   *domain.PipelineSpec
	logger ports.Logger
}

// New creates a new Engine.
func New(spec *domain.PipelineSpec, logger ports.Logger) *Engine {
	return &Engine{
		spec:   spec,
		logger: logger,
	}
}

// Assemble runs the assembler command for one target. Any failure is an
// ordinary error for the orchestrator to isolate; nothing here aborts the
// batch.
func (e *Engine) Assemble(ctx context.Context, target domain.Target, snap domain.Snapshot) error {
	if len(e.spec.Assembler) == 0 {
		return zerr.New("assembler command not configured")
	}

	if _, err := os.Stat(e.spec.OutputDir); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zerr.With(domain.ErrOutputDirMissing, "dir", e.spec.OutputDir)
		}
		return zerr.Wrap(err, "failed to stat output directory")
	}

	name := e.spec.Assembler[0]
	args := e.spec.Assembler[1:]

	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // command comes from the pipeline config
	cmd.Dir = e.spec.Root
	cmd.Env = append(os.Environ(), e.environment(target, snap)...)
	cmd.Stdout, cmd.Stderr = e.streams(ctx)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		err = zerr.With(zerr.Wrap(err, "assembler failed"), "exit_code", exitCode)
		return zerr.With(err, "target", target.Name)
	}

	return nil
}

// environment encodes one build item for the assembler process. Clips appear
// in slot-table order.
func (e *Engine) environment(target domain.Target, snap domain.Snapshot) []string {
	clips := make([]string, 0, len(snap.Animations))
	for _, slot := range e.spec.Slots {
		if ref, ok := snap.Animations[slot.Name]; ok {
			clips = append(clips, slot.Name+"="+ref.File)
		}
	}

	return []string{
		"RIG_TARGET=" + target.Name,
		"RIG_SOURCE=" + target.SourcePath,
		"RIG_FORMAT=" + string(target.Format),
		"RIG_GENDER=" + string(target.Config.Gender),
		fmt.Sprintf("RIG_EXTRA_ARM_ANGLE=%g", target.Config.ExtraArmAngle),
		"RIG_ANIM_DIR=" + e.spec.AnimDir,
		"RIG_CLIPS=" + strings.Join(clips, ";"),
		"RIG_EXPORT=" + e.spec.ExportPath(target.Name),
	}
}

// streams routes assembler output into the current telemetry vertex when one
// is attached, falling back to the logger.
func (e *Engine) streams(ctx context.Context) (io.Writer, io.Writer) {
	if v, ok := ports.VertexFromContext(ctx); ok {
		return v.Stdout(), v.Stderr()
	}
	return &logWriter{logger: e.logger}, &logWriter{logger: e.logger, errStream: true}
}

type logWriter struct {
	logger    ports.Logger
	errStream bool
}

func (w *logWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		if line == "" {
			continue
		}
		if w.errStream {
			w.logger.Warn(line)
		} else {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}
