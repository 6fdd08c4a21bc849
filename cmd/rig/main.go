// Package main is the entry point for the rig asset pipeline CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/rig/cmd/rig/commands"
	"go.trai.ch/rig/internal/app"
	_ "go.trai.ch/rig/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available if initialization failed; zerr prints a
		// full report with metadata when using %+v.
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		return 1
	}

	defer func() {
		if err := components.Telemetry.Close(); err != nil {
			components.Logger.Error(err)
		}
	}()

	cli := commands.New(components.App)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return 1
	}
	return 0
}
