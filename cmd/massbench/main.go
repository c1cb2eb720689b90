package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/dontdude/massbench/internal/harness"
	"github.com/dontdude/massbench/internal/platform/massif"
	"github.com/dontdude/massbench/internal/platform/rustc"
	"github.com/dontdude/massbench/internal/scenario"
)

func main() {
	// 1. Initialize Logger
	// Diagnostics go to stderr so stdout carries only the report.
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// 2. Verify the workspace
	// No scenario can proceed without a writable temp area (Fail-Fast).
	workspace := os.TempDir()
	if err := harness.CheckWorkspace(workspace); err != nil {
		slog.Error("Workspace is unusable", "dir", workspace, "error", err)
		os.Exit(1)
	}

	// 3. Build the toolchain adapters
	compiler := rustc.New()
	profiler := massif.New()

	// 4. Run the comparison
	// Per-scenario compile failures are reported inside the run and do not
	// affect the exit status; only environment-level failures do.
	h := harness.New(workspace, compiler, profiler, os.Stdout)
	if err := h.Run(context.Background(), scenario.Defaults()); err != nil {
		slog.Error("Harness run failed", "error", err)
		os.Exit(1)
	}
}
