// Package harness orchestrates the end-to-end comparison: materialize each
// scenario's source, compile it, profile the executable and report the
// collected peak figures.
package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dontdude/massbench/internal/domain"
	"github.com/dontdude/massbench/internal/report"
)

// Harness drives every scenario sequentially through the toolchain.
// Scenarios never run concurrently; the profiler's process-keyed trace slot
// relies on each measurement finishing and cleaning up before the next starts.
type Harness struct {
	workspace string
	compiler  domain.Compiler
	profiler  domain.Profiler
	out       io.Writer
}

// New returns a Harness writing scenario sources and executables under
// workspace and the report to out.
func New(workspace string, compiler domain.Compiler, profiler domain.Profiler, out io.Writer) *Harness {
	return &Harness{
		workspace: workspace,
		compiler:  compiler,
		profiler:  profiler,
		out:       out,
	}
}

// outcome is one scenario's result. A scenario that failed to compile has
// measured=false and carries no figure.
type outcome struct {
	name     string
	measured bool
	peak     int64
}

// Run executes every scenario in order and prints the comparison report.
// A scenario whose source fails to compile is reported and skipped; the run
// continues with the remaining scenarios. Only an unusable workspace or a
// compiler that cannot be launched at all aborts the run.
func (h *Harness) Run(ctx context.Context, scenarios []domain.Scenario) error {
	fmt.Fprintln(h.out, report.Rule)
	fmt.Fprintln(h.out, report.Title)
	fmt.Fprintln(h.out, report.Rule)
	fmt.Fprintln(h.out)

	outcomes := make([]outcome, 0, len(scenarios))
	for _, sc := range scenarios {
		oc, err := h.runScenario(ctx, sc)
		if err != nil {
			return err
		}
		outcomes = append(outcomes, oc)
	}

	h.printMeasurements(outcomes)
	fmt.Fprint(h.out, report.SetupGuide)
	fmt.Fprintln(h.out)
	fmt.Fprintln(h.out, report.Rule)
	fmt.Fprintln(h.out)
	fmt.Fprint(h.out, report.Estimates)
	return nil
}

func (h *Harness) runScenario(ctx context.Context, sc domain.Scenario) (outcome, error) {
	runID := uuid.New().String()
	slog.Info("Running scenario", "scenario", sc.Name, "runID", runID)

	srcPath, err := h.writeSource(sc)
	if err != nil {
		return outcome{}, fmt.Errorf("writing source for %s: %w", sc.Name, err)
	}

	exePath := filepath.Join(h.workspace, sc.Name)
	res, err := h.compiler.Compile(ctx, srcPath, exePath)
	if err != nil {
		return outcome{}, fmt.Errorf("compiling %s: %w", sc.Name, err)
	}
	if !res.OK {
		fmt.Fprintf(h.out, "Compilation failed for %s:\n", sc.Name)
		fmt.Fprintln(h.out, res.Diagnostics)
		return outcome{name: sc.Name}, nil
	}

	rendered := h.profiler.Profile(ctx, res.Executable)
	peak := h.profiler.PeakBytes(rendered)
	slog.Info("Scenario measured", "scenario", sc.Name, "runID", runID, "peakBytes", peak)

	return outcome{name: sc.Name, measured: true, peak: peak}, nil
}

// writeSource materializes the scenario source at a deterministic path keyed
// by the scenario name, overwriting any previous run's file.
func (h *Harness) writeSource(sc domain.Scenario) (string, error) {
	path := filepath.Join(h.workspace, sc.Name+".rs")
	if err := os.WriteFile(path, []byte(sc.Source), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

func (h *Harness) printMeasurements(outcomes []outcome) {
	fmt.Fprintln(h.out, report.Rule)
	fmt.Fprintln(h.out, report.MeasuredHeading)
	fmt.Fprintln(h.out, report.Rule)
	for _, oc := range outcomes {
		if oc.measured {
			fmt.Fprintf(h.out, "%-20s %s\n", oc.name, report.FormatBytes(oc.peak))
		} else {
			fmt.Fprintf(h.out, "%-20s compilation failed\n", oc.name)
		}
	}
	fmt.Fprintln(h.out)
}

// CheckWorkspace verifies the workspace directory is writable by creating and
// removing a probe file. Nothing can run without it, so callers treat a
// failure as fatal.
func CheckWorkspace(dir string) error {
	probe := filepath.Join(dir, fmt.Sprintf(".massbench.probe.%d", os.Getpid()))
	if err := os.WriteFile(probe, []byte("probe"), 0o644); err != nil {
		return fmt.Errorf("workspace %s is not writable: %w", dir, err)
	}
	if err := os.Remove(probe); err != nil {
		return fmt.Errorf("cleaning workspace probe: %w", err)
	}
	return nil
}
