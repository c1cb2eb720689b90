// Package massif drives valgrind's massif tool and its ms_print renderer
// against compiled benchmark executables.
package massif

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/dontdude/massbench/internal/domain"
)

// Runner profiles executables with valgrind massif and renders the trace
// through ms_print. The intermediate trace file is keyed by the harness
// process ID, so two harness processes never collide; scenarios within one
// process run strictly one at a time and reuse the same slot.
type Runner struct {
	valgrindBin string
	msPrintBin  string
	tmpDir      string
}

// Check if Runner implements domain.Profiler
var _ domain.Profiler = (*Runner)(nil)

// New returns a Runner that resolves valgrind and ms_print from PATH and
// writes its trace files to the system temp directory.
func New() *Runner {
	return NewWithTools("valgrind", "ms_print", os.TempDir())
}

// NewWithTools returns a Runner with explicit tool binaries and trace
// directory. Tests use this to substitute stubs for the real tools.
func NewWithTools(valgrindBin, msPrintBin, tmpDir string) *Runner {
	return &Runner{valgrindBin: valgrindBin, msPrintBin: msPrintBin, tmpDir: tmpDir}
}

// Profile runs the executable under massif and returns the ms_print report.
// Tool failures degrade to whatever text was captured (possibly empty); the
// caller's peak extraction then yields zero. The trace file is removed before
// returning on every path. No timeout is applied to either subprocess, so a
// hung valgrind blocks the harness indefinitely.
func (r *Runner) Profile(ctx context.Context, executable string) string {
	trace := r.TracePath()
	defer r.removeTrace(trace)

	run := exec.CommandContext(ctx, r.valgrindBin, "--tool=massif", "--massif-out-file="+trace, executable)
	if err := run.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			// Exit codes are not inspected; only a profiler that could not
			// be launched is worth surfacing.
			slog.Warn("Profiler could not be launched", "bin", r.valgrindBin, "error", err)
		}
	}

	render := exec.CommandContext(ctx, r.msPrintBin, trace)
	var report bytes.Buffer
	render.Stdout = &report
	if err := render.Run(); err != nil {
		slog.Warn("Report rendering failed", "bin", r.msPrintBin, "trace", trace, "error", err)
	}

	return report.String()
}

// TracePath returns the process-keyed path of the intermediate trace file.
func (r *Runner) TracePath() string {
	return filepath.Join(r.tmpDir, fmt.Sprintf("massif.out.%d", os.Getpid()))
}

func (r *Runner) removeTrace(trace string) {
	if _, err := os.Stat(trace); err != nil {
		return
	}
	if err := os.Remove(trace); err != nil {
		slog.Warn("Failed to remove trace file", "trace", trace, "error", err)
	}
}
