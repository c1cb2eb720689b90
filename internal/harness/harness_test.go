package harness

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/dontdude/massbench/internal/domain"
	"github.com/dontdude/massbench/internal/report"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// fakeCompiler succeeds for every scenario except those listed in fail,
// which get the mapped diagnostic text back instead.
type fakeCompiler struct {
	fail map[string]string
}

func (f *fakeCompiler) Compile(_ context.Context, srcPath, outPath string) (domain.CompileResult, error) {
	name := strings.TrimSuffix(filepath.Base(srcPath), ".rs")
	if diag, ok := f.fail[name]; ok {
		return domain.CompileResult{Diagnostics: diag}, nil
	}
	return domain.CompileResult{OK: true, Executable: outPath}, nil
}

// fakeProfiler replays a fixed rendered report and records every
// executable it was asked to profile. Its report format matches the real
// renderer's "peak: <digits>" marker, extracted independently here so the
// harness stays blind to which profiler pairing it drives.
type fakeProfiler struct {
	report   string
	profiled []string
}

var fakePeakMarker = regexp.MustCompile(`peak:\s+(\d+)`)

func (f *fakeProfiler) Profile(_ context.Context, executable string) string {
	f.profiled = append(f.profiled, executable)
	return f.report
}

func (f *fakeProfiler) PeakBytes(report string) int64 {
	m := fakePeakMarker.FindStringSubmatch(report)
	if m == nil {
		return 0
	}
	peak, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return peak
}

func TestHarness_Run(t *testing.T) {
	scenarios := []domain.Scenario{
		{Name: "A", Source: "fn main() {}"},
		{Name: "B", Source: "fn main() {"},
	}

	t.Run("ReportsMeasuredAndFailedScenarios", func(t *testing.T) {
		dir := t.TempDir()
		compiler := &fakeCompiler{fail: map[string]string{"B": "error: this file contains an unclosed delimiter"}}
		profiler := &fakeProfiler{report: "peak: 2048 bytes"}
		var out bytes.Buffer

		h := New(dir, compiler, profiler, &out)
		require.NoError(t, h.Run(context.Background(), scenarios))

		text := out.String()
		assert.Contains(t, text, fmt.Sprintf("%-20s %s", "A", "2.00 KB"))
		assert.Contains(t, text, "Compilation failed for B:")
		assert.Contains(t, text, "unclosed delimiter")
		assert.Contains(t, text, fmt.Sprintf("%-20s compilation failed", "B"))
		assert.Contains(t, text, "Memory Usage Comparison")
		assert.Contains(t, text, "requires manual setup")
		assert.Contains(t, text, "Quick estimation based on structure sizes")
	})

	t.Run("MaterializesSourcesAtNameKeyedPaths", func(t *testing.T) {
		dir := t.TempDir()
		h := New(dir, &fakeCompiler{}, &fakeProfiler{}, &bytes.Buffer{})
		require.NoError(t, h.Run(context.Background(), scenarios))

		data, err := os.ReadFile(filepath.Join(dir, "A.rs"))
		require.NoError(t, err)
		assert.Equal(t, "fn main() {}", string(data))
	})

	t.Run("FailedCompileSkipsProfiling", func(t *testing.T) {
		dir := t.TempDir()
		compiler := &fakeCompiler{fail: map[string]string{"A": "boom", "B": "boom"}}
		profiler := &fakeProfiler{report: "peak: 2048 bytes"}

		h := New(dir, compiler, profiler, &bytes.Buffer{})
		require.NoError(t, h.Run(context.Background(), scenarios))
		assert.Empty(t, profiler.profiled)
	})

	t.Run("UnparsableReportDegradesToZero", func(t *testing.T) {
		dir := t.TempDir()
		profiler := &fakeProfiler{report: ""}
		var out bytes.Buffer

		h := New(dir, &fakeCompiler{}, profiler, &out)
		require.NoError(t, h.Run(context.Background(), scenarios))
		assert.Contains(t, out.String(), fmt.Sprintf("%-20s %s", "A", "0.00 B"))
	})

	t.Run("GuidanceBlocksKeepTheirSeparators", func(t *testing.T) {
		dir := t.TempDir()
		var out bytes.Buffer
		h := New(dir, &fakeCompiler{}, &fakeProfiler{report: "peak: 2048 bytes"}, &out)
		require.NoError(t, h.Run(context.Background(), scenarios))

		// One blank line between the setup guide and the closing rule, one
		// between the rule and the estimates, and the estimates end the report.
		tail := report.SetupGuide + "\n" + report.Rule + "\n\n" + report.Estimates
		assert.True(t, strings.HasSuffix(out.String(), tail))
	})

	t.Run("RepeatedRunsProduceIdenticalOutput", func(t *testing.T) {
		dir := t.TempDir()
		run := func() string {
			var out bytes.Buffer
			h := New(dir, &fakeCompiler{fail: map[string]string{"B": "boom"}}, &fakeProfiler{report: "peak: 2048 bytes"}, &out)
			require.NoError(t, h.Run(context.Background(), scenarios))
			return out.String()
		}
		assert.Equal(t, run(), run())
	})

	t.Run("UnwritableWorkspaceAbortsTheRun", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "does-not-exist")
		h := New(dir, &fakeCompiler{}, &fakeProfiler{}, &bytes.Buffer{})
		err := h.Run(context.Background(), scenarios)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "writing source")
	})
}

func TestCheckWorkspace(t *testing.T) {
	t.Run("WritableDirPasses", func(t *testing.T) {
		assert.NoError(t, CheckWorkspace(t.TempDir()))
	})

	t.Run("MissingDirFails", func(t *testing.T) {
		assert.Error(t, CheckWorkspace(filepath.Join(t.TempDir(), "missing")))
	})
}
