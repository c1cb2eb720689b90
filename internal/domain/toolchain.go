package domain

import "context"

// CompileResult is the outcome of one compiler invocation.
// Executable is valid only when OK is true; Diagnostics carries the
// compiler's stderr only when OK is false.
type CompileResult struct {
	OK          bool
	Executable  string
	Diagnostics string
}

// Compiler defines the contract for building a scenario source file into a
// native executable. Implementations wrap an external compiler process.
type Compiler interface {
	// Compile builds srcPath into an executable at outPath with optimization
	// enabled. A compiler that runs but rejects the source is reported through
	// the CompileResult, not the error; a non-nil error means the compiler
	// could not be invoked at all and the whole run should stop.
	Compile(ctx context.Context, srcPath, outPath string) (CompileResult, error)
}

// Profiler defines the contract for measuring the memory behaviour of a
// compiled executable.
type Profiler interface {
	// Profile runs the executable under the memory profiler and returns the
	// rendered human-readable report text. Profiler failures are not errors:
	// whatever text was captured (possibly empty) is returned as-is, and
	// downstream peak extraction degrades to zero.
	Profile(ctx context.Context, executable string) string

	// PeakBytes extracts the peak memory figure, in bytes, from a report
	// returned by Profile. A report with no recognizable peak marker yields
	// 0, never an error.
	PeakBytes(report string) int64
}
