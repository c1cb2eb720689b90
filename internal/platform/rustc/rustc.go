package rustc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"

	"github.com/dontdude/massbench/internal/domain"
)

// Invoker wraps the external rustc compiler.
type Invoker struct {
	bin string
}

// Check if Invoker implements domain.Compiler
var _ domain.Compiler = (*Invoker)(nil)

// New returns an Invoker that resolves rustc from PATH.
func New() *Invoker {
	return &Invoker{bin: "rustc"}
}

// NewWithBinary returns an Invoker using the given compiler binary.
// Tests use this to substitute a stub for the real toolchain.
func NewWithBinary(bin string) *Invoker {
	return &Invoker{bin: bin}
}

// Compile builds srcPath into an optimized executable at outPath.
// A non-zero compiler exit becomes a failed CompileResult carrying the
// captured stderr; only a compiler that cannot be launched at all is an error.
func (i *Invoker) Compile(ctx context.Context, srcPath, outPath string) (domain.CompileResult, error) {
	cmd := exec.CommandContext(ctx, i.bin, "-O", srcPath, "-o", outPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Invoking compiler", "bin", i.bin, "src", srcPath, "out", outPath)
	err := cmd.Run()
	if err == nil {
		return domain.CompileResult{OK: true, Executable: outPath}, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The compiler ran and rejected the source.
		return domain.CompileResult{Diagnostics: stderr.String()}, nil
	}

	return domain.CompileResult{}, fmt.Errorf("failed to launch %s: %w", i.bin, err)
}
