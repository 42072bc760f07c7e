package project

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/wevm-cdk/errors"
	"github.com/wippyai/wevm-cdk/wat"
)

// Wat2Wasm assembles a text module in-process. An empty out writes the
// binary into the working directory, named after the input with a .wasm
// extension. It returns the written path.
func (t *Toolchain) Wat2Wasm(ctx context.Context, in, out string) (string, error) {
	if out == "" {
		out = strings.TrimSuffix(filepath.Base(in), ".wat") + ".wasm"
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	bin, err := wat.CompileFile(in)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(out, bin, 0o644); err != nil {
		return "", errors.IO(errors.PhaseBuild, out, err)
	}
	Logger().Debug("assembled text module", zap.String("in", in), zap.String("out", out), zap.Int("bytes", len(bin)))
	return out, nil
}

// Wasm2Wat disassembles a binary module with wabt. With an empty out the
// text is returned instead of written.
func (t *Toolchain) Wasm2Wat(ctx context.Context, in, out string) ([]byte, error) {
	args := []string{in}
	if out != "" {
		args = append(args, "-o", out)
	}
	return t.Runner.Run(ctx, Command{Name: t.Tools.Wasm2Wat, Args: args})
}
