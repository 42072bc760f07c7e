package project

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/wevm-cdk/errors"
)

// Command is one external tool invocation.
type Command struct {
	Dir  string
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner executes external tools and returns their standard output.
type Runner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner runs commands as child processes.
type ExecRunner struct{}

// Run starts cmd and waits for it. A failing command is reported with its
// standard error output.
func (ExecRunner) Run(ctx context.Context, cmd Command) ([]byte, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	Logger().Debug("running", zap.Stringer("command", cmd), zap.String("dir", cmd.Dir))

	if err := c.Run(); err != nil {
		e := errors.External(errors.PhaseBuild, cmd.Name, err)
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			e.Detail += ": " + msg
		}
		return nil, e
	}
	return stdout.Bytes(), nil
}
