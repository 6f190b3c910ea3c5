package execshell

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// OSRunner executes commands with os/exec.
type OSRunner struct{}

// Run starts cmd and waits for it. A non-zero exit is reported through
// Result.ExitCode, not as an error.
func (OSRunner) Run(ctx context.Context, cmd Command) (Result, error) {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return Result{
				Stdout:   stdout.String(),
				Stderr:   stderr.String(),
				ExitCode: exitErr.ExitCode(),
			}, nil
		}
		return Result{}, err
	}
	return Result{Stdout: stdout.String(), Stderr: stderr.String()}, nil
}
