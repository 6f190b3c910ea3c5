package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"
)

const maxOutputWidth = 200

var (
	ErrLoggerNotConfigured = errors.New("execshell: logger not configured")
	ErrRunnerNotConfigured = errors.New("execshell: runner not configured")
)

// CommandFailedError reports a process that exited non-zero.
type CommandFailedError struct {
	Command  Command
	ExitCode int
	Output   string // trimmed stderr, or stdout when stderr is empty
}

func (e CommandFailedError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s: exit status %d", label(e.Command), e.ExitCode)
	}
	return fmt.Sprintf("%s: %s", label(e.Command), e.Output)
}

// CommandExecutionError reports a process that could not be started.
type CommandExecutionError struct {
	Command Command
	Cause   error
}

func (e CommandExecutionError) Error() string {
	return fmt.Sprintf("%s: %v", label(e.Command), e.Cause)
}

func (e CommandExecutionError) Unwrap() error { return e.Cause }

// Executor wraps a Runner with logging and typed errors.
type Executor struct {
	logger *zap.Logger
	runner Runner
}

// NewExecutor fails when either collaborator is nil.
func NewExecutor(logger *zap.Logger, runner Runner) (*Executor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if runner == nil {
		return nil, ErrRunnerNotConfigured
	}
	return &Executor{logger: logger, runner: runner}, nil
}

// Execute runs cmd. The returned Result is empty whenever err is non-nil.
func (e *Executor) Execute(ctx context.Context, cmd Command) (Result, error) {
	fields := []zap.Field{
		zap.String("command", cmd.Name),
		zap.Strings("args", cmd.Args),
		zap.String("dir", cmd.Dir),
	}
	e.logger.Debug("exec", fields...)

	res, err := e.runner.Run(ctx, cmd)
	if err != nil {
		e.logger.Warn("exec failed to start", append(fields, zap.Error(err))...)
		return Result{}, CommandExecutionError{Command: cmd, Cause: err}
	}
	if res.ExitCode != 0 {
		e.logger.Warn("exec exited non-zero",
			append(fields, zap.Int("exit_code", res.ExitCode), zap.String("stderr", res.Stderr))...)
		return Result{}, CommandFailedError{
			Command:  cmd,
			ExitCode: res.ExitCode,
			Output:   trimOutput(res),
		}
	}
	e.logger.Debug("exec done", append(fields, zap.Int("exit_code", 0))...)
	return res, nil
}

// label names the command by program and first argument, e.g. "git commit".
func label(cmd Command) string {
	if len(cmd.Args) == 0 {
		return cmd.Name
	}
	return cmd.Name + " " + cmd.Args[0]
}

func trimOutput(res Result) string {
	s := strings.TrimSpace(res.Stderr)
	if s == "" {
		s = strings.TrimSpace(res.Stdout)
	}
	return runewidth.Truncate(s, maxOutputWidth, "…")
}
