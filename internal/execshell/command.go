// Package execshell runs external programs with an explicit working directory
// and logs every invocation.
package execshell

import (
	"context"
	"strconv"
	"strings"
)

// Command describes a single process invocation.
type Command struct {
	Name string
	Args []string
	Dir  string // working directory; never inherited from the process
}

// Result holds the captured output of a finished process.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner starts processes. OSRunner is the production implementation.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Result, error)
}

// Render formats the command the way a user would type it in a shell.
func (c Command) Render() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quote(c.Name))
	for _, a := range c.Args {
		parts = append(parts, quote(a))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"'\\$`") {
		return strconv.Quote(s)
	}
	return s
}
