package forge

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"multimr/internal/execshell"
)

// ErrCLINotFound is returned by EnsureInstalled when the hosting CLI is not on PATH.
var ErrCLINotFound = errors.New("hosting CLI not found")

// Forge builds the hosting-CLI invocation that opens a merge request.
type Forge interface {
	Kind() string   // "gitlab"
	Binary() string // executable looked up on PATH
	InstallHint() string
	CreateCommand(dir string, opts CreateOpts) execshell.Command
}

// CreateOpts are the parameters for creating an MR.
type CreateOpts struct {
	Title       string
	Description string
	Reviewers   []string
	Labels      []string
	Assignee    string // omitted when ""
	// Push asks the CLI to push the freshly created source branch.
	// When false the CLI runs non-interactively against the existing branch.
	Push bool
}

var lookPath = exec.LookPath

// EnsureInstalled checks that the forge's CLI can be executed.
func EnsureInstalled(f Forge) error {
	if _, err := lookPath(f.Binary()); err != nil {
		return fmt.Errorf("%w: %s is not installed. %s", ErrCLINotFound, f.Binary(), f.InstallHint())
	}
	return nil
}

// CreatedURL picks the web URL out of the CLI's output, or "" if none is printed.
func CreatedURL(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, "https://") || strings.HasPrefix(line, "http://") {
			return line
		}
	}
	return ""
}
