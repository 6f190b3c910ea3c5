package git

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"multimr/internal/execshell"
)

// DefaultBranches are the branch names a merge request is never opened from
// directly; a new branch is cut from them first.
var DefaultBranches = []string{"main", "master"}

// IsDefaultBranch reports whether branch is one of DefaultBranches.
func IsDefaultBranch(branch string) bool {
	return slices.Contains(DefaultBranches, branch)
}

// Client runs git in an explicit repository directory.
type Client struct {
	exec *execshell.Executor
}

func NewClient(exec *execshell.Executor) *Client {
	return &Client{exec: exec}
}

func (c *Client) run(ctx context.Context, dir string, args ...string) (string, error) {
	res, err := c.exec.Execute(ctx, execshell.Command{Name: "git", Args: args, Dir: dir})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

// IsWorkTree reports whether dir is inside a git working tree.
func (c *Client) IsWorkTree(ctx context.Context, dir string) bool {
	out, err := c.run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// CurrentBranch returns the checked-out branch, or "" for a detached HEAD.
func (c *Client) CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := c.run(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", fmt.Errorf("current branch: %w", err)
	}
	return out, nil
}

// SwitchCreate creates branch from HEAD and checks it out.
func (c *Client) SwitchCreate(ctx context.Context, dir, branch string) error {
	_, err := c.run(ctx, dir, "switch", "-c", branch)
	return err
}

// AddAll stages every change under dir.
func (c *Client) AddAll(ctx context.Context, dir string) error {
	_, err := c.run(ctx, dir, "add", ".")
	return err
}

// Commit commits tracked changes with message.
func (c *Client) Commit(ctx context.Context, dir, message string) error {
	_, err := c.run(ctx, dir, "commit", "-am", message)
	return err
}
