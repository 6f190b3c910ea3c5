// Package mergerequest opens one merge request per selected repository.
package mergerequest

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"multimr/internal/execshell"
	"multimr/internal/forge"
	"multimr/internal/git"
	"multimr/internal/model"
)

var ErrEmptyBranchName = errors.New("title is empty, cannot derive a branch name")

// Git is the subset of git operations the executor performs.
type Git interface {
	CurrentBranch(ctx context.Context, dir string) (string, error)
	SwitchCreate(ctx context.Context, dir, branch string) error
	AddAll(ctx context.Context, dir string) error
	Commit(ctx context.Context, dir, message string) error
}

// Result is the outcome for a single repository.
type Result struct {
	Repository model.Repository
	Branch     string // source branch of the MR
	NewBranch  bool   // Branch is (or, in a dry run, would be) cut from a default branch
	Invocation execshell.Command
	DryRun     bool
	URL        string // web URL printed by the hosting CLI, if any
	Err        error
}

// Options controls side effects and commit retries.
type Options struct {
	DryRun      bool
	CommitRetry RetryPolicy
}

// Executor runs the git and hosting-CLI steps for each repository.
type Executor struct {
	logger *zap.Logger
	shell  *execshell.Executor
	git    Git
	forge  forge.Forge
	opts   Options
}

// NewExecutor returns an Executor that runs hosting-CLI commands through shell.
func NewExecutor(logger *zap.Logger, shell *execshell.Executor, g Git, f forge.Forge, opts Options) *Executor {
	return &Executor{logger: logger, shell: shell, git: g, forge: f, opts: opts}
}

// BranchName derives the new source branch from an MR title.
func BranchName(title string) string {
	return strings.ReplaceAll(title, " ", "-")
}

// CreateOptions maps a request onto hosting-CLI parameters.
func CreateOptions(req model.MergeRequest, push bool) forge.CreateOpts {
	return forge.CreateOpts{
		Title:       req.Title,
		Description: req.Description,
		Reviewers:   req.Reviewers,
		Labels:      req.Labels,
		Assignee:    req.Assignee,
		Push:        push,
	}
}

// ExecuteAll processes repos one after another. A failure in one repository
// is recorded in its Result and does not stop the rest.
func (e *Executor) ExecuteAll(ctx context.Context, req model.MergeRequest, repos []model.Repository) []Result {
	results := make([]Result, 0, len(repos))
	for _, repo := range repos {
		results = append(results, e.Execute(ctx, req, repo))
	}
	return results
}

// Execute opens the merge request for repo. On a default branch a new branch
// is created and all changes committed first. In a dry run nothing is
// mutated and only the invocation is returned.
func (e *Executor) Execute(ctx context.Context, req model.MergeRequest, repo model.Repository) Result {
	log := e.logger.With(zap.String("repo", repo.Name), zap.Bool("dry_run", e.opts.DryRun))
	res := Result{Repository: repo, DryRun: e.opts.DryRun}

	branch, err := e.git.CurrentBranch(ctx, repo.Path)
	if err != nil {
		log.Warn("branch re-query failed, using discovered branch",
			zap.String("branch", repo.Branch), zap.Error(err))
		branch = repo.Branch
	}
	res.Branch = branch

	if git.IsDefaultBranch(branch) {
		name := BranchName(req.Title)
		if name == "" {
			res.Err = ErrEmptyBranchName
			log.Error("merge request failed", zap.Error(res.Err))
			return res
		}
		res.Branch = name
		res.NewBranch = true
		if !e.opts.DryRun {
			if err := e.commitToNewBranch(ctx, repo.Path, name, req.Title); err != nil {
				res.Err = err
				log.Error("merge request failed", zap.Error(err))
				return res
			}
		}
	}

	res.Invocation = e.forge.CreateCommand(repo.Path, CreateOptions(req, res.NewBranch))
	if e.opts.DryRun {
		log.Info("dry run", zap.String("invocation", res.Invocation.Render()))
		return res
	}

	out, err := e.shell.Execute(ctx, res.Invocation)
	if err != nil {
		res.Err = fmt.Errorf("create merge request: %w", err)
		log.Error("merge request failed", zap.Error(err))
		return res
	}
	res.URL = forge.CreatedURL(out.Stdout)
	log.Info("merge request created", zap.String("branch", res.Branch), zap.String("url", res.URL))
	return res
}

func (e *Executor) commitToNewBranch(ctx context.Context, dir, branch, message string) error {
	if err := e.git.SwitchCreate(ctx, dir, branch); err != nil {
		return fmt.Errorf("create branch %s: %w", branch, err)
	}
	err := e.opts.CommitRetry.Do(ctx, func(ctx context.Context) error {
		if err := e.git.AddAll(ctx, dir); err != nil {
			return err
		}
		return e.git.Commit(ctx, dir, message)
	})
	if err != nil {
		return fmt.Errorf("commit changes: %w", err)
	}
	return nil
}
