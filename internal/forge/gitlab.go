package forge

import "multimr/internal/execshell"

// GitLab drives glab.
type GitLab struct{}

func (GitLab) Kind() string   { return "gitlab" }
func (GitLab) Binary() string { return "glab" }

func (GitLab) InstallHint() string {
	return "Install it from https://gitlab.com/gitlab-org/cli"
}

// CreateCommand returns `glab mr create` for the repository at dir.
func (g GitLab) CreateCommand(dir string, opts CreateOpts) execshell.Command {
	args := []string{"mr", "create"}
	if opts.Assignee != "" {
		args = append(args, "--assignee", opts.Assignee)
	}
	for _, r := range opts.Reviewers {
		args = append(args, "--reviewer", r)
	}
	for _, l := range opts.Labels {
		args = append(args, "--label", l)
	}
	args = append(args,
		"--title", opts.Title,
		"--description", opts.Description,
	)
	if opts.Push {
		args = append(args, "--push")
	} else {
		args = append(args, "--yes") // non-interactive
	}
	return execshell.Command{Name: g.Binary(), Args: args, Dir: dir}
}
