// Package cli wires configuration, logging and the wizard into the multimr
// command.
package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"multimr/internal/config"
	"multimr/internal/discovery"
	"multimr/internal/execshell"
	"multimr/internal/forge"
	"multimr/internal/git"
	"multimr/internal/logging"
	"multimr/internal/mergerequest"
	"multimr/internal/tui"
	"multimr/internal/wizard"
)

// Version is set at build time with -ldflags "-X multimr/internal/cli.Version=...".
var Version = "dev"

var ErrNotTerminal = errors.New("multimr needs an interactive terminal")

// Application is the multimr root command and the collaborators it runs with.
type Application struct {
	root *cobra.Command

	configPath string
	logOpts    logging.Options

	forge           forge.Forge
	runner          execshell.Runner
	ensureInstalled func(forge.Forge) error
	isTerminal      func() bool
	runWizard       func(*wizard.Wizard) (wizard.Outcome, error)
}

func NewApplication() *Application {
	app := &Application{
		forge:           forge.GitLab{},
		runner:          execshell.OSRunner{},
		ensureInstalled: forge.EnsureInstalled,
		isTerminal:      stdioIsTerminal,
		runWizard:       runProgram,
	}

	root := &cobra.Command{
		Use:           "multimr",
		Short:         "Open the same merge request in several repositories",
		Long:          "multimr scans the working directory for git repositories, walks you through\ntitle, description, label and reviewers, then runs glab mr create in each\nselected repository.",
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.run,
	}

	flags := root.Flags()
	flags.StringVar(&app.configPath, "config", config.FileName, "path to the configuration file")
	flags.Bool("dry-run", false, "print the glab invocations without changing anything")
	flags.String("working-dir", "", "directory to scan for repositories (overrides working_dir)")
	flags.String("assignee", "", "assign the merge requests to this user (overrides assignee)")
	flags.StringVar(&app.logOpts.File, "log-file", "", "write logs to this file (disabled when empty)")
	flags.StringVar(&app.logOpts.Level, "log-level", "info", "log level: debug, info, warn, error")
	flags.StringVar(&app.logOpts.Format, "log-format", logging.FormatJSON, "log format: json or console")

	app.root = root
	return app
}

func (a *Application) Command() *cobra.Command { return a.root }


func (a *Application) run(cmd *cobra.Command, _ []string) error {
	logger, err := logging.New(a.logOpts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	cfg := config.Load(a.configPath, cmd.Flags(), logger)

	if err := a.ensureInstalled(a.forge); err != nil {
		return err
	}
	if !a.isTerminal() {
		return ErrNotTerminal
	}

	shell, err := execshell.NewExecutor(logger, a.runner)
	if err != nil {
		return err
	}
	gitClient := git.NewClient(shell)

	ctx := cmd.Context()
	repos := discovery.Discover(ctx, cfg.WorkingDir, gitClient, logger)

	outcome, err := a.runWizard(wizard.New(cfg, repos))
	if err != nil {
		return fmt.Errorf("wizard: %w", err)
	}
	if !outcome.Completed {
		logger.Info("wizard cancelled")
		return nil
	}

	executor := mergerequest.NewExecutor(logger, shell, gitClient, a.forge, mergerequest.Options{
		DryRun:      cfg.DryRun,
		CommitRetry: mergerequest.RetryPolicy{Retries: cfg.CommitRetries},
	})
	results := executor.ExecuteAll(ctx, outcome.Request, outcome.Repositories)
	logger.Info("done", zap.Int("repositories", len(results)))

	fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(results))
	return nil
}

func stdioIsTerminal() bool {
	tty := func(f *os.File) bool {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return tty(os.Stdin) && tty(os.Stdout)
}

func runProgram(w *wizard.Wizard) (wizard.Outcome, error) {
	final, err := tea.NewProgram(tui.New(w), tea.WithAltScreen()).Run()
	if err != nil {
		return wizard.Outcome{}, err
	}
	return final.(tui.Model).Outcome(), nil
}
