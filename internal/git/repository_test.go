package git_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"multimr/internal/execshell"
	"multimr/internal/git"
)

type scriptedRunner struct {
	results  map[string]execshell.Result
	commands []execshell.Command
}

func (r *scriptedRunner) Run(_ context.Context, cmd execshell.Command) (execshell.Result, error) {
	r.commands = append(r.commands, cmd)
	return r.results[cmd.Args[0]], nil
}

func newClient(t *testing.T, results map[string]execshell.Result) (*git.Client, *scriptedRunner) {
	t.Helper()
	runner := &scriptedRunner{results: results}
	e, err := execshell.NewExecutor(zap.NewNop(), runner)
	require.NoError(t, err)
	return git.NewClient(e), runner
}

func TestIsDefaultBranch(t *testing.T) {
	require.True(t, git.IsDefaultBranch("main"))
	require.True(t, git.IsDefaultBranch("master"))
	require.False(t, git.IsDefaultBranch("feature-x"))
	require.False(t, git.IsDefaultBranch(""))
}

func TestIsWorkTree(t *testing.T) {
	cases := []struct {
		name   string
		result execshell.Result
		want   bool
	}{
		{"inside", execshell.Result{Stdout: "true\n"}, true},
		{"bare repository", execshell.Result{Stdout: "false\n"}, false},
		{"not a repository", execshell.Result{Stderr: "fatal: not a git repository", ExitCode: 128}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, runner := newClient(t, map[string]execshell.Result{"rev-parse": tc.result})
			require.Equal(t, tc.want, c.IsWorkTree(context.Background(), "/src/a"))
			require.Equal(t, "/src/a", runner.commands[0].Dir)
			require.Equal(t, []string{"rev-parse", "--is-inside-work-tree"}, runner.commands[0].Args)
		})
	}
}

func TestCurrentBranch(t *testing.T) {
	c, _ := newClient(t, map[string]execshell.Result{"branch": {Stdout: "feature-x\n"}})
	branch, err := c.CurrentBranch(context.Background(), "/src/a")
	require.NoError(t, err)
	require.Equal(t, "feature-x", branch)

	c, _ = newClient(t, map[string]execshell.Result{"branch": {ExitCode: 128}})
	_, err = c.CurrentBranch(context.Background(), "/src/a")
	require.Error(t, err)
}

func TestMutationsUseRepositoryDir(t *testing.T) {
	c, runner := newClient(t, nil)
	ctx := context.Background()

	require.NoError(t, c.SwitchCreate(ctx, "/src/a", "Fix-bug"))
	require.NoError(t, c.AddAll(ctx, "/src/a"))
	require.NoError(t, c.Commit(ctx, "/src/a", "Fix bug"))

	require.Len(t, runner.commands, 3)
	require.Equal(t, []string{"switch", "-c", "Fix-bug"}, runner.commands[0].Args)
	require.Equal(t, []string{"add", "."}, runner.commands[1].Args)
	require.Equal(t, []string{"commit", "-am", "Fix bug"}, runner.commands[2].Args)
	for _, cmd := range runner.commands {
		require.Equal(t, "git", cmd.Name)
		require.Equal(t, "/src/a", cmd.Dir)
	}
}
