package execshell_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"multimr/internal/execshell"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestOSRunnerUsesExplicitDir(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()

	res, err := execshell.OSRunner{}.Run(context.Background(), execshell.Command{
		Name: "sh",
		Args: []string{"-c", "pwd -P"},
		Dir:  dir,
	})
	require.NoError(t, err)
	require.Zero(t, res.ExitCode)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	require.Equal(t, want+"\n", res.Stdout)
}

func TestOSRunnerReportsExitCode(t *testing.T) {
	requireShell(t)

	res, err := execshell.OSRunner{}.Run(context.Background(), execshell.Command{
		Name: "sh",
		Args: []string{"-c", "echo oops >&2; exit 3"},
		Dir:  t.TempDir(),
	})
	require.NoError(t, err)
	require.Equal(t, 3, res.ExitCode)
	require.Equal(t, "oops\n", res.Stderr)
}

func TestOSRunnerMissingBinary(t *testing.T) {
	_, err := execshell.OSRunner{}.Run(context.Background(), execshell.Command{
		Name: "multimr-definitely-not-a-binary",
		Dir:  t.TempDir(),
	})
	require.Error(t, err)
}
