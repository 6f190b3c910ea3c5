package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"multimr/internal/config"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func canonical(t *testing.T, dir string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	return resolved
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Bool("dry-run", false, "")
	fs.String("working-dir", "", "")
	fs.String("assignee", "", "")
	return fs
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	work := filepath.Join(dir, "src")
	require.NoError(t, os.MkdirAll(work, 0o755))

	path := writeConfig(t, dir, `
working_dir = "`+filepath.ToSlash(work)+`"
reviewers = ["alice", "bob", "alice", " "]
assignee = "carol"
commit_retries = 2

[labels]
bug = "Something is broken"
Feature = "New functionality"
`)

	cfg := config.Load(path, testFlags(), zap.NewNop())

	require.Equal(t, canonical(t, work), cfg.WorkingDir)
	require.Equal(t, []string{"alice", "bob"}, cfg.Reviewers)
	require.Equal(t, "carol", cfg.Assignee)
	require.Equal(t, 2, cfg.CommitRetries)
	require.False(t, cfg.DryRun)
	require.Equal(t, map[string]string{
		"bug":     "Something is broken",
		"Feature": "New functionality",
	}, cfg.Labels)
	require.Equal(t, []string{"Feature", "bug"}, cfg.LabelNames())
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	cfg := config.Load(filepath.Join(t.TempDir(), config.FileName), nil, zap.New(core))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, canonical(t, cwd), cfg.WorkingDir)
	require.Empty(t, cfg.Reviewers)
	require.Empty(t, cfg.Labels)
	require.Empty(t, cfg.Assignee)
	require.Equal(t, 1, cfg.CommitRetries)
	require.Equal(t, 1, logs.FilterMessage("config not loaded, using defaults").Len())
}

func TestLoadMalformedFileYieldsDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "reviewers = [\"alice\"\n[labels\n")

	cfg := config.Load(path, nil, zap.NewNop())
	require.Empty(t, cfg.Reviewers)
	require.Empty(t, cfg.Labels)
	require.Empty(t, cfg.LabelNames())
}

func TestLoadFlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `assignee = "carol"`)

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--dry-run", "--assignee", "dave", "--working-dir", dir}))

	cfg := config.Load(path, fs, zap.NewNop())
	require.True(t, cfg.DryRun)
	require.Equal(t, "dave", cfg.Assignee)
	require.Equal(t, canonical(t, dir), cfg.WorkingDir)
}

func TestLoadEnvironment(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `assignee = "carol"`)
	t.Setenv("MULTIMR_ASSIGNEE", "erin")
	t.Setenv("MULTIMR_REVIEWERS", "frank,grace")

	cfg := config.Load(path, nil, zap.NewNop())
	require.Equal(t, "erin", cfg.Assignee)
	require.Equal(t, []string{"frank", "grace"}, cfg.Reviewers)
}

func TestCanonicalize(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(t.TempDir(), "link")
	if err := os.Symlink(dir, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}
	require.Equal(t, canonical(t, dir), config.Canonicalize(link))

	missing := filepath.Join(dir, "does", "not", "exist")
	require.Equal(t, missing, config.Canonicalize(missing+"/./"))
}

func TestLoadMistypedValueKeepsOtherSources(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
reviewers = ["alice"]
assignee = "carol"
commit_retries = "twice"

[labels]
Bug = "broken"
`)
	t.Setenv("MULTIMR_DRY_RUN", "true")

	core, logs := observer.New(zap.WarnLevel)
	cfg := config.Load(path, testFlags(), zap.New(core))

	require.True(t, cfg.DryRun)
	require.Equal(t, []string{"alice"}, cfg.Reviewers)
	require.Equal(t, "carol", cfg.Assignee)
	require.Equal(t, map[string]string{"Bug": "broken"}, cfg.Labels)
	require.Equal(t, 1, cfg.CommitRetries)
	require.Equal(t, 1, logs.FilterMessage("config value not decodable, using default").Len())
}
