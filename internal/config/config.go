// Package config loads multimr.toml.
package config

import (
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	FileName  = "multimr.toml"
	EnvPrefix = "MULTIMR"
)

// Config is the immutable run configuration.
type Config struct {
	WorkingDir    string            `mapstructure:"working_dir"`
	Reviewers     []string          `mapstructure:"reviewers"`
	Labels        map[string]string `mapstructure:"labels"` // name → description
	Assignee      string            `mapstructure:"assignee"`
	DryRun        bool              `mapstructure:"dry_run"`
	CommitRetries int               `mapstructure:"commit_retries"`
}

// LabelNames returns the label keys in ascending order. Label indices used by
// the wizard refer to this order.
func (c Config) LabelNames() []string {
	names := make([]string, 0, len(c.Labels))
	for name := range c.Labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"dry-run":     "dry_run",
	"working-dir": "working_dir",
	"assignee":    "assignee",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("working_dir", ".")
	v.SetDefault("reviewers", []string{})
	v.SetDefault("labels", map[string]string{})
	v.SetDefault("assignee", "")
	v.SetDefault("dry_run", false)
	v.SetDefault("commit_retries", 1)
}

// Load reads path (FileName when empty), then environment variables with
// EnvPrefix, then any flags in flags that were set. A missing or malformed
// file yields the defaults; Load never fails.
func Load(path string, flags *pflag.FlagSet, logger *zap.Logger) Config {
	if path == "" {
		path = FileName
	}

	v := viper.New()
	setDefaults(v)
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for flag, key := range flagKeys {
			if f := flags.Lookup(flag); f != nil {
				_ = v.BindPFlag(key, f)
			}
		}
	}

	loaded := true
	if err := v.ReadInConfig(); err != nil {
		loaded = false
		logger.Warn("config not loaded, using defaults", zap.String("path", path), zap.Error(err))
	}

	cfg := Config{WorkingDir: ".", CommitRetries: 1}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToSliceHookFunc(","),
	))
	// Keys are decoded one at a time so a single mistyped value only falls
	// back to its own default.
	decodeKey(v, "working_dir", &cfg.WorkingDir, hook, logger)
	decodeKey(v, "reviewers", &cfg.Reviewers, hook, logger)
	decodeKey(v, "labels", &cfg.Labels, hook, logger)
	decodeKey(v, "assignee", &cfg.Assignee, hook, logger)
	decodeKey(v, "dry_run", &cfg.DryRun, hook, logger)
	decodeKey(v, "commit_retries", &cfg.CommitRetries, hook, logger)

	cfg.Reviewers = uniqueNonBlank(cfg.Reviewers)
	if loaded {
		if labels, err := readLabels(path); err == nil {
			cfg.Labels = labels
		}
	}
	if cfg.Labels == nil {
		cfg.Labels = map[string]string{}
	}
	cfg.Assignee = strings.TrimSpace(cfg.Assignee)
	cfg.WorkingDir = Canonicalize(cfg.WorkingDir)

	logger.Debug("config loaded",
		zap.String("working_dir", cfg.WorkingDir),
		zap.Strings("reviewers", cfg.Reviewers),
		zap.Strings("labels", cfg.LabelNames()),
		zap.String("assignee", cfg.Assignee),
		zap.Bool("dry_run", cfg.DryRun),
	)
	return cfg
}

// readLabels decodes the [labels] table directly, since viper folds keys to
// lower case and GitLab label names are case sensitive.
func readLabels(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Labels map[string]string `toml:"labels"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Labels, nil
}

// decodeKey stores key in dst, leaving dst untouched when the value cannot
// be decoded.
func decodeKey[T any](v *viper.Viper, key string, dst *T, hook viper.DecoderConfigOption, logger *zap.Logger) {
	var val T
	if err := v.UnmarshalKey(key, &val, hook); err != nil {
		logger.Warn("config value not decodable, using default", zap.String("key", key), zap.Error(err))
		return
	}
	*dst = val
}

// Canonicalize returns dir as an absolute path with symlinks resolved,
// falling back to the cleaned absolute path when it cannot be resolved.
func Canonicalize(dir string) string {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return filepath.Clean(dir)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

func uniqueNonBlank(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" || slices.Contains(out, s) {
			continue
		}
		out = append(out, s)
	}
	return out
}
