// Package discovery lists the git repositories directly under a directory.
package discovery

import (
	"context"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"multimr/internal/model"
)

// Inspector answers the two questions discovery asks of each directory.
type Inspector interface {
	IsWorkTree(ctx context.Context, dir string) bool
	CurrentBranch(ctx context.Context, dir string) (string, error)
}

// Discover returns the immediate subdirectories of root that are git
// working trees, ordered by name. Directories that are not repositories, or
// whose branch cannot be read, are skipped. An unreadable root yields an
// empty list.
func Discover(ctx context.Context, root string, inspector Inspector, logger *zap.Logger) []model.Repository {
	entries, err := os.ReadDir(root)
	if err != nil {
		logger.Warn("working dir not readable", zap.String("root", root), zap.Error(err))
		return nil
	}

	var repos []model.Repository
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		// Stat follows symlinks so linked checkouts are listed too.
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			continue
		}
		if !inspector.IsWorkTree(ctx, path) {
			logger.Debug("skip: not a work tree", zap.String("dir", path))
			continue
		}
		branch, err := inspector.CurrentBranch(ctx, path)
		if err != nil {
			logger.Debug("skip: branch lookup failed", zap.String("dir", path), zap.Error(err))
			continue
		}
		repos = append(repos, model.Repository{
			Name:   entry.Name(),
			Path:   path,
			Branch: branch,
		})
	}
	logger.Info("discovered repositories", zap.String("root", root), zap.Int("count", len(repos)))
	return repos
}
