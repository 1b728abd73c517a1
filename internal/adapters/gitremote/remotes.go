package gitremote

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/go-git/go-git/v5"
	"go.uber.org/zap"

	"xclaunch/internal/ports"
)

// Remotes implements ports.GitRemotes with go-git
type Remotes struct {
	log *zap.Logger
}

// Ensure Remotes implements GitRemotes
var _ ports.GitRemotes = (*Remotes)(nil)

// NewRemotes creates a new Remotes
func NewRemotes(log *zap.Logger) *Remotes {
	return &Remotes{log: log}
}

// RemoteURL returns the first URL of the origin remote, or of the first
// remote by name when there is no origin
func (r *Remotes) RemoteURL(path string) (string, error) {
	repo, err := git.PlainOpen(path)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", fmt.Errorf("%w: %s", ports.ErrNotGitRepository, path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to open repository %s: %w", path, err)
	}

	remote, err := repo.Remote(git.DefaultRemoteName)
	if err == nil {
		if urls := remote.Config().URLs; len(urls) > 0 {
			return urls[0], nil
		}
	}

	remotes, err := repo.Remotes()
	if err != nil {
		return "", fmt.Errorf("failed to list remotes of %s: %w", path, err)
	}
	sort.Slice(remotes, func(i, j int) bool {
		return remotes[i].Config().Name < remotes[j].Config().Name
	})
	for _, rm := range remotes {
		if urls := rm.Config().URLs; len(urls) > 0 {
			return urls[0], nil
		}
	}

	return "", fmt.Errorf("%w: %s", ports.ErrNoRemote, path)
}

// Clone clones url into path, which must not exist yet
func (r *Remotes) Clone(ctx context.Context, url, path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("cannot clone into %s: %w", path, os.ErrExist)
	}

	r.log.Info("cloning repository", zap.String("url", url), zap.String("path", path))
	_, err := git.PlainCloneContext(ctx, path, false, &git.CloneOptions{
		URL:      url,
		Progress: os.Stderr,
	})
	if err != nil {
		_ = os.RemoveAll(path)
		return fmt.Errorf("failed to clone %s: %w", url, err)
	}
	return nil
}
