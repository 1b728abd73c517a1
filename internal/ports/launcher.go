package ports

import (
	"context"
	"errors"
)

var (
	// ErrNotGitRepository is returned when a folder is not a git repository
	ErrNotGitRepository = errors.New("missing git repository")

	// ErrNoRemote is returned when a repository has no remote configured
	ErrNoRemote = errors.New("no remote repository")
)

// Shell runs external commands, streaming their output to the terminal
type Shell interface {
	Run(ctx context.Context, name string, args ...string) error
}

// GitRemotes discovers and clones git remotes
type GitRemotes interface {
	// RemoteURL returns the fetch URL of the repository at path, preferring origin
	RemoteURL(path string) (string, error)

	// Clone clones url into path
	Clone(ctx context.Context, url, path string) error
}

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}
