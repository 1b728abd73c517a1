package gitremote

import (
	"context"
	"fmt"
	"path/filepath"

	"xclaunch/internal/ports"
)

// Mock serves remotes from a map keyed by folder path. Folders missing from
// the map are not repositories; an empty URL means a repository without remotes.
type Mock struct {
	URLs map[string]string

	// Cloned records clone requests as "url -> path"
	Cloned []string

	// OnClone, when set, runs for every clone (e.g. to create the folder)
	OnClone func(url, path string) error
}

// NewMock creates a new Mock
func NewMock() *Mock {
	return &Mock{URLs: make(map[string]string)}
}

func (m *Mock) RemoteURL(path string) (string, error) {
	url, ok := m.URLs[filepath.Clean(path)]
	if !ok {
		return "", fmt.Errorf("%w: %s", ports.ErrNotGitRepository, path)
	}
	if url == "" {
		return "", fmt.Errorf("%w: %s", ports.ErrNoRemote, path)
	}
	return url, nil
}

func (m *Mock) Clone(_ context.Context, url, path string) error {
	m.Cloned = append(m.Cloned, url+" -> "+path)
	if m.OnClone != nil {
		return m.OnClone(url, path)
	}
	return nil
}
