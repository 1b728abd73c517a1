package application

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"xclaunch/internal/ports"
)

// FolderMode selects how CreateOrImport treats an existing folder
type FolderMode int

const (
	// FolderCreate requires the folder to be new
	FolderCreate FolderMode = iota
	// FolderImport adopts an existing folder unchanged
	FolderImport
)

// FolderSync keeps an entity's folder directly under its parent's folder
type FolderSync struct {
	fs  ports.FileSystem
	log *zap.Logger
}

// NewFolderSync creates a new FolderSync
func NewFolderSync(fs ports.FileSystem, log *zap.Logger) *FolderSync {
	return &FolderSync{fs: fs, log: log}
}

// ResolveFolder returns the absolute, cleaned path of an existing directory
func (s *FolderSync) ResolveFolder(path string) (string, error) {
	if err := ValidateRequired("folderPath", path); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	if !s.fs.IsDir(abs) {
		return "", &ValidationError{
			Field:   "folderPath",
			Message: fmt.Sprintf("no folder at %s", abs),
		}
	}

	return abs, nil
}

// Destination reports where folder ends up when placed under targetParent.
// needsMove is false when folder already sits there. A same-named folder at
// the destination is a collision, whatever the metadata says.
func (s *FolderSync) Destination(kind EntityKind, folder, targetParent string) (dest string, needsMove bool, err error) {
	folder = filepath.Clean(folder)
	targetParent = filepath.Clean(targetParent)

	if filepath.Dir(folder) == targetParent {
		return folder, false, nil
	}

	dest = filepath.Join(targetParent, filepath.Base(folder))
	if s.fs.Exists(dest) {
		return "", false, &FolderCollisionError{Kind: kind, Path: dest, Importing: true}
	}

	return dest, true, nil
}

// MoveIfNecessary moves folder (with its contents) to become a direct child
// of targetParent. It is a no-op when folder is already there.
func (s *FolderSync) MoveIfNecessary(kind EntityKind, folder, targetParent string) (string, error) {
	dest, needsMove, err := s.Destination(kind, folder, targetParent)
	if err != nil || !needsMove {
		return dest, err
	}

	if !s.fs.IsDir(targetParent) {
		return "", fmt.Errorf("%w: %s", ErrFolderMissing, targetParent)
	}

	if err := s.fs.Rename(folder, dest); err != nil {
		return "", fmt.Errorf("failed to move %s: %w", folder, err)
	}

	s.log.Debug("folder moved", zap.String("from", folder), zap.String("to", dest))
	return dest, nil
}

// Restore moves a folder back to where it was before MoveIfNecessary
func (s *FolderSync) Restore(current, original string) error {
	if filepath.Clean(current) == filepath.Clean(original) {
		return nil
	}
	if err := s.fs.Rename(current, original); err != nil {
		return fmt.Errorf("failed to move %s back to %s: %w", current, original, err)
	}
	s.log.Debug("folder restored", zap.String("path", original))
	return nil
}

// Available checks that parent has no subfolder called name and returns
// the path the new folder would get
func (s *FolderSync) Available(kind EntityKind, name, parent string) (string, error) {
	path := filepath.Join(parent, name)
	if s.fs.Exists(path) {
		return "", &FolderCollisionError{Kind: kind, Path: path}
	}
	return path, nil
}

// CreateOrImport returns the folder called name under parent. When importing,
// an existing folder is returned unchanged; when creating, an existing folder
// is a FolderNameTaken failure.
func (s *FolderSync) CreateOrImport(kind EntityKind, name, parent string, mode FolderMode) (string, error) {
	path := filepath.Join(parent, name)

	if mode == FolderImport {
		if !s.fs.IsDir(path) {
			return "", &ValidationError{
				Field:   "folderPath",
				Message: fmt.Sprintf("no folder named %s under %s", name, parent),
			}
		}
		return path, nil
	}

	if _, err := s.Available(kind, name, parent); err != nil {
		return "", err
	}

	if err := s.fs.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}

	s.log.Debug("folder created", zap.String("path", path))
	return path, nil
}

// Remove deletes a folder and everything in it
func (s *FolderSync) Remove(path string) error {
	if err := s.fs.RemoveAll(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	s.log.Debug("folder removed", zap.String("path", path))
	return nil
}
