package application

import (
	"errors"
	"fmt"

	"xclaunch/internal/ports"
)

// Sentinel errors for every failure kind of the hierarchy engine
var (
	ErrNameTaken                = errors.New("name taken")
	ErrShortcutTaken            = errors.New("shortcut taken")
	ErrPathTaken                = errors.New("path taken")
	ErrFolderNameTaken          = errors.New("folder name taken")
	ErrGroupFolderAlreadyExists = errors.New("group folder already exists")
	ErrMissingCategory          = errors.New("missing category")
	ErrMissingGroup             = errors.New("missing group")
	ErrMissingProject           = errors.New("missing project")
	ErrMissingProjectLink       = errors.New("missing project link")
	ErrNoProjectInFolder        = errors.New("no project in folder")
	ErrInvalidInput             = errors.New("invalid input")
	ErrFolderMissing            = errors.New("folder missing")

	ErrNoRemoteRepository   = ports.ErrNoRemote
	ErrMissingGitRepository = ports.ErrNotGitRepository
)

// EntityKind names the level of the hierarchy an error refers to
type EntityKind string

const (
	KindCategory EntityKind = "category"
	KindGroup    EntityKind = "group"
	KindProject  EntityKind = "project"
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NameTakenError reports a case-insensitive name collision within one entity kind
type NameTakenError struct {
	Kind EntityKind
	Name string
}

func (e *NameTakenError) Error() string {
	return fmt.Sprintf("%s name %q is already taken", e.Kind, e.Name)
}

func (e *NameTakenError) Is(target error) bool {
	return target == ErrNameTaken
}

// ShortcutTakenError reports a collision in the shared group/project shortcut pool
type ShortcutTakenError struct {
	Shortcut string
}

func (e *ShortcutTakenError) Error() string {
	return fmt.Sprintf("shortcut %q is already taken", e.Shortcut)
}

func (e *ShortcutTakenError) Is(target error) bool {
	return target == ErrShortcutTaken
}

// PathTakenError reports a category path that is already registered
type PathTakenError struct {
	Path string
}

func (e *PathTakenError) Error() string {
	return fmt.Sprintf("a category is already registered at %s", e.Path)
}

func (e *PathTakenError) Is(target error) bool {
	return target == ErrPathTaken
}

// FolderCollisionError reports a folder that already exists on disk,
// independently of any metadata collision
type FolderCollisionError struct {
	Kind      EntityKind
	Path      string
	Importing bool
}

func (e *FolderCollisionError) Error() string {
	if e.Kind == KindGroup && e.Importing {
		return fmt.Sprintf("group folder already exists: %s", e.Path)
	}
	return fmt.Sprintf("folder already exists: %s", e.Path)
}

func (e *FolderCollisionError) Is(target error) bool {
	if target == ErrFolderNameTaken {
		return true
	}
	return target == ErrGroupFolderAlreadyExists && e.Kind == KindGroup && e.Importing
}

func missing(kind error, identifier string) error {
	if identifier == "" {
		return kind
	}
	return fmt.Errorf("%w: %s", kind, identifier)
}
