package ports

import "io/fs"

// FileSystem provides an abstraction over file operations for testability
type FileSystem interface {
	// Path operations
	Stat(path string) (fs.FileInfo, error)
	Exists(path string) bool
	IsDir(path string) bool

	// Directory operations
	ReadDir(path string) ([]fs.DirEntry, error)
	Mkdir(path string, perm fs.FileMode) error
	MkdirAll(path string, perm fs.FileMode) error

	// Rename moves a file or directory, with its contents
	Rename(oldPath, newPath string) error
	RemoveAll(path string) error
}
