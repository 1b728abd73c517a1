package application

import (
	"go.uber.org/zap"

	"xclaunch/internal/ports"
)

// Env carries the collaborators every operation needs. It is built once at
// program start and passed down explicitly.
type Env struct {
	Store     ports.HierarchyStore
	Settings  ports.SettingsStore
	FS        ports.FileSystem
	Prompt    ports.Prompter
	Tree      ports.TreeNavigator
	Shell     ports.Shell
	Git       ports.GitRemotes
	Clipboard ports.Clipboard
	Log       *zap.Logger

	// IDE is the application used to open project files (e.g. "Xcode")
	IDE string
}

// Logger returns the configured logger, or a no-op logger when none is set
func (e *Env) Logger() *zap.Logger {
	if e.Log == nil {
		return zap.NewNop()
	}
	return e.Log
}

// Folders returns a folder synchronizer bound to the environment's filesystem
func (e *Env) Folders() *FolderSync {
	return NewFolderSync(e.FS, e.Logger())
}

// Resolver returns an identifier resolver bound to the environment
func (e *Env) Resolver() *Resolver {
	return NewResolver(e.Store, e.Prompt, e.Tree)
}

// Launcher returns a launcher bound to the environment's shell and IDE
func (e *Env) Launcher() *Launcher {
	return NewLauncher(e.Shell, e.IDE, e.Logger())
}

// MainProjects returns a main-project coordinator bound to the environment's store
func (e *Env) MainProjects() *MainProjects {
	return NewMainProjects(e.Store, e.Logger())
}
