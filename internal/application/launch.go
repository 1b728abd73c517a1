package application

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"xclaunch/internal/ports"
)

// DefaultIDE is the application project files open in when none is configured
const DefaultIDE = "Xcode"

// Launcher decides what to hand to the shell to open folders, files and URLs
type Launcher struct {
	shell ports.Shell
	ide   string
	log   *zap.Logger
}

// NewLauncher creates a new Launcher. An empty ide selects DefaultIDE.
func NewLauncher(shell ports.Shell, ide string, log *zap.Logger) *Launcher {
	if strings.TrimSpace(ide) == "" {
		ide = DefaultIDE
	}
	return &Launcher{shell: shell, ide: ide, log: log}
}

// IDE returns the application files are opened with
func (l *Launcher) IDE() string {
	return l.ide
}

// OpenInIDE opens a project file in the configured IDE
func (l *Launcher) OpenInIDE(ctx context.Context, filePath string) error {
	return l.run(ctx, "open", "-a", l.ide, filePath)
}

// Reveal opens a folder in Finder
func (l *Launcher) Reveal(ctx context.Context, folder string) error {
	return l.run(ctx, "open", folder)
}

// OpenURL opens a URL in the default browser
func (l *Launcher) OpenURL(ctx context.Context, rawURL string) error {
	return l.run(ctx, "open", rawURL)
}

// RunScript runs an AppleScript snippet
func (l *Launcher) RunScript(ctx context.Context, script string) error {
	if strings.TrimSpace(script) == "" {
		return nil
	}
	return l.run(ctx, "osascript", "-e", script)
}

func (l *Launcher) run(ctx context.Context, name string, args ...string) error {
	l.log.Debug("running command", zap.String("name", name), zap.Strings("args", args))
	if err := l.shell.Run(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}
	return nil
}
