package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/atotto/clipboard"

	"xclaunch/internal/ports"
)

// Shell implements ports.Shell by spawning processes attached to the terminal
type Shell struct {
	stdout io.Writer
	stderr io.Writer
}

// Ensure Shell implements ports.Shell
var _ ports.Shell = (*Shell)(nil)

// NewShell creates a new Shell streaming to the process's stdout and stderr
func NewShell() *Shell {
	return &Shell{stdout: os.Stdout, stderr: os.Stderr}
}

// Run runs name with args and waits for it to finish
func (s *Shell) Run(ctx context.Context, name string, args ...string) error {
	cmd, err := s.Command(ctx, name, args...)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns an exec.Cmd wired to the terminal
func (s *Shell) Command(ctx context.Context, name string, args ...string) (*exec.Cmd, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found in PATH: %w", name, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr

	return cmd, nil
}

// Clipboard implements ports.Clipboard with the system clipboard
type Clipboard struct{}

// Ensure Clipboard implements ports.Clipboard
var _ ports.Clipboard = Clipboard{}

// WriteAll copies text to the clipboard
func (Clipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not supported on this system")
	}
	return clipboard.WriteAll(text)
}
