package shell

import (
	"context"
	"strings"
)

// Mock records commands instead of running them
type Mock struct {
	Commands []string

	// Err, when set, is returned by every Run
	Err error
}

// Run records the command line
func (m *Mock) Run(_ context.Context, name string, args ...string) error {
	m.Commands = append(m.Commands, strings.Join(append([]string{name}, args...), " "))
	return m.Err
}

// ClipboardMock remembers the last text written
type ClipboardMock struct {
	Text string
}

// WriteAll stores text
func (c *ClipboardMock) WriteAll(text string) error {
	c.Text = text
	return nil
}
