package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"xclaunch/internal/adapters/tui/views"
	"xclaunch/internal/domain"
	"xclaunch/internal/ports"
)

// Navigator implements ports.TreeNavigator with a full-screen tree browser
type Navigator struct {
	options []tea.ProgramOption
}

// Ensure Navigator implements TreeNavigator
var _ ports.TreeNavigator = (*Navigator)(nil)

// NewNavigator creates a new Navigator. Program options are passed to bubbletea.
func NewNavigator(options ...tea.ProgramOption) *Navigator {
	if len(options) == 0 {
		options = []tea.ProgramOption{tea.WithAltScreen()}
	}
	return &Navigator{options: options}
}

// Navigate shows root and returns the node of kind selectable the user picked
func (n *Navigator) Navigate(title string, root *domain.TreeNode, selectable domain.NodeKind) (*domain.TreeNode, error) {
	model := views.NewBrowserModel(title, root, selectable)

	final, err := tea.NewProgram(model, n.options...).Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run tree navigator: %w", err)
	}

	browser, ok := final.(*views.BrowserModel)
	if !ok {
		return nil, ports.ErrPromptAborted
	}
	node, ok := browser.Selected()
	if !ok {
		return nil, ports.ErrPromptAborted
	}
	return node, nil
}
