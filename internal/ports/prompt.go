package ports

import (
	"errors"

	"xclaunch/internal/domain"
)

// ErrPromptAborted is returned when the user backs out of a prompt
var ErrPromptAborted = errors.New("prompt aborted")

// Prompter collects input from the user
type Prompter interface {
	// Input asks for free text. An empty answer is returned as-is.
	Input(title, placeholder string) (string, error)

	// Confirm asks a yes/no question
	Confirm(question string) (bool, error)

	// Select asks the user to pick one option and returns its index
	Select(title string, options []string) (int, error)
}

// TreeNavigator lets the user walk the hierarchy tree and pick a node of the given kind
type TreeNavigator interface {
	Navigate(title string, root *domain.TreeNode, selectable domain.NodeKind) (*domain.TreeNode, error)
}
