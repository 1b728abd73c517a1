package prompt

import (
	"fmt"
	"strings"

	"xclaunch/internal/domain"
	"xclaunch/internal/ports"
)

// Mock answers prompts from scripted queues and records what was asked.
// An exhausted queue answers with ports.ErrPromptAborted.
type Mock struct {
	Inputs   []string
	Confirms []bool

	// Selections are matched against option labels, case-insensitively.
	// A label that matches nothing is an error.
	Selections []string

	// Navigations name the node to pick, by name
	Navigations []string

	Asked []string
}

// Ensure Mock implements Prompter and TreeNavigator
var (
	_ ports.Prompter      = (*Mock)(nil)
	_ ports.TreeNavigator = (*Mock)(nil)
)

// NewMock creates a new Mock
func NewMock() *Mock {
	return &Mock{}
}

// Input pops the next scripted text answer
func (m *Mock) Input(title, _ string) (string, error) {
	m.Asked = append(m.Asked, title)
	if len(m.Inputs) == 0 {
		return "", ports.ErrPromptAborted
	}
	answer := m.Inputs[0]
	m.Inputs = m.Inputs[1:]
	return answer, nil
}

// Confirm pops the next scripted yes/no answer
func (m *Mock) Confirm(question string) (bool, error) {
	m.Asked = append(m.Asked, question)
	if len(m.Confirms) == 0 {
		return false, ports.ErrPromptAborted
	}
	answer := m.Confirms[0]
	m.Confirms = m.Confirms[1:]
	return answer, nil
}

// Select pops the next scripted label and returns the index of the matching option
func (m *Mock) Select(title string, options []string) (int, error) {
	m.Asked = append(m.Asked, title)
	if len(m.Selections) == 0 {
		return -1, ports.ErrPromptAborted
	}
	want := m.Selections[0]
	m.Selections = m.Selections[1:]

	for i, o := range options {
		if strings.EqualFold(o, want) || strings.HasPrefix(strings.ToLower(o), strings.ToLower(want)+" ") {
			return i, nil
		}
	}
	return -1, fmt.Errorf("no option %q among %v", want, options)
}

// Navigate pops the next scripted node name and finds it below root
func (m *Mock) Navigate(title string, root *domain.TreeNode, selectable domain.NodeKind) (*domain.TreeNode, error) {
	m.Asked = append(m.Asked, title)
	if len(m.Navigations) == 0 {
		return nil, ports.ErrPromptAborted
	}
	want := m.Navigations[0]
	m.Navigations = m.Navigations[1:]

	root.ExpandAll()
	for _, n := range root.Flatten() {
		if n.Kind == selectable && strings.EqualFold(n.Name, want) {
			return n, nil
		}
	}
	return nil, fmt.Errorf("no %s %q in tree", selectable, want)
}
