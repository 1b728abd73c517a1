package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"xclaunch/internal/adapters/tui/styles"
	"xclaunch/internal/ports"
)

// Huh implements ports.Prompter with inline huh forms
type Huh struct {
	theme *huh.Theme
}

// Ensure Huh implements Prompter
var _ ports.Prompter = (*Huh)(nil)

// NewHuh creates a new Huh prompter
func NewHuh() *Huh {
	return &Huh{theme: styles.HuhTheme()}
}

// Input asks for a single line of text
func (h *Huh) Input(title, placeholder string) (string, error) {
	value := ""

	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)

	if err := h.run(field); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm asks a yes/no question, defaulting to no
func (h *Huh) Confirm(question string) (bool, error) {
	confirmed := false

	field := huh.NewConfirm().
		Title(question).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := h.run(field); err != nil {
		return false, err
	}
	return confirmed, nil
}

// Select asks the user to pick one of options and returns its index
func (h *Huh) Select(title string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, ports.ErrPromptAborted
	}

	choice := 0
	opts := make([]huh.Option[int], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, i)
	}

	keyMap := huh.NewDefaultKeyMap()
	keyMap.Select.Filter.SetEnabled(len(options) > 8)

	field := huh.NewSelect[int]().
		Title(title).
		Options(opts...).
		Value(&choice)

	if err := h.run(field, keyMap); err != nil {
		return -1, err
	}
	return choice, nil
}

func (h *Huh) run(field huh.Field, keyMap ...*huh.KeyMap) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(h.theme).
		WithShowHelp(true)
	if len(keyMap) > 0 {
		form = form.WithKeyMap(keyMap[0])
	}

	err := form.Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return ports.ErrPromptAborted
	}
	if err != nil {
		return fmt.Errorf("failed to run prompt: %w", err)
	}
	return nil
}
