// Package prompt gathers the configuration fields left unresolved by the
// merge step, in a fixed order, applying field-specific defaults and
// input transforms.
package prompt

import "github.com/charmbracelet/huh"

// Asker abstracts the interactive prompt renderer so the orchestrator
// can be exercised without a terminal.
type Asker interface {
	// Input asks for free text with a prefilled default.
	Input(title, def string) (string, error)

	// Select asks for one of a fixed set of choices.
	Select(title string, options []string, def string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(title string, def bool) (bool, error)
}

// TerminalAsker renders prompts on the terminal.
type TerminalAsker struct{}

// Input implements Asker.
func (TerminalAsker) Input(title, def string) (string, error) {
	value := def
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().Title(title).Value(&value),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// Select implements Asker.
func (TerminalAsker) Select(title string, options []string, def string) (string, error) {
	value := def
	opts := make([]huh.Option[string], 0, len(options))
	for _, o := range options {
		opts = append(opts, huh.NewOption(o, o))
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().Title(title).Options(opts...).Value(&value),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return value, nil
}

// Confirm implements Asker.
func (TerminalAsker) Confirm(title string, def bool) (bool, error) {
	value := def
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().Title(title).Value(&value),
	))
	if err := form.Run(); err != nil {
		return false, err
	}
	return value, nil
}
