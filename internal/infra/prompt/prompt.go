// Package prompt implements the interactive questions as one-shot bubbletea
// programs: a list picker for remote disambiguation and a text input for the
// search query.
package prompt

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title lipgloss.Style
	Help  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true),
		Help:  lipgloss.NewStyle().Faint(true),
	}
}

// Prompt satisfies ports.Prompter against a real terminal.
type Prompt struct {
	theme Theme
}

func New() *Prompt {
	return &Prompt{theme: DefaultTheme()}
}
