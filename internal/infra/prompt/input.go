package prompt

import (
	"errors"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
)

type inputModel struct {
	input   textinput.Model
	theme   Theme
	done    bool
	aborted bool
}

func (m inputModel) Init() tea.Cmd { return textinput.Blink }

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	return m.theme.Title.Render("Search") + "\n" +
		m.input.View() + "\n" +
		m.theme.Help.Render("enter: search • esc: cancel")
}

// ReadQuery asks for a search query, prefilled with def (typically the
// editor's selection or the identifier under the cursor).
func (p *Prompt) ReadQuery(def string) (string, error) {
	ti := textinput.New()
	ti.Placeholder = "search query"
	ti.SetValue(def)
	ti.CursorEnd()
	ti.Focus()
	ti.CharLimit = 512
	ti.Width = 60

	out, err := tea.NewProgram(inputModel{input: ti, theme: p.theme}).Run()
	if err != nil {
		return "", &domain.OpError{Op: "prompt.readquery", Kind: domain.KindUserInput, Err: err}
	}

	final, ok := out.(inputModel)
	if !ok || final.aborted {
		return "", &domain.OpError{
			Op:   "prompt.readquery",
			Kind: domain.KindUserInput,
			Err:  errors.New("search cancelled"),
		}
	}
	return final.input.Value(), nil
}
