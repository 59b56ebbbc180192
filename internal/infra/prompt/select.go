package prompt

import (
	"errors"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/danielmartin/emacs-sourcegraph/internal/domain"
)

type remoteItem string

func (i remoteItem) Title() string       { return string(i) }
func (i remoteItem) Description() string { return "" }
func (i remoteItem) FilterValue() string { return string(i) }

type selectModel struct {
	list    list.Model
	theme   Theme
	choice  string
	aborted bool
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-2, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			if it, ok := m.list.SelectedItem().(remoteItem); ok {
				m.choice = string(it)
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() string {
	return m.list.View() + "\n" + m.theme.Help.Render("enter: select • esc: cancel")
}

// SelectRemote asks the user to pick one of the configured remotes. The
// answer always comes from the given set; aborting the picker is an error.
func (p *Prompt) SelectRemote(names []string) (string, error) {
	if len(names) == 0 {
		return "", &domain.OpError{Op: "prompt.selectremote", Kind: domain.KindNoRemotes, Err: domain.ErrNoRemotes}
	}

	items := make([]list.Item, 0, len(names))
	for _, n := range names {
		items = append(items, remoteItem(n))
	}

	l := list.New(items, list.NewDefaultDelegate(), 40, len(names)*3+6)
	l.Title = "Select remote"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	out, err := tea.NewProgram(selectModel{list: l, theme: p.theme}).Run()
	if err != nil {
		return "", &domain.OpError{Op: "prompt.selectremote", Kind: domain.KindUserInput, Err: err}
	}

	final, ok := out.(selectModel)
	if !ok || final.aborted || final.choice == "" {
		return "", &domain.OpError{
			Op:   "prompt.selectremote",
			Kind: domain.KindUserInput,
			Err:  errors.New("no remote selected"),
		}
	}
	return final.choice, nil
}
