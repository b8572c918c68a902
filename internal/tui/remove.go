package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dsmmcken/distman/internal/dist"
)

// DistsLoadedMsg is sent when the installed list finishes loading.
// Exported for testing.
type DistsLoadedMsg struct {
	Installed []dist.Installed
	Err       error
}

// RemovedMsg reports the outcome of one removal.
type RemovedMsg struct {
	ID  string
	Err error
}

type removeKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Remove  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k removeKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Remove, k.Help, k.Quit}
}

func (k removeKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Remove, k.Confirm, k.Cancel},
		{k.Help, k.Quit},
	}
}

// RemoveScreen lists installed distributions and removes the selected one
// after a y/n confirmation.
type RemoveScreen struct {
	keys       removeKeyMap
	help       help.Model
	resolver   dist.Resolver
	remover    *dist.Remover
	installed  []dist.Installed
	cursor     int
	confirming bool
	removing   bool
	loading    bool
	status     string
	err        error
}

func NewRemoveScreen(r dist.Resolver, remover *dist.Remover) RemoveScreen {
	return RemoveScreen{
		keys: removeKeyMap{
			Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
			Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
			Remove:  key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "remove")),
			Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
			Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "cancel")),
			Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
			Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		},
		help:     help.New(),
		resolver: r,
		remover:  remover,
		loading:  true,
	}
}

func (m RemoveScreen) Init() tea.Cmd {
	return m.load()
}

// Installed returns the loaded distributions (for testing).
func (m RemoveScreen) Installed() []dist.Installed {
	return m.installed
}

// Cursor returns the current cursor position (for testing).
func (m RemoveScreen) Cursor() int {
	return m.cursor
}

// selected returns the distribution under the cursor, if any.
func (m RemoveScreen) selected() (dist.Installed, bool) {
	if m.cursor < 0 || m.cursor >= len(m.installed) {
		return dist.Installed{}, false
	}
	return m.installed[m.cursor], true
}

func (m RemoveScreen) load() tea.Cmd {
	r := m.resolver
	return func() tea.Msg {
		installed, err := dist.ListInstalled(r)
		return DistsLoadedMsg{Installed: installed, Err: err}
	}
}

func (m RemoveScreen) remove(id string) tea.Cmd {
	remover := m.remover
	return func() tea.Msg {
		return RemovedMsg{ID: id, Err: remover.Remove(id)}
	}
}

func (m RemoveScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case DistsLoadedMsg:
		m.loading = false
		m.confirming = false
		m.installed = msg.Installed
		m.err = msg.Err
		if m.cursor >= len(m.installed) {
			m.cursor = max(len(m.installed)-1, 0)
		}
		return m, nil

	case RemovedMsg:
		m.removing = false
		m.confirming = false
		if msg.Err != nil {
			m.status = StyleError.Render(msg.Err.Error())
			return m, nil
		}
		m.status = StyleSuccess.Render(fmt.Sprintf("Distribution '%s' successfully removed", msg.ID))
		return m, m.load()

	case tea.KeyMsg:
		if m.confirming {
			switch {
			case key.Matches(msg, m.keys.Confirm):
				m.confirming = false
				in, ok := m.selected()
				if !ok {
					return m, nil
				}
				m.removing = true
				return m, m.remove(in.ID)
			case key.Matches(msg, m.keys.Cancel):
				m.confirming = false
				m.status = ""
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case m.loading, m.removing:
			return m, nil
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.installed)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Remove):
			in, ok := m.selected()
			if !ok {
				return m, nil
			}
			if in.IsActive {
				m.status = StyleWarning.Render("The active distribution cannot be removed")
				return m, nil
			}
			m.confirming = true
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

func (m RemoveScreen) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("  Installed distributions"))
	b.WriteString("\n")

	switch {
	case m.loading:
		b.WriteString("  Loading...\n")
		return b.String()
	case m.err != nil:
		b.WriteString(fmt.Sprintf("  Error: %s\n", m.err))
		return b.String()
	case len(m.installed) == 0:
		b.WriteString(StyleDim.Render("  No distributions installed.") + "\n")
	}

	for i, in := range m.installed {
		marker := "  "
		if in.IsActive {
			marker = "★ "
		}
		if i == m.cursor {
			b.WriteString(StyleSelected.Render("  > " + marker + in.ID))
		} else {
			b.WriteString("    " + marker + in.ID)
		}
		if in.IsActive {
			b.WriteString("  " + StyleDim.Render("active"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	in, ok := m.selected()
	switch {
	case m.confirming && ok:
		b.WriteString(StyleWarning.Render(fmt.Sprintf("  Remove '%s'? [y/N]", in.ID)))
		b.WriteString("\n")
	case m.removing:
		b.WriteString(StyleDim.Render("  Removing...") + "\n")
	case m.status != "":
		b.WriteString("  " + m.status + "\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}
