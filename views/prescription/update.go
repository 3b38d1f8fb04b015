package prescription

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	rx "github.com/rx-tui/rx-tui/internal/prescription"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.sampleSystem != nil {
		cmds = append(cmds, m.sampleCmd(), sysTickEvery())
	}
	return tea.Batch(cmds...)
}

func (m Model) sampleCmd() tea.Cmd {
	sample := m.sampleSystem
	return func() tea.Msg {
		snap, err := sample()
		return sysSampleMsg{snapshot: snap, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case sysTickMsg:
		if m.sampleSystem == nil {
			return m, nil
		}
		return m, tea.Batch(m.sampleCmd(), sysTickEvery())

	case sysSampleMsg:
		if msg.err != nil {
			m.logger.Debug().Err(msg.err).Int("pid", os.Getpid()).Msg("system sample failed")
			return m, nil
		}
		m.system = msg.snapshot
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case linearizedMsg:
		m.handleLinearized(msg)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		// An open dialog swallows the next key.
		if m.dialog != nil {
			m.dialog = nil
			return m, nil
		}
		if m.busy {
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Submit):
			return m, m.submit()

		case key.Matches(msg, m.keys.Language):
			m.setLanguage(nextLanguage(m.state.Language))
			return m, nil

		case key.Matches(msg, m.keys.Mode):
			m.setMode(nextMode(m.state.Mode))
			return m, nil

		case key.Matches(msg, m.keys.Tab):
			m.moveFocus(1)
			return m, nil

		case key.Matches(msg, m.keys.ShiftTab):
			m.moveFocus(-1)
			return m, nil
		}

		cmds = append(cmds, m.updateFocused(msg))
	}

	return m, tea.Batch(cmds...)
}

// updateFocused routes a key to whatever currently has focus.
func (m *Model) updateFocused(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch m.focus {
	case focusLanguage, focusMode:
		group := m.languageGroup
		if m.focus == focusMode {
			group = m.modeGroup
		}
		switch {
		case key.Matches(msg, m.keys.Left):
			group.Prev()
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Enter):
			group.Next()
		}
		m.syncSelections()

	case focusFreeText:
		m.freeText, cmd = m.freeText.Update(msg)

	case focusSubmit:
		if key.Matches(msg, m.keys.Enter) {
			cmd = m.submit()
		}

	case focusTable:
		m.table, cmd = m.table.Update(msg)

	default:
		if i := fieldIndex(m.focus); i >= 0 {
			if key.Matches(msg, m.keys.Enter) {
				m.moveFocus(1)
				return nil
			}
			m.fields[i], cmd = m.fields[i].Update(msg)
		}
	}
	return cmd
}

// layout sizes the inputs, transcript and table to the terminal.
func (m *Model) layout() {
	w := m.contentWidth() - 4

	m.freeText.SetWidth(w)
	for i := range m.fields {
		m.fields[i].Width = w - 26
	}
	m.transcript.Width = w
	m.updateTable()
}

func nextLanguage(l rx.Language) rx.Language {
	langs := rx.Languages()
	for i, candidate := range langs {
		if candidate == l {
			return langs[(i+1)%len(langs)]
		}
	}
	return langs[0]
}

func nextMode(md rx.Mode) rx.Mode {
	modes := rx.Modes()
	for i, candidate := range modes {
		if candidate == md {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}
