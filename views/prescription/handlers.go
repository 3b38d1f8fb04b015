package prescription

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rx-tui/rx-tui/internal/extractor"
	"github.com/rx-tui/rx-tui/internal/linearizer"
	"github.com/rx-tui/rx-tui/internal/mapper"
	rx "github.com/rx-tui/rx-tui/internal/prescription"
	"github.com/rx-tui/rx-tui/internal/theme"
)

type submissionKind int

const (
	submitFreeText submissionKind = iota
	submitGuided
)

// linearizedMsg carries a finished linearizer call back into Update.
type linearizedMsg struct {
	kind    submissionKind
	request string
	result  string
	err     error
	// guided rows are taken from the fields, not the linearizer output
	row rx.Row
}

type grammarResolver interface {
	Grammar(lang rx.Language) (string, error)
}

// requestText is what the transcript shows for a call.
func (m Model) requestText(command string) string {
	if g, ok := m.linearizer.(grammarResolver); ok {
		if grammar, err := g.Grammar(m.state.Language); err == nil {
			return linearizer.Request(grammar, command)
		}
	}
	return "linearize " + command
}

func (m Model) linearizeCmd(kind submissionKind, command mapper.Command, row rx.Row) tea.Cmd {
	lin := m.linearizer
	lang := m.state.Language
	text := command.String()
	request := m.requestText(text)
	return func() tea.Msg {
		result, err := lin.Linearize(context.Background(), lang, text)
		return linearizedMsg{kind: kind, request: request, result: result, err: err, row: row}
	}
}

func (m *Model) submit() tea.Cmd {
	if m.busy {
		return nil
	}
	if m.state.Mode == rx.Guided {
		return m.submitGuided()
	}
	return m.submitFreeText()
}

func (m *Model) submitFreeText() tea.Cmd {
	command, err := mapper.Map(m.freeText.Value())
	if err != nil {
		m.logger.Debug().Err(err).Msg("free text rejected")
		m.showError(err)
		return nil
	}

	m.logger.Info().
		Str("command", command.String()).
		Str("language", m.state.Language.String()).
		Msg("submitting free text")
	return m.startLinearize(submitFreeText, command, rx.Row{})
}

func (m *Model) submitGuided() tea.Cmd {
	in := m.guidedInput()
	if err := in.Validate(); err != nil {
		m.logger.Debug().Err(err).Msg("guided input rejected")
		m.showError(err)
		return nil
	}

	command := mapper.GuidedCommand(in)
	m.logger.Info().
		Str("command", command.String()).
		Str("language", m.state.Language.String()).
		Msg("submitting guided input")
	return m.startLinearize(submitGuided, command, in.Row())
}

func (m *Model) startLinearize(kind submissionKind, command mapper.Command, row rx.Row) tea.Cmd {
	m.busy = true
	m.status = "Linearizing..."
	return tea.Batch(m.spinner.Tick, m.linearizeCmd(kind, command, row))
}

func (m *Model) handleLinearized(msg linearizedMsg) {
	m.busy = false
	m.status = "Ready"

	transcript := msg.result
	if msg.err != nil && transcript == "" {
		transcript = msg.err.Error()
	}
	m.setTranscript(msg.request, transcript)

	switch msg.kind {
	case submitGuided:
		// The typed values are the row; the linearizer output is informational.
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("linearizer failed for guided input")
		}
		m.store.Add(msg.row)
		m.updateTable()
		m.status = "Row added"

	default:
		if msg.err != nil {
			m.logger.Error().Err(msg.err).Msg("linearizer failed")
			m.showError(msg.err)
			return
		}
		row := extractor.Extract(msg.result)
		m.store.Add(row)
		m.updateTable()
		m.logger.Info().Str("row_id", row.ID.String()).Msg("row added")
		m.showInfo("Success", "GF Output: "+msg.result)
	}
}

func (m *Model) showError(err error) {
	m.dialog = &dialog{kind: theme.DialogError, title: rx.Title(err), body: err.Error()}
}

func (m *Model) showInfo(title, body string) {
	m.dialog = &dialog{kind: theme.DialogInfo, title: title, body: body}
}

func (m *Model) setLanguage(lang rx.Language) {
	if lang == m.state.Language {
		return
	}
	m.state = m.state.WithLanguage(lang)
	m.languageGroup.SelectByValue(lang)
	m.logger.Debug().Str("language", lang.String()).Msg("language changed")
}

// setMode swaps the visible input panel; the table is untouched.
func (m *Model) setMode(mode rx.Mode) {
	if mode == m.state.Mode {
		return
	}
	m.state = m.state.WithMode(mode)
	m.modeGroup.SelectByValue(mode)
	m.logger.Debug().Str("mode", mode.String()).Msg("mode changed")
	m.layout()
	if m.focus != focusLanguage && m.focus != focusMode {
		m.setFocus(m.firstPanelFocus())
	} else {
		m.setFocus(m.focus)
	}
}

func (m *Model) syncSelections() {
	if opt, _ := m.languageGroup.Selected(); opt.Value != nil {
		m.setLanguage(opt.Value.(rx.Language))
	}
	if opt, _ := m.modeGroup.Selected(); opt.Value != nil {
		m.setMode(opt.Value.(rx.Mode))
	}
}
