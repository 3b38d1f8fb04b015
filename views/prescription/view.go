package prescription

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rx-tui/rx-tui/internal/assets"
	rx "github.com/rx-tui/rx-tui/internal/prescription"
	"github.com/rx-tui/rx-tui/internal/theme"
	"github.com/rx-tui/rx-tui/internal/utils"
)

const appTitle = "Medical Prescription Generator"

func (m Model) View() string {
	if m.dialog != nil {
		return m.renderDialog()
	}

	width := m.contentWidth()
	sections := []string{
		m.renderHeader(),
		m.languageGroup.Render(),
		m.modeGroup.Render(),
		m.renderInputPanel(width),
		m.renderTablePanel(width),
		m.renderTranscript(width),
		m.renderStatusBar(),
		m.renderHelp(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	banner := lipgloss.NewStyle().Foreground(theme.ColorAccent).Render(assets.Banner())
	title := lipgloss.JoinVertical(lipgloss.Left,
		theme.RenderTitle("", appTitle),
		theme.SubtitleStyle.Padding(0, 1).Render("Describe a prescription, get a table row."),
	)
	return lipgloss.JoinHorizontal(lipgloss.Center, banner, "  ", title)
}

// renderInputPanel shows only the panel for the current mode.
func (m Model) renderInputPanel(width int) string {
	var body string
	if m.state.Mode == rx.Guided {
		body = m.renderGuided()
	} else {
		body = m.renderFreeText()
	}
	active := m.focus != focusTable && m.focus != focusLanguage && m.focus != focusMode
	return theme.RenderPanel(body, width, active)
}

func (m Model) renderFreeText() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.LabelStyle.Render("Enter Prescription:"),
		m.freeText.View(),
		"",
		theme.RenderButton("Generate Table Data", m.focus == focusSubmit),
	)
}

func (m Model) renderGuided() string {
	lines := make([]string, 0, fieldCount+2)
	for i := range m.fields {
		lines = append(lines, theme.LabelStyle.Render(fieldLabels[i])+m.fields[i].View())
	}
	lines = append(lines, "", theme.RenderButton("Generate Prescription", m.focus == focusSubmit))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderTablePanel(width int) string {
	title := theme.TitleStyle.Padding(0).Render("Prescription Table")
	body := m.table.View()
	if m.store.Len() == 0 {
		body = lipgloss.JoinVertical(lipgloss.Left, body, theme.DimStyle.Render("No prescriptions yet."))
	}
	return theme.RenderPanel(lipgloss.JoinVertical(lipgloss.Left, title, body), width, m.focus == focusTable)
}

func (m Model) renderTranscript(width int) string {
	title := theme.DimStyle.Render("Linearizer")
	return theme.RenderPanel(lipgloss.JoinVertical(lipgloss.Left, title, m.transcript.View()), width, false)
}

func (m Model) renderStatusBar() string {
	state := m.status
	if m.busy {
		state = m.spinner.View() + " " + m.status
	}
	items := []string{state, m.state.Language.Label() + " " + theme.IconDot + " " + m.state.Mode.Label()}
	items = append(items, fmt.Sprintf("%d rows", m.store.Len()))
	if m.linearizerStatus != "" {
		items = append(items, utils.TruncateWidth(m.linearizerStatus, 40))
	}
	if m.system.PID != 0 {
		items = append(items, m.system.String())
	}
	return theme.RenderStatusBar(m.contentWidth(), items...)
}

func (m Model) renderHelp() string {
	pairs := make([][2]string, 0, 5)
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		pairs = append(pairs, [2]string{h.Key, h.Desc})
	}
	return theme.RenderHelpBar(pairs...)
}

func (m Model) renderDialog() string {
	w := utils.ClampInt(m.width-4, 30, 60)
	box := theme.RenderDialog(m.dialog.kind, m.dialog.title, strings.TrimSpace(m.dialog.body), w)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
