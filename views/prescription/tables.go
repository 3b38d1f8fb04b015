package prescription

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/rx-tui/rx-tui/internal/store"
	"github.com/rx-tui/rx-tui/internal/theme"
	"github.com/rx-tui/rx-tui/internal/utils"
)

const tableHeight = 8

// updateTable rebuilds the grid from the store, keeping the cursor.
func (m *Model) updateTable() {
	availableWidth := m.contentWidth() - 4
	cursor := m.table.Cursor()

	t := table.New(
		table.WithColumns(store.Columns(availableWidth)),
		table.WithRows(m.store.TableRows()),
		table.WithFocused(m.focus == focusTable),
		table.WithHeight(tableHeight),
		table.WithWidth(availableWidth),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.ColorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.ColorBackground).
		Background(theme.ColorAccent).
		Bold(false)
	t.SetStyles(s)

	if n := m.store.Len(); n > 0 {
		if cursor >= n || cursor < 0 {
			cursor = n - 1
		}
		t.SetCursor(cursor)
	}

	m.table = t
}

// contentWidth is the inner width shared by the panels.
func (m Model) contentWidth() int {
	return utils.ClampInt(m.width-2, 50, 200)
}
