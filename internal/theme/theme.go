package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Clinical palette - calm teal on slate
	ColorBackground        = lipgloss.Color("#1F2428") // Slate
	ColorBackgroundDarker  = lipgloss.Color("#171B1E") // Darker slate
	ColorBackgroundLighter = lipgloss.Color("#2C3338") // Lighter slate

	ColorForeground    = lipgloss.Color("#E6EEF0")
	ColorForegroundDim = lipgloss.Color("#8A9AA3")

	ColorBorder       = lipgloss.Color("#4A5A63")
	ColorBorderActive = lipgloss.Color("#3CC4B4")

	ColorAccent = lipgloss.Color("#3CC4B4") // Teal
	ColorError  = lipgloss.Color("#F2777A")
	ColorInfo   = lipgloss.Color("#9CC7F2")
)

const (
	IconRadioOn  = "◉"
	IconRadioOff = "○"
	IconDot      = "•"
	IconPointer  = "›"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorForegroundDim).
			Italic(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Width(22)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorForegroundDim)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	PanelActiveStyle = PanelStyle.
				BorderForeground(ColorBorderActive)

	ButtonStyle = lipgloss.NewStyle().
			Foreground(ColorForeground).
			Background(ColorBackgroundLighter).
			Padding(0, 2)

	ButtonActiveStyle = ButtonStyle.
				Foreground(ColorBackground).
				Background(ColorAccent).
				Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Background(ColorBackgroundDarker).
			Foreground(ColorForeground).
			Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	FooterDescStyle = lipgloss.NewStyle().
			Foreground(ColorForegroundDim)

	DialogStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 3)
)

func RenderTitle(icon, text string) string {
	if icon != "" {
		return TitleStyle.Render(icon + " " + text)
	}
	return TitleStyle.Render(text)
}

// RenderPanel boxes content, highlighting the border when active.
func RenderPanel(content string, width int, active bool) string {
	style := PanelStyle
	if active {
		style = PanelActiveStyle
	}
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(content)
}

func RenderButton(text string, active bool) string {
	if active {
		return ButtonActiveStyle.Render(text)
	}
	return ButtonStyle.Render(text)
}

func RenderKeyHelp(key, desc string) string {
	return FooterKeyStyle.Render(key) + " " + FooterDescStyle.Render(desc)
}

// RenderHelpBar joins key/description pairs with a dot separator.
func RenderHelpBar(pairs ...[2]string) string {
	items := make([]string, 0, len(pairs))
	for _, p := range pairs {
		items = append(items, RenderKeyHelp(p[0], p[1]))
	}
	return strings.Join(items, FooterDescStyle.Render(" "+IconDot+" "))
}

func RenderStatusBar(width int, items ...string) string {
	return StatusStyle.Width(width).Render(strings.Join(items, "  │  "))
}

type DialogKind int

const (
	DialogInfo DialogKind = iota
	DialogError
)

// RenderDialog draws a modal box; the caller centres it.
func RenderDialog(kind DialogKind, title, body string, width int) string {
	color := ColorInfo
	if kind == DialogError {
		color = ColorError
	}
	heading := lipgloss.NewStyle().Bold(true).Foreground(color).Render(title)
	text := lipgloss.NewStyle().Foreground(ColorForeground).Width(width - 8).Render(body)
	hint := DimStyle.Render("press any key to close")

	return DialogStyle.
		BorderForeground(color).
		Width(width).
		Render(lipgloss.JoinVertical(lipgloss.Left, heading, "", text, "", hint))
}
