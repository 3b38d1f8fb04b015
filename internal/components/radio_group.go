package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rx-tui/rx-tui/internal/theme"
)

// RadioGroup - exactly one option selected at a time, rendered on one line
type RadioGroup struct {
	title    string
	options  []RadioOption
	selected int
	focused  bool
}

type RadioOption struct {
	Label string
	Value interface{}
}

// NewRadioGroup creates a radio group with the first option selected
func NewRadioGroup(title string, options ...RadioOption) *RadioGroup {
	return &RadioGroup{
		title:   title,
		options: options,
	}
}

func (rg *RadioGroup) SetFocused(focused bool) *RadioGroup {
	rg.focused = focused
	return rg
}

// Select changes the selection. Out of range indices are ignored.
func (rg *RadioGroup) Select(index int) {
	if index < 0 || index >= len(rg.options) || index == rg.selected {
		return
	}
	rg.selected = index
}

// SelectByValue selects the first option whose value equals v.
func (rg *RadioGroup) SelectByValue(v interface{}) {
	for i, opt := range rg.options {
		if opt.Value == v {
			rg.Select(i)
			return
		}
	}
}

// Next moves the selection right, wrapping around.
func (rg *RadioGroup) Next() {
	if len(rg.options) == 0 {
		return
	}
	rg.Select((rg.selected + 1) % len(rg.options))
}

func (rg *RadioGroup) Prev() {
	if len(rg.options) == 0 {
		return
	}
	rg.Select((rg.selected - 1 + len(rg.options)) % len(rg.options))
}

func (rg *RadioGroup) Selected() (RadioOption, int) {
	if rg.selected < len(rg.options) {
		return rg.options[rg.selected], rg.selected
	}
	return RadioOption{}, -1
}

func (rg *RadioGroup) Render() string {
	parts := make([]string, 0, len(rg.options))
	for i, opt := range rg.options {
		icon := theme.IconRadioOff
		style := lipgloss.NewStyle().Foreground(theme.ColorForeground)
		if i == rg.selected {
			icon = theme.IconRadioOn
			style = style.Foreground(theme.ColorAccent).Bold(true)
		}
		parts = append(parts, style.Render(icon+" "+opt.Label))
	}

	title := theme.LabelStyle.Render(rg.title)
	if rg.focused {
		title = theme.LabelStyle.Foreground(theme.ColorAccent).Bold(true).Render(theme.IconPointer + " " + rg.title)
	}
	return title + strings.Join(parts, "   ")
}
