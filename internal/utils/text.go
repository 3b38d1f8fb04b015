package utils

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ellipsis = "…"

// ClampInt bounds value to [min, max].
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// TruncateWidth shortens s to at most width terminal cells, ending in an
// ellipsis when something was cut.
func TruncateWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}

	limit := width - lipgloss.Width(ellipsis)
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := lipgloss.Width(string(r))
		if used+w > limit {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + ellipsis
}
