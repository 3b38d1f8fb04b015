// Package extractor splits a linearizer response into table columns.
//
// The rules are positional guesses tuned to the two command shapes the
// mapper emits. Responses of any other shape produce best-effort rows.
package extractor

import (
	"strings"
	"unicode"

	"github.com/rx-tui/rx-tui/internal/prescription"
)

const label = "Prescribe:"

// Extract guesses the five table columns from a linearizer response.
func Extract(result string) prescription.Row {
	parts := strings.Fields(strings.TrimSpace(strings.ReplaceAll(result, label, "")))

	medication := "drops"
	if contains(parts, "Take") {
		medication = at(parts, 3)
	}

	dosage := "2"
	if isDigits(at(parts, 1)) {
		dosage = at(parts, 1)
	}

	unit := "tablet"
	if contains(parts, "drop") {
		unit = at(parts, 2)
	}

	frequency := ""
	if len(parts) > 4 {
		frequency = strings.Join(parts[4:], " ")
	}

	bodyPart := ""
	if contains(parts, "to") {
		bodyPart = parts[len(parts)-1]
	}

	return prescription.NewRow(medication, dosage, unit, frequency, bodyPart)
}

func at(parts []string, i int) string {
	if i < len(parts) {
		return parts[i]
	}
	return ""
}

func contains(parts []string, word string) bool {
	for _, p := range parts {
		if p == word {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
