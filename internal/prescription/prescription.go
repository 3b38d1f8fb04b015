// Package prescription holds the types shared by the mapper, the extractor,
// the table store and the form.
package prescription

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Row is one entry of the results table. BodyPart may be empty.
type Row struct {
	ID         uuid.UUID
	Medication string
	Dosage     string
	Unit       string
	Frequency  string
	BodyPart   string
}

// NewRow stamps a fresh submission ID on the given values.
func NewRow(medication, dosage, unit, frequency, bodyPart string) Row {
	return Row{
		ID:         uuid.New(),
		Medication: medication,
		Dosage:     dosage,
		Unit:       unit,
		Frequency:  frequency,
		BodyPart:   bodyPart,
	}
}

// Values returns the five displayed columns in table order.
func (r Row) Values() []string {
	return []string{r.Medication, r.Dosage, r.Unit, r.Frequency, r.BodyPart}
}

type Language int

const (
	English Language = iota
	PortugueseBRA
)

var supportedTags = []language.Tag{language.English, language.BrazilianPortuguese}

var languageMatcher = language.NewMatcher(supportedTags)

// Languages lists the selectable languages in display order.
func Languages() []Language {
	return []Language{English, PortugueseBRA}
}

func (l Language) Tag() language.Tag {
	if l == PortugueseBRA {
		return language.BrazilianPortuguese
	}
	return language.English
}

// Label is the radio button caption.
func (l Language) Label() string {
	if l == PortugueseBRA {
		return "Português (BRA)"
	}
	return "English"
}

func (l Language) String() string {
	if l == PortugueseBRA {
		return "Bra"
	}
	return "Eng"
}

// ParseLanguage maps any BCP 47 string onto one of the supported languages.
func ParseLanguage(s string) (Language, error) {
	tag, err := language.Parse(strings.TrimSpace(s))
	if err != nil {
		return English, fmt.Errorf("parse language %q: %w", s, err)
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return English, fmt.Errorf("unsupported language %q", s)
	}
	return Languages()[idx], nil
}

type Mode int

const (
	FreeText Mode = iota
	Guided
)

func Modes() []Mode {
	return []Mode{FreeText, Guided}
}

func (m Mode) Label() string {
	if m == Guided {
		return "Guided Style"
	}
	return "Free Style"
}

func (m Mode) String() string {
	if m == Guided {
		return "guided"
	}
	return "free"
}

// ParseMode accepts "free" or "guided" (case-insensitive).
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "free", "freetext", "free-text":
		return FreeText, nil
	case "guided":
		return Guided, nil
	}
	return FreeText, fmt.Errorf("unknown mode %q", s)
}

// FormState is the user's current selection. Exactly one input panel, the
// one named by Mode, is visible at a time.
type FormState struct {
	Language Language
	Mode     Mode
}

func (s FormState) WithMode(m Mode) FormState {
	s.Mode = m
	return s
}

func (s FormState) WithLanguage(l Language) FormState {
	s.Language = l
	return s
}

// GuidedInput is the raw content of the five guided-mode fields.
type GuidedInput struct {
	Medication string
	Dosage     string
	Unit       string
	Frequency  string
	BodyPart   string
}

// Validate reports the first blank required field. Body part is optional.
func (g GuidedInput) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"Medication", g.Medication},
		{"Dosage", g.Dosage},
		{"Unit", g.Unit},
		{"Frequency", g.Frequency},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}

// Row converts validated input into a table row, keeping the values as typed.
func (g GuidedInput) Row() Row {
	return NewRow(g.Medication, g.Dosage, g.Unit, g.Frequency, g.BodyPart)
}
