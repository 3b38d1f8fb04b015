// Package mapper turns a free-text prescription sentence into a command for
// the prescription grammar.
//
// Only two sentence shapes are recognised:
//
//	apply <count> <unit> [to the|of] <body part> <frequency>
//	take <count> <unit> <...> <frequency>
//
// Words missing from the lookup tables silently fall back to the defaults
// in tables.go.
package mapper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/rx-tui/rx-tui/internal/prescription"
	"golang.org/x/text/unicode/norm"
)

type Action string

const (
	Apply Action = "Apply"
	Take  Action = "Take"
)

// PlaceholderMedication is what the Take form names as the drug. The
// sentence's own medication is never captured.
const PlaceholderMedication = "Aspirin"

// Words are any run of letters, digits or underscores, accented letters
// included, so unknown units such as "cápsula" reach the fallback tables.
var sentencePattern = regexp.MustCompile(`(?i)(apply|take)\s+(\d+)\s+([\p{L}\p{N}_]+)\s+(?:to the\s+|of\s+)?([\p{L}\p{N}_]+)?\s*(.*?)$`)

// Command is a parsed prescription in canonical tokens.
type Command struct {
	Action     Action
	Medication string
	Dosage     string
	Unit       string
	BodyPart   string
	Frequency  string
}

// String renders the argument of the linearize directive.
func (c Command) String() string {
	if c.Action == Apply {
		return fmt.Sprintf("Prescribe (Apply %s %s %s %s)", c.Dosage, c.Unit, c.BodyPart, c.Frequency)
	}
	return fmt.Sprintf("Prescribe (Take %s %s %s %s)", c.Medication, c.Dosage, c.Unit, c.Frequency)
}

// Map parses a free-text sentence.
func Map(text string) (Command, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Command{}, prescription.ErrMissingInput
	}

	text = strings.ToLower(norm.NFC.String(text))
	m := sentencePattern.FindStringSubmatch(text)
	if m == nil {
		return Command{}, prescription.ErrUnparsableInput
	}
	action, dosage, unit, bodyPart, frequency := m[1], m[2], m[3], m[4], m[5]

	cmd := Command{
		Dosage:    lookup(dosageTokens, dosage, DefaultDosage),
		Unit:      lookup(unitTokens, unit, DefaultUnit),
		BodyPart:  lookup(bodyPartTokens, bodyPart, DefaultBodyPart),
		Frequency: lookupFrequency(frequencyPhrase(bodyPart, frequency)),
	}
	switch action {
	case "apply":
		cmd.Action = Apply
	case "take":
		cmd.Action = Take
		cmd.Medication = PlaceholderMedication
	default:
		return Command{}, prescription.ErrUnparsableInput
	}
	return cmd, nil
}

// frequencyPhrase puts an unrecognised body-part word back in front of the
// tail: in "take 1 tablet once a day" the optional body-part group swallows
// "once".
func frequencyPhrase(bodyPart, tail string) string {
	if _, ok := bodyPartTokens[bodyPart]; ok || bodyPart == "" {
		return tail
	}
	return bodyPart + " " + tail
}

// lookupFrequency tries the whole tail first, then the longest known phrase
// the tail ends with.
func lookupFrequency(tail string) string {
	tail = strings.TrimSpace(tail)
	if v, ok := frequencyTokens[tail]; ok {
		return v
	}
	best, token := "", DefaultFrequency
	for phrase, v := range frequencyTokens {
		if len(phrase) > len(best) && strings.HasSuffix(tail, " "+phrase) {
			best, token = phrase, v
		}
	}
	return token
}

// GuidedCommand builds a Take command from the guided-mode fields as typed.
func GuidedCommand(in prescription.GuidedInput) Command {
	return Command{
		Action:     Take,
		Medication: in.Medication,
		Dosage:     in.Dosage,
		Unit:       in.Unit,
		Frequency:  in.Frequency,
		BodyPart:   in.BodyPart,
	}
}
