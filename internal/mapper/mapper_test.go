package mapper

import (
	"errors"
	"testing"

	"github.com/rx-tui/rx-tui/internal/prescription"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Command
		cmd  string
	}{
		{
			name: "apply with unknown body part word",
			text: "Apply 2 drops to the affected eye twice a day",
			want: Command{Action: Apply, Dosage: "Two", Unit: "Drop", BodyPart: "", Frequency: "TwiceADay"},
			cmd:  "Prescribe (Apply Two Drop  TwiceADay)",
		},
		{
			name: "apply to known body part",
			text: "apply 2 drops to the eye twice a day",
			want: Command{Action: Apply, Dosage: "Two", Unit: "Drop", BodyPart: "AffectedEye", Frequency: "TwiceADay"},
			cmd:  "Prescribe (Apply Two Drop AffectedEye TwiceADay)",
		},
		{
			name: "apply of",
			text: "APPLY 3 drop of ear three times a day",
			want: Command{Action: Apply, Dosage: "Three", Unit: "Drop", BodyPart: "AffectedEar", Frequency: "ThreeTimesADay"},
			cmd:  "Prescribe (Apply Three Drop AffectedEar ThreeTimesADay)",
		},
		{
			name: "take uses placeholder medication",
			text: "Take 1 tablet once a day",
			want: Command{Action: Take, Medication: "Aspirin", Dosage: "One", Unit: "Tablet", Frequency: "OnceADay"},
			cmd:  "Prescribe (Take Aspirin One Tablet OnceADay)",
		},
		{
			name: "unknown words fall back",
			text: "take 9 capsules every 6 hours",
			want: Command{Action: Take, Medication: "Aspirin", Dosage: "One", Unit: "Tablet", Frequency: "Every6Hours"},
			cmd:  "Prescribe (Take Aspirin One Tablet Every6Hours)",
		},
		{
			name: "unknown frequency",
			text: "take 4 tablet whenever needed",
			want: Command{Action: Take, Medication: "Aspirin", Dosage: "Four", Unit: "Tablet", Frequency: ""},
			cmd:  "Prescribe (Take Aspirin Four Tablet )",
		},
		{
			name: "accented unit falls back",
			text: "take 1 cápsula once a day",
			want: Command{Action: Take, Medication: "Aspirin", Dosage: "One", Unit: "Tablet", Frequency: "OnceADay"},
			cmd:  "Prescribe (Take Aspirin One Tablet OnceADay)",
		},
		{
			name: "accented unit with known body part",
			text: "Apply 2 gotículas to the ear twice a day",
			want: Command{Action: Apply, Dosage: "Two", Unit: "Tablet", BodyPart: "AffectedEar", Frequency: "TwiceADay"},
			cmd:  "Prescribe (Apply Two Tablet AffectedEar TwiceADay)",
		},
		{
			name: "accented body part falls back",
			text: "apply 1 drop to the órgão twice a day",
			want: Command{Action: Apply, Dosage: "One", Unit: "Drop", BodyPart: "", Frequency: "TwiceADay"},
			cmd:  "Prescribe (Apply One Drop  TwiceADay)",
		},
		{
			name: "decomposed accents are normalised",
			text: "take 1 ca\u0301psula once a day",
			want: Command{Action: Take, Medication: "Aspirin", Dosage: "One", Unit: "Tablet", Frequency: "OnceADay"},
			cmd:  "Prescribe (Take Aspirin One Tablet OnceADay)",
		},
		{
			name: "sentence embedded in longer text",
			text: "  Please take 2 tablet twice a day  ",
			want: Command{Action: Take, Medication: "Aspirin", Dosage: "Two", Unit: "Tablet", Frequency: "TwiceADay"},
			cmd:  "Prescribe (Take Aspirin Two Tablet TwiceADay)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Map(tt.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
			if got.String() != tt.cmd {
				t.Errorf("expected command %q, got %q", tt.cmd, got.String())
			}
		})
	}
}

func TestMap_MissingInput(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := Map(text); !errors.Is(err, prescription.ErrMissingInput) {
			t.Errorf("Map(%q): expected ErrMissingInput, got %v", text, err)
		}
	}
}

func TestMap_Unparsable(t *testing.T) {
	for _, text := range []string{"hello world", "take two tablets daily", "apply 2 drops"} {
		_, err := Map(text)
		if !errors.Is(err, prescription.ErrUnparsableInput) {
			t.Errorf("Map(%q): expected ErrUnparsableInput, got %v", text, err)
		}
	}
}

func TestGuidedCommand(t *testing.T) {
	cmd := GuidedCommand(prescription.GuidedInput{
		Medication: "Ibuprofen",
		Dosage:     "1",
		Unit:       "Tablet",
		Frequency:  "OnceADay",
	})
	if cmd.String() != "Prescribe (Take Ibuprofen 1 Tablet OnceADay)" {
		t.Errorf("unexpected command %q", cmd.String())
	}
}
