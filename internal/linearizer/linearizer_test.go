package linearizer

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rx-tui/rx-tui/internal/prescription"
)

var testGrammars = map[prescription.Language]string{
	prescription.English:       "PrescriptionGrammarEng.gf",
	prescription.PortugueseBRA: "PrescriptionGrammarBra.gf",
}

func newTestShell(bin string, args ...string) *Shell {
	return NewShell(Options{
		Bin:      bin,
		Args:     args,
		Grammars: testGrammars,
		Logger:   zerolog.Nop(),
	})
}

func TestRequest(t *testing.T) {
	got := Request("PrescriptionGrammarEng.gf", "Prescribe (Apply Two Drop AffectedEye TwiceADay)")
	want := "import PrescriptionGrammarEng.gf\nlinearize Prescribe (Apply Two Drop AffectedEye TwiceADay)"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestShell_EchoesRequest(t *testing.T) {
	s := newTestShell("sh", "-c", "cat")
	out, err := s.Linearize(context.Background(), prescription.PortugueseBRA, "Prescribe (Take Aspirin One Tablet OnceADay)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "import PrescriptionGrammarBra.gf\nlinearize Prescribe (Take Aspirin One Tablet OnceADay)"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestShell_TrimsOutput(t *testing.T) {
	s := newTestShell("sh", "-c", "cat >/dev/null; printf '  apply two drops twice a day \\n\\n'")
	out, err := s.Linearize(context.Background(), prescription.English, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "apply two drops twice a day" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestShell_StderrIsFailure(t *testing.T) {
	s := newTestShell("sh", "-c", "cat >/dev/null; echo partial; echo 'command not parsed' >&2")
	out, err := s.Linearize(context.Background(), prescription.English, "Prescribe (Bogus)")

	var linErr *prescription.LinearizerError
	if !errors.As(err, &linErr) {
		t.Fatalf("expected LinearizerError, got %v", err)
	}
	if linErr.Output != "command not parsed" {
		t.Errorf("unexpected stderr %q", linErr.Output)
	}
	if out != "GF Error: command not parsed" {
		t.Errorf("unexpected result %q", out)
	}
}

func TestShell_SilentNonZeroExit(t *testing.T) {
	s := newTestShell("sh", "-c", "cat >/dev/null; echo done; exit 3")
	out, err := s.Linearize(context.Background(), prescription.English, "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "done" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestShell_MissingBinary(t *testing.T) {
	s := newTestShell("rx-tui-no-such-linearizer")
	if _, ok := s.Available(); ok {
		t.Fatal("binary should not be available")
	}

	_, err := s.Linearize(context.Background(), prescription.English, "x")
	var linErr *prescription.LinearizerError
	if !errors.As(err, &linErr) {
		t.Fatalf("expected LinearizerError, got %v", err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("expected wrapped exec.ErrNotFound, got %v", err)
	}
}

func TestShell_Timeout(t *testing.T) {
	s := NewShell(Options{
		Bin:      "sh",
		Args:     []string{"-c", "exec sleep 5"},
		Grammars: testGrammars,
		Timeout:  100 * time.Millisecond,
		Logger:   zerolog.Nop(),
	})

	start := time.Now()
	_, err := s.Linearize(context.Background(), prescription.English, "x")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if time.Since(start) > 3*time.Second {
		t.Errorf("timeout not enforced, took %v", time.Since(start))
	}
}

func TestShell_GrammarFallback(t *testing.T) {
	s := NewShell(Options{
		Grammars: map[prescription.Language]string{prescription.English: "Eng.gf"},
		Logger:   zerolog.Nop(),
	})
	g, err := s.Grammar(prescription.PortugueseBRA)
	if err != nil || g != "Eng.gf" {
		t.Errorf("expected English fallback, got %q, %v", g, err)
	}

	empty := NewShell(Options{Logger: zerolog.Nop()})
	if _, err := empty.Grammar(prescription.English); !errors.Is(err, ErrNoGrammar) {
		t.Errorf("expected ErrNoGrammar, got %v", err)
	}
	if _, err := empty.Linearize(context.Background(), prescription.English, "x"); !errors.Is(err, ErrNoGrammar) {
		t.Errorf("expected ErrNoGrammar from Linearize, got %v", err)
	}
}
