// Package linearizer runs prescription commands through the external GF
// grammar shell.
package linearizer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rx-tui/rx-tui/internal/prescription"
)

var ErrNoGrammar = errors.New("no grammar configured")

// Linearizer turns a command into text in the given language. Failures are
// reported as *prescription.LinearizerError.
type Linearizer interface {
	Linearize(ctx context.Context, lang prescription.Language, command string) (string, error)
}

type Options struct {
	Bin      string
	Args     []string
	Grammars map[prescription.Language]string
	// Timeout of zero means the call waits for the process however long it takes.
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Shell starts one linearizer process per request and talks to it over
// stdin/stdout.
type Shell struct {
	bin      string
	args     []string
	grammars map[prescription.Language]string
	timeout  time.Duration
	logger   zerolog.Logger
}

func NewShell(opts Options) *Shell {
	bin := opts.Bin
	if bin == "" {
		bin = "gf"
	}
	return &Shell{
		bin:      bin,
		args:     opts.Args,
		grammars: opts.Grammars,
		timeout:  opts.Timeout,
		logger:   opts.Logger.With().Str("component", "linearizer").Logger(),
	}
}

// Request is the text written to the linearizer's stdin.
func Request(grammar, command string) string {
	return "import " + grammar + "\nlinearize " + command
}

// Grammar returns the grammar file imported for lang. English is used when
// lang has no entry of its own.
func (s *Shell) Grammar(lang prescription.Language) (string, error) {
	if g, ok := s.grammars[lang]; ok && g != "" {
		return g, nil
	}
	if g, ok := s.grammars[prescription.English]; ok && g != "" {
		return g, nil
	}
	return "", ErrNoGrammar
}

// Available reports whether the linearizer binary can be found.
func (s *Shell) Available() (string, bool) {
	path, err := exec.LookPath(s.bin)
	if err != nil {
		return s.bin, false
	}
	return path, true
}

// Linearize blocks until the process exits. Anything on stderr turns the
// whole response into a failure.
func (s *Shell) Linearize(ctx context.Context, lang prescription.Language, command string) (string, error) {
	grammar, err := s.Grammar(lang)
	if err != nil {
		return fmt.Sprintf("Error: %v", err), &prescription.LinearizerError{Err: err}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	reqID := uuid.NewString()
	log := s.logger.With().Str("request_id", reqID).Str("language", lang.String()).Logger()
	start := time.Now()

	cmd := exec.CommandContext(ctx, s.bin, s.args...)
	cmd.Stdin = strings.NewReader(Request(grammar, command))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	log.Debug().Str("bin", s.bin).Strs("args", s.args).Str("command", command).Msg("linearize request")
	runErr := cmd.Run()

	errText := strings.TrimSpace(stderr.String())
	if errText != "" {
		linErr := &prescription.LinearizerError{Output: errText}
		log.Warn().Dur("latency", time.Since(start)).Str("stderr", errText).Msg("linearizer reported an error")
		return linErr.Error(), linErr
	}

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) || ctx.Err() != nil {
			linErr := &prescription.LinearizerError{Err: runErr}
			if ctx.Err() != nil {
				linErr.Err = fmt.Errorf("%w: %v", ctx.Err(), runErr)
			}
			log.Error().Err(runErr).Dur("latency", time.Since(start)).Msg("linearizer failed")
			return linErr.Error(), linErr
		}
		// A silent non-zero exit still counts as an answer.
		log.Warn().Int("exit_code", exitErr.ExitCode()).Msg("linearizer exited non-zero")
	}

	out := strings.TrimSpace(stdout.String())
	log.Info().Dur("latency", time.Since(start)).Int("bytes", len(out)).Msg("linearize response")
	return out, nil
}
