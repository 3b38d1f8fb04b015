package cmd

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rx-tui/rx-tui/internal/config"
	"github.com/rx-tui/rx-tui/internal/linearizer"
	"github.com/rx-tui/rx-tui/internal/logging"
	"github.com/rx-tui/rx-tui/internal/prescription"
	"github.com/rx-tui/rx-tui/internal/store"
	"github.com/rx-tui/rx-tui/internal/sysinfo"
	form "github.com/rx-tui/rx-tui/views/prescription"
	"github.com/spf13/cobra"
)

var cfgFile, langFlag, modeFlag string
var version, build string

// Set up by PersistentPreRunE for every command except version.
var (
	cfg       *config.Config
	logger    zerolog.Logger
	logCloser io.Closer
	shell     *linearizer.Shell
)

// cleanExit flushes and closes the log file.
func cleanExit() error {
	if logCloser != nil {
		err := logCloser.Close()
		logCloser = nil
		return err
	}
	return nil
}

// rootCmd starts the interactive prescription form.
var rootCmd = &cobra.Command{
	Use:   "rx-tui",
	Short: "A terminal prescription entry form",
	Long: `rx-tui turns prescription sentences into table rows by mapping them to
grammar commands and running them through the GF linearizer.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		// Flags override the file and environment.
		if langFlag != "" {
			cfg.UI.Language = langFlag
		}
		if modeFlag != "" {
			cfg.UI.Mode = modeFlag
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, logCloser, err = logging.New(logging.Options{
			File:    cfg.Log.File,
			Level:   cfg.Log.Level,
			Console: cfg.Log.Console,
		})
		if err != nil {
			return err
		}

		shell = linearizer.NewShell(linearizer.Options{
			Bin:      cfg.Linearizer.Bin,
			Args:     cfg.Linearizer.Args,
			Grammars: cfg.GrammarFiles(),
			Timeout:  cfg.Linearizer.Timeout,
			Logger:   logger,
		})
		logger.Info().
			Str("version", version).
			Str("command", cmd.CalledAs()).
			Str("linearizer", cfg.Linearizer.Bin).
			Msg("starting")
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runForm()
	},
}

func runForm() error {
	lang, err := cfg.Language()
	if err != nil {
		return err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return err
	}

	status := "gf: not found"
	if path, ok := shell.Available(); ok {
		status = "gf: " + path
	} else {
		logger.Warn().Str("bin", cfg.Linearizer.Bin).Msg("linearizer binary not found on PATH")
	}

	rows := store.New()
	rows.OnAdd(func(r prescription.Row) {
		logger.Debug().Str("row_id", r.ID.String()).Strs("values", r.Values()).Msg("row stored")
	})

	pid := int32(os.Getpid())
	model := form.New(form.Deps{
		Linearizer:       shell,
		Store:            rows,
		Logger:           logger,
		State:            prescription.FormState{Language: lang, Mode: mode},
		LinearizerStatus: status,
		SampleSystem: func() (sysinfo.Snapshot, error) {
			return sysinfo.Sample(pid)
		},
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run form: %w", err)
	}
	logger.Info().Int("rows", rows.Len()).Msg("form closed")
	return nil
}

// Execute runs the root command. Called once by main.main with the version
// and build strings.
func Execute(versionArg string, buildArg string) {
	version = versionArg
	build = buildArg
	rootCmd.Version = versionArg
	defer cleanExit()
	if err := rootCmd.Execute(); err != nil {
		cleanExit()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config `file` (default ~/.rx-tui/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&langFlag, "lang", "", "grammar language: en or pt-BR")
	rootCmd.PersistentFlags().StringVar(&modeFlag, "mode", "", "input mode: free or guided")
}
