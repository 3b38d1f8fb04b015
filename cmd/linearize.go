package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rx-tui/rx-tui/internal/extractor"
	"github.com/rx-tui/rx-tui/internal/mapper"
	"github.com/rx-tui/rx-tui/internal/store"
	"github.com/spf13/cobra"
)

var showCommand bool

var linearizeCmd = &cobra.Command{
	Use:   "linearize <sentence...>",
	Short: "Run one prescription sentence through the linearizer and print the row",
	Long: `Maps a free-text prescription such as "Apply 2 drops to the affected eye
twice a day" to a grammar command, linearizes it and prints the extracted row.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		command, err := mapper.Map(strings.Join(args, " "))
		if err != nil {
			return err
		}

		lang, err := cfg.Language()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if showCommand {
			fmt.Fprintf(out, "Command: %s\n", command)
		}

		result, err := shell.Linearize(cmd.Context(), lang, command.String())
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "GF Output: %s\n", result)

		row := extractor.Extract(result)
		logger.Info().Str("row_id", row.ID.String()).Msg("row extracted")

		t := table.New().
			Border(lipgloss.NormalBorder()).
			Headers(store.Headers...).
			Row(row.Values()...)
		fmt.Fprintln(out, t.Render())
		return nil
	},
}

func init() {
	linearizeCmd.Flags().BoolVar(&showCommand, "show-command", false, "print the mapped grammar command")
	rootCmd.AddCommand(linearizeCmd)
}
