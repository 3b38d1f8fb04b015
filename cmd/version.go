package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number and build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "rx-tui v%s (%s)\n", version, build)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// no config or log file needed
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
