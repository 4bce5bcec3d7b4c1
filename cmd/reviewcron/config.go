package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fusionsystems/reviewcron/internal/constants"
	"github.com/fusionsystems/reviewcron/internal/schedule"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Validate the environment-derived configuration and the schedule tier file.`,
}

// configValidateCmd represents the config validate command
var configValidateCmd = &cobra.Command{
	Use:   "validate [tier-file]",
	Short: "Validate configuration and tier file",
	Long: `Validate the environment-derived configuration, then the schedule
tier file: the one given as argument, or the one REVIEWCRON_CONFIG points
to, or the built-in tier table when neither is set.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustValidConfig("")

		path := cfg.TierFile
		if len(args) > 0 {
			path = args[0]
		}

		table, err := schedule.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, constants.MsgErrorConfig, err)
			os.Exit(1)
		}

		fmt.Print(constants.MsgConfigValid)
		fmt.Printf(constants.MsgConfigTierCount, len(table.Modes()), table.Fallback())
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
}
