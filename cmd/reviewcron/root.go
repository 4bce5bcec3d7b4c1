package main

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "reviewcron",
	Short: "Reviewcron - Review processing cron registrar",
	Long: `Reviewcron registers the periodic review-processing job with the
system crontab. It installs exactly one entry, replaces prior
registrations instead of duplicating them, and leaves every unrelated
crontab line untouched. It is a single-shot tool meant to be invoked by
deployment tooling.`,
	Version: Version,
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
