package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fusionsystems/reviewcron/internal/config"
	"github.com/fusionsystems/reviewcron/internal/constants"
	"github.com/fusionsystems/reviewcron/internal/doctor"
	"github.com/fusionsystems/reviewcron/internal/messages"
)

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run preflight checks for the install environment",
	Long: `Check everything an install depends on without touching the
crontab: the crontab tool, project path, interpreter, log directory
writability, environment mode recognition, tier file validity and
notification settings. Exits non-zero when a check fails; warnings do
not fail the run.`,
	Run: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) {
	// Doctor reads the same .env surface install would, so its verdict
	// matches what an install in this shell actually does.
	if err := config.LoadEnvOptional(constants.DefaultEnvPath); err != nil {
		fmt.Fprintf(os.Stderr, constants.MsgErrorConfig, err)
		os.Exit(1)
	}

	cfg := config.FromEnv()

	results := doctor.Run(cfg)
	fmt.Print(messages.FormatDoctorReport(doctor.EnvReport(), results))

	if !doctor.Passed(results) {
		os.Exit(1)
	}
}
