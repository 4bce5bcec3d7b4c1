package doctor

import (
	"fmt"
	"os"
	"strings"

	"github.com/fusionsystems/reviewcron/internal/constants"
)

// maskedMaxStars caps the asterisk run shown for a secret value.
const maskedMaxStars = 8

// displayMaxLen is where non-secret values get truncated for display.
const displayMaxLen = 30

// secretKeywords flag variables whose values never appear unmasked.
var secretKeywords = []string{"password", "secret", "token", "key"}

// EnvVar is one row of the environment report.
type EnvVar struct {
	Name string
	Set  bool
	// Display is safe to print: secrets are masked, long values truncated.
	Display string
}

// EnvReport lists every variable the registrar consumes, in the order an
// operator expects to scan them.
func EnvReport() []EnvVar {
	names := []string{
		constants.EnvProjectPath,
		constants.EnvPythonPath,
		constants.EnvEnvironment,
		constants.EnvTierFile,
		constants.EnvTextfileDir,
		constants.EnvLogLevel,
		constants.EnvLogFormat,
		constants.EnvTelegramToken,
		constants.EnvTelegramChatID,
	}

	report := make([]EnvVar, 0, len(names))
	for _, name := range names {
		value, set := os.LookupEnv(name)
		report = append(report, EnvVar{
			Name:    name,
			Set:     set,
			Display: displayValue(name, value),
		})
	}
	return report
}

// displayValue renders a value for the report. Values of variables whose
// name suggests a credential show only a length hint.
func displayValue(name, value string) string {
	if value == "" {
		return ""
	}

	lower := strings.ToLower(name)
	for _, keyword := range secretKeywords {
		if strings.Contains(lower, keyword) {
			stars := len(value)
			if stars > maskedMaxStars {
				stars = maskedMaxStars
			}
			return fmt.Sprintf("%s... (%d chars)", strings.Repeat("*", stars), len(value))
		}
	}

	if len(value) > displayMaxLen {
		return value[:displayMaxLen] + "..."
	}
	return value
}
