package messages

import (
	"fmt"
	"strings"

	"github.com/fusionsystems/reviewcron/internal/constants"
)

// FormatValidationErrors formats configuration validation failures as a
// bulleted list under one header. An empty slice formats to nothing.
func FormatValidationErrors(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	builder := &strings.Builder{}

	builder.WriteString(constants.MsgConfigValidationError)
	for _, err := range errs {
		builder.WriteString(fmt.Sprintf(constants.MsgConfigValidatePrefix, err))
	}

	return builder.String()
}
