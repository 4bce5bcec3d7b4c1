package version

import "fmt"

var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// SetInfo overrides the build metadata. Empty values keep the defaults so a
// plain `go build` still reports something sensible.
func SetInfo(v, bt, gc string) {
	if v != "" {
		Version = v
	}
	if bt != "" {
		BuildTime = bt
	}
	if gc != "" {
		GitCommit = gc
	}
}

// String returns the single-line form used in logs and notifications.
func String() string {
	return fmt.Sprintf("reviewcron %s (%s)", Version, GitCommit)
}
