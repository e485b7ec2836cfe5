package buildinfo

import "fmt"

// Set via -ldflags at release time.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("devapp %s (commit=%s, date=%s)", Version, Commit, Date)
}
