package util

import (
	"os"

	"github.com/fatih/color"
)

// IsTTY reports whether stdout is attached to a terminal. Piped or
// redirected output gets plain text.
func IsTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// InitColor disables colored output when asked to or when stdout is not a
// terminal. The NO_COLOR convention is honored as well.
func InitColor(noColor bool) {
	if noColor || !IsTTY() {
		color.NoColor = true
		return
	}
	if _, set := os.LookupEnv("NO_COLOR"); set {
		color.NoColor = true
	}
}
