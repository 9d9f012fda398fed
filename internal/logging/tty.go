package logging

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// ColorEnv forces color on ("always") or off ("never") regardless of the
// terminal. NO_COLOR still wins.
const ColorEnv = "OCMIGRATE_COLOR"

// IsTTY reports whether w is a terminal. Only writers exposing a file
// descriptor (such as *os.File) can be terminals.
func IsTTY(w io.Writer) bool {
	fd, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(fd.Fd()))
}

// SupportsColor reports whether ANSI colors should be written to w.
func SupportsColor(w io.Writer) bool {
	return colorFor(IsTTY(w))
}

// colorFor applies the environment to a terminal check, in order:
// NO_COLOR (https://no-color.org), ColorEnv, then TERM=dumb.
func colorFor(isTTY bool) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	switch os.Getenv(ColorEnv) {
	case "always":
		return true
	case "never":
		return false
	}
	return isTTY && os.Getenv("TERM") != "dumb"
}

// ConfigureColor sets the package-wide fatih/color switch for output written
// to w. The run summary printed on stdout goes through fatih/color directly,
// so this keeps it plain when stdout is redirected.
func ConfigureColor(w io.Writer) {
	color.NoColor = !SupportsColor(w)
}
