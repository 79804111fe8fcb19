package app

import (
	"fmt"
	"io"
	"runtime"
)

// Build information, overridden with -ldflags "-X".
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// HasVersionFlag reports whether args request version output. Arguments
// after a "--" separator are operands and never count.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the build information for the named program.
func PrintVersion(out io.Writer, program string) {
	fmt.Fprintf(out, "%s %s (commit %s, built %s)\n", program, Version, Commit, BuildDate)
	fmt.Fprintf(out, "%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
