package utils

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
)

var _, enable_debug = os.LookupEnv("SCANBUF_DEBUG")

// Enabled reports whether SCANBUF_DEBUG is set, so callers can skip building
// expensive arguments.
func Enabled() bool {
	return enable_debug
}

func DPrint(format string, a ...any) {
	if !enable_debug {
		return
	}
	fmt.Fprintf(os.Stdout, "\033[0;31mDEBUG:\033[0m")
	fmt.Fprintf(os.Stdout, format, a...)
}

// DValue renders v the way DPrint shows it, e.g. byte windows as quoted
// strings rather than decimal slices.
func DValue(v any) string {
	return repr.String(v, repr.OmitEmpty(true))
}
