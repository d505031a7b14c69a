package grid

import (
	"fmt"
	"io"
	"log"
	"os"
)

// Mode selects the run-time checking stance for all buffer accessors.
type Mode int32

const (
	// Checked enables bounds checking on every accessor and range
	// clamping (with a warning) on every setter. This is the default.
	Checked Mode = iota

	// Fast disables bounds checking and range clamping entirely.
	// Values are stored verbatim; out-of-bounds access behaves like any
	// out-of-range slice access.
	Fast
)

var mode = Checked

// SetMode switches the process-wide checking stance and returns the
// previous one.
func SetMode(m Mode) Mode {
	prev := mode
	mode = m
	return prev
}

// CurrentMode reports the active checking stance.
func CurrentMode() Mode { return mode }

var warnLog = log.New(os.Stderr, "warning: ", 0)

// SetWarningOutput redirects range-clamp warnings, e.g. to a buffer in
// tests or io.Discard to silence them.
func SetWarningOutput(w io.Writer) {
	warnLog.SetOutput(w)
}

// Warnf logs a recoverable condition through the package warning sink.
func Warnf(format string, args ...any) {
	warnLog.Printf(format, args...)
}

func fatalf(format string, args ...any) {
	panic("grid: " + fmt.Sprintf(format, args...))
}
