// Command hemttctl drives the HEMTT build tool: it assembles the
// argument vector from flags and persisted settings, supervises the
// child process, and renders its output with severity coloring.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	err := newRootCommand().Execute()
	if err == nil {
		return
	}

	// A nonzero child exit propagates as the CLI's own exit code; any
	// other error is a CLI failure.
	var exit *exitCodeError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

// exitCodeError carries the wrapped tool's exit code up to main.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("process exited with code %d", e.code)
}
