package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/hemttools/hemttctl/internal/runner"
	"github.com/hemttools/hemttctl/internal/severity"
)

// SGR codes for severity coloring of rendered lines.
const (
	sgrReset  = "\033[0m"
	sgrRed    = "\033[31m"
	sgrYellow = "\033[33m"
	sgrBlue   = "\033[34m"
)

const eventBuffer = 256

// executeHemtt runs the wrapped tool with the given arguments and
// renders its output until exit.
func (c *cli) executeHemtt(args []string) error {
	transcript, err := c.openTranscript()
	if err != nil {
		return err
	}

	sink := runner.NewEventSink(eventBuffer)
	runID, err := c.mgr.Run(args, sink)
	if err != nil {
		closeTranscript(transcript)
		return err
	}
	c.log.Debug("run admitted", zap.String("run_id", runID.String()))
	return c.render(sink, transcript)
}

// executeTool runs a helper executable (winget) under the same
// supervision.
func (c *cli) executeTool(executable string, args []string) error {
	transcript, err := c.openTranscript()
	if err != nil {
		return err
	}

	sink := runner.NewEventSink(eventBuffer)
	if _, err := c.mgr.RunTool(executable, args, sink); err != nil {
		closeTranscript(transcript)
		return err
	}
	return c.render(sink, transcript)
}

// openTranscript creates the --log-file target before the run is
// admitted, so a bad path fails fast instead of stranding a child.
func (c *cli) openTranscript() (*os.File, error) {
	if c.logFile == "" {
		return nil, nil
	}
	f, err := os.Create(c.logFile)
	if err != nil {
		return nil, fmt.Errorf("cannot create transcript: %w", err)
	}
	return f, nil
}

func closeTranscript(f *os.File) {
	if f != nil {
		f.Close()
	}
}

// render drains the event channel on the caller's goroutine, coloring
// lines by severity and relaying Ctrl-C as a cancellation request. It
// returns an exitCodeError when the child exited nonzero.
func (c *cli) render(sink *runner.EventSink, transcript *os.File) error {
	defer closeTranscript(transcript)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	go func() {
		if _, ok := <-interrupt; ok {
			fmt.Fprintln(os.Stdout, "\n[Cancellation requested]")
			c.mgr.Cancel()
		}
	}()

	colored := c.colorEnabled()
	exitCode := 0
	for ev := range sink.Events() {
		switch ev.Kind {
		case runner.EventLine:
			fmt.Fprint(os.Stdout, colorize(ev.Line, colored))
			if transcript != nil {
				transcript.WriteString(ev.Line)
			}
		case runner.EventExit:
			exitCode = ev.Code
		}
	}

	trailer := fmt.Sprintf("\n[Process exited with code %d] (%.1fs)\n", exitCode, c.mgr.Elapsed().Seconds())
	fmt.Fprint(os.Stdout, trailer)
	if transcript != nil {
		transcript.WriteString(trailer)
	}

	if exitCode != 0 {
		return &exitCodeError{code: exitCode}
	}
	return nil
}

func (c *cli) colorEnabled() bool {
	return !c.cfg.NoColor && term.IsTerminal(int(os.Stdout.Fd()))
}

// colorize wraps a line in the SGR color for its severity. The trailing
// newline stays outside the colored span so the reset lands before the
// line break.
func colorize(line string, enabled bool) string {
	if !enabled {
		return line
	}
	var color string
	switch severity.Classify(line) {
	case severity.Error:
		color = sgrRed
	case severity.Warning:
		color = sgrYellow
	case severity.Info:
		color = sgrBlue
	default:
		return line
	}
	body := strings.TrimSuffix(line, "\n")
	suffix := line[len(body):]
	return color + body + sgrReset + suffix
}
