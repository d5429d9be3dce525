package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hemttools/hemttctl/internal/app"
	"github.com/hemttools/hemttctl/internal/infrastructure/config"
	"github.com/hemttools/hemttctl/internal/infrastructure/logging"
	"github.com/hemttools/hemttctl/internal/store"
)

// cli bundles the wiring every subcommand needs.
type cli struct {
	cfg          *config.Config
	log          *zap.Logger
	mgr          *app.Manager
	settingsPath string

	// persistent flags
	verbose    bool
	threads    int
	hemttPath  string
	projectDir string
	noConfirm  bool
	logFile    string
}

func newRootCommand() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "hemttctl",
		Short: "Run HEMTT commands with supervised, colorized output",
		Long: `hemttctl wraps the HEMTT build tool for Arma mods. It builds the
command line from flags and saved settings, streams the tool's output
with severity coloring, and reports the exit code. One command runs at
a time; Ctrl-C requests a graceful cancel before killing the child.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.setup(cmd)
		},
	}

	flags := root.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "pass -v to hemtt")
	flags.IntVarP(&c.threads, "threads", "t", 0, "worker threads for hemtt (-t)")
	flags.StringVar(&c.hemttPath, "hemtt", "", "hemtt executable (overrides saved setting)")
	flags.StringVar(&c.projectDir, "project", "", "project directory (overrides saved setting)")
	flags.BoolVar(&c.noConfirm, "no-confirm", false, "never prompt; continue on PATH-resolution warnings")
	flags.StringVar(&c.logFile, "log-file", "", "also write the run transcript to this file")

	root.AddCommand(
		newCheckCommand(c),
		newDevCommand(c),
		newBuildCommand(c),
		newLaunchCommand(c),
		newReleaseCommand(c),
		newLnCommand(c),
		newUtilsCommand(c),
		newRunCommand(c),
		newToolCommand(c),
		newConfigCommand(c),
	)
	return root
}

// setup builds the logger, settings store, and controller once per
// invocation, then layers flag overrides on top of the saved settings.
func (c *cli) setup(cmd *cobra.Command) {
	c.cfg = config.LoadOrDefault()

	log, err := logging.New(logging.Config{
		Level:       c.cfg.Logging.Level,
		Development: c.cfg.Logging.Development,
	})
	if err != nil {
		log = zap.NewNop()
	}
	c.log = log

	path := c.cfg.Settings.Path
	if path == "" {
		path = store.DefaultPath()
	}
	c.settingsPath = path
	c.mgr = app.NewManager(store.New(path, log), log)

	if c.hemttPath != "" || c.projectDir != "" {
		c.mgr.UpdateSettings(func(s *store.Settings) {
			if c.hemttPath != "" {
				s.HemttPath = c.hemttPath
			}
			if c.projectDir != "" {
				s.ProjectDir = c.projectDir
			}
		})
	}

	if c.noConfirm {
		c.mgr.Confirm = nil // proceed without asking
	} else {
		c.mgr.Confirm = c.promptYesNo
	}
}

// promptYesNo asks on the terminal; anything but y/yes declines.
func (c *cli) promptYesNo(prompt string) bool {
	fmt.Fprintf(os.Stderr, "%s [y/N] ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
