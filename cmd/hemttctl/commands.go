package main

import (
	"github.com/spf13/cobra"

	"github.com/hemttools/hemttctl/internal/command"
)

// general assembles the options every subcommand shares, layering the
// persistent flags over the saved preferences.
func (c *cli) general() command.General {
	return command.General{
		Verbose: c.verbose || c.mgr.Settings().Verbose,
		Threads: c.threads,
	}
}

func newCheckCommand(c *cli) *cobra.Command {
	var (
		pedantic bool
		lints    string
	)
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run `hemtt check` against the project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := command.Check{
				General:  c.general(),
				Pedantic: pedantic || c.mgr.Settings().Pedantic,
				Lints:    command.SplitList(lints),
			}
			return c.executeHemtt(opts.Args())
		},
	}
	cmd.Flags().BoolVarP(&pedantic, "pedantic", "p", false, "enable pedantic lints")
	cmd.Flags().StringVarP(&lints, "lints", "L", "", "comma-separated lints to enable")
	return cmd
}

// buildFlagSet holds the flags shared by dev, build, and launch.
type buildFlagSet struct {
	binarize     bool
	noRap        bool
	allOptionals bool
	optionals    string
}

func (f *buildFlagSet) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.binarize, "binarize", "b", false, "binarize the project")
	cmd.Flags().BoolVar(&f.noRap, "no-rap", false, "do not rapify configs")
	cmd.Flags().BoolVarP(&f.allOptionals, "all-optionals", "O", false, "include all optional addons")
	cmd.Flags().StringVarP(&f.optionals, "optional", "o", "", "comma-separated optional addons to include")
}

func newDevCommand(c *cli) *cobra.Command {
	var (
		flags buildFlagSet
		just  string
	)
	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Run `hemtt dev` (development build)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := command.Dev{General: c.general(), Just: command.SplitList(just)}
			opts.Binarize = flags.binarize
			opts.NoRap = flags.noRap
			opts.AllOptionals = flags.allOptionals
			opts.Optionals = command.SplitList(flags.optionals)
			return c.executeHemtt(opts.Args())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&just, "just", "", "comma-separated addons to build alone")
	return cmd
}

func newBuildCommand(c *cli) *cobra.Command {
	var (
		flags buildFlagSet
		just  string
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Run `hemtt build` (release-structure build)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := command.BuildCmd{General: c.general(), Just: command.SplitList(just)}
			opts.Binarize = flags.binarize
			opts.NoRap = flags.noRap
			opts.AllOptionals = flags.allOptionals
			opts.Optionals = command.SplitList(flags.optionals)
			return c.executeHemtt(opts.Args())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&just, "just", "", "comma-separated addons to build alone")
	return cmd
}

func newLaunchCommand(c *cli) *cobra.Command {
	var (
		flags          buildFlagSet
		profile        string
		quickStart     bool
		noFilePatching bool
		executable     string
		instances      int
	)
	cmd := &cobra.Command{
		Use:   "launch [-- game-args...]",
		Short: "Run `hemtt launch` (start the game with the dev build)",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := command.Launch{
				General:        c.general(),
				Profile:        profile,
				QuickStart:     quickStart,
				NoFilePatching: noFilePatching,
				Binarize:       flags.binarize,
				AllOptionals:   flags.allOptionals,
				NoRap:          flags.noRap,
				Executable:     executable,
				Instances:      instances,
				Optionals:      command.SplitList(flags.optionals),
				Passthrough:    args,
			}
			return c.executeHemtt(opts.Args())
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&profile, "profile", "default", "launch profile")
	cmd.Flags().BoolVarP(&quickStart, "quick-start", "Q", false, "skip to the main menu")
	cmd.Flags().BoolVarP(&noFilePatching, "no-file-patching", "F", false, "disable file patching")
	cmd.Flags().StringVarP(&executable, "executable", "e", "", "game executable to launch")
	cmd.Flags().IntVarP(&instances, "instances", "i", 1, "number of game instances")
	return cmd
}

func newReleaseCommand(c *cli) *cobra.Command {
	var noBin, noRap, noSign, noArchive bool
	cmd := &cobra.Command{
		Use:   "release",
		Short: "Run `hemtt release` (signed release build)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := command.Release{
				General:   c.general(),
				NoBin:     noBin,
				NoRap:     noRap,
				NoSign:    noSign,
				NoArchive: noArchive,
			}
			return c.executeHemtt(opts.Args())
		},
	}
	cmd.Flags().BoolVar(&noBin, "no-bin", false, "do not binarize")
	cmd.Flags().BoolVar(&noRap, "no-rap", false, "do not rapify configs")
	cmd.Flags().BoolVar(&noSign, "no-sign", false, "do not sign addons")
	cmd.Flags().BoolVar(&noArchive, "no-archive", false, "do not create the release archive")
	return cmd
}

func newLnCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ln",
		Short: "Localization helpers",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "sort",
			Short: "Run `hemtt ln sort` (sort stringtables)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.executeHemtt(append([]string{"ln", "sort"}, c.general().Flags()...))
			},
		},
		&cobra.Command{
			Use:   "coverage",
			Short: "Run `hemtt ln coverage` (translation coverage report)",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.executeHemtt(append([]string{"ln", "coverage"}, c.general().Flags()...))
			},
		},
	)
	return cmd
}

func newUtilsCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "utils",
		Short: "HEMTT utility subcommands",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "fnl",
		Short: "Run `hemtt utils fnl` (fix file newlines)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.executeHemtt(append([]string{"utils", "fnl"}, c.general().Flags()...))
		},
	})
	return cmd
}

// newRunCommand passes arbitrary arguments straight through for
// subcommands without a dedicated wrapper.
func newRunCommand(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "run [args...]",
		Short: "Run hemtt with custom arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.executeHemtt(args)
		},
	}
}

// newToolCommand installs or upgrades HEMTT itself through winget.
func newToolCommand(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tool",
		Short: "Manage the HEMTT installation",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "install",
			Short: "Install HEMTT via winget",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.executeTool("winget", []string{"install", "--id", "BrettMayson.HEMTT", "-e"})
			},
		},
		&cobra.Command{
			Use:   "upgrade",
			Short: "Upgrade HEMTT via winget",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.executeTool("winget", []string{"upgrade", "--id", "BrettMayson.HEMTT", "-e"})
			},
		},
	)
	return cmd
}
