package command

import "strconv"

// General holds the options every HEMTT subcommand accepts.
type General struct {
	Verbose bool
	Threads int
}

// Flags returns only the general flag portion, for subcommands that
// take no options of their own.
func (g General) Flags() []string {
	var args []string
	if g.Verbose {
		args = append(args, "-v")
	}
	if g.Threads > 0 {
		args = append(args, "-t", strconv.Itoa(g.Threads))
	}
	return args
}

// Check configures `hemtt check`.
type Check struct {
	General
	Pedantic bool
	Lints    []string
}

// Args returns the argument vector after the executable.
func (c Check) Args() []string {
	args := append([]string{"check"}, c.General.Flags()...)
	if c.Pedantic {
		args = append(args, "-p")
	}
	for _, lint := range c.Lints {
		args = append(args, "-L", lint)
	}
	return args
}

// buildFlags are the options shared by dev, build, and launch.
type buildFlags struct {
	Binarize     bool
	NoRap        bool
	AllOptionals bool
	Optionals    []string
}

func (b buildFlags) args() []string {
	var args []string
	if b.Binarize {
		args = append(args, "-b")
	}
	if b.NoRap {
		args = append(args, "--no-rap")
	}
	if b.AllOptionals {
		args = append(args, "-O")
	}
	for _, opt := range b.Optionals {
		args = append(args, "-o", opt)
	}
	return args
}

// Dev configures `hemtt dev`.
type Dev struct {
	General
	buildFlags
	Just []string
}

// Args returns the argument vector after the executable.
func (d Dev) Args() []string {
	args := append([]string{"dev"}, d.General.Flags()...)
	args = append(args, d.buildFlags.args()...)
	for _, j := range d.Just {
		args = append(args, "--just", j)
	}
	return args
}

// BuildCmd configures `hemtt build`.
type BuildCmd struct {
	General
	buildFlags
	Just []string
}

// Args returns the argument vector after the executable.
func (b BuildCmd) Args() []string {
	args := append([]string{"build"}, b.General.Flags()...)
	args = append(args, b.buildFlags.args()...)
	for _, j := range b.Just {
		args = append(args, "--just", j)
	}
	return args
}

// Launch configures `hemtt launch`: a game profile plus flags controlling
// how the game client is started against the dev build.
type Launch struct {
	General
	Profile        string
	QuickStart     bool
	NoFilePatching bool
	Binarize       bool
	AllOptionals   bool
	NoRap          bool
	Executable     string
	Instances      int
	Optionals      []string
	Passthrough    []string
}

// Args returns the argument vector after the executable. The profile is
// positional and omitted when it is the default; passthrough arguments go
// after a literal "--" exactly as typed.
func (l Launch) Args() []string {
	args := []string{"launch"}
	if l.Profile != "" && l.Profile != "default" {
		args = append(args, l.Profile)
	}
	args = append(args, l.General.Flags()...)
	if l.QuickStart {
		args = append(args, "-Q")
	}
	if l.NoFilePatching {
		args = append(args, "-F")
	}
	if l.Binarize {
		args = append(args, "-b")
	}
	if l.AllOptionals {
		args = append(args, "-O")
	}
	if l.NoRap {
		args = append(args, "--no-rap")
	}
	if l.Executable != "" {
		args = append(args, "-e", l.Executable)
	}
	if l.Instances > 1 {
		args = append(args, "-i", strconv.Itoa(l.Instances))
	}
	for _, opt := range l.Optionals {
		args = append(args, "-o", opt)
	}
	if len(l.Passthrough) > 0 {
		args = append(args, "--")
		args = append(args, l.Passthrough...)
	}
	return args
}

// Release configures `hemtt release`.
type Release struct {
	General
	NoBin     bool
	NoRap     bool
	NoSign    bool
	NoArchive bool
}

// Args returns the argument vector after the executable.
func (r Release) Args() []string {
	args := append([]string{"release"}, r.General.Flags()...)
	if r.NoBin {
		args = append(args, "--no-bin")
	}
	if r.NoRap {
		args = append(args, "--no-rap")
	}
	if r.NoSign {
		args = append(args, "--no-sign")
	}
	if r.NoArchive {
		args = append(args, "--no-archive")
	}
	return args
}
