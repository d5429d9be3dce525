package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckArgs(t *testing.T) {
	c := Check{
		General:  General{Verbose: true, Threads: 4},
		Pedantic: true,
		Lints:    []string{"l1", "l2"},
	}
	assert.Equal(t, []string{"check", "-v", "-t", "4", "-p", "-L", "l1", "-L", "l2"}, c.Args())
}

func TestCheckArgsDefaults(t *testing.T) {
	assert.Equal(t, []string{"check"}, Check{}.Args())
}

func TestDevArgs(t *testing.T) {
	d := Dev{
		buildFlags: buildFlags{
			Binarize:     true,
			NoRap:        true,
			AllOptionals: true,
			Optionals:    []string{"compat_a", "compat_b"},
		},
		Just: []string{"medical"},
	}
	assert.Equal(t, []string{
		"dev", "-b", "--no-rap", "-O",
		"-o", "compat_a", "-o", "compat_b",
		"--just", "medical",
	}, d.Args())
}

func TestBuildCmdArgs(t *testing.T) {
	b := BuildCmd{
		General:    General{Threads: 8},
		buildFlags: buildFlags{Binarize: true},
		Just:       []string{"core", "ui"},
	}
	assert.Equal(t, []string{"build", "-t", "8", "-b", "--just", "core", "--just", "ui"}, b.Args())
}

func TestReleaseArgs(t *testing.T) {
	r := Release{NoBin: true, NoRap: true, NoSign: true, NoArchive: true}
	assert.Equal(t, []string{"release", "--no-bin", "--no-rap", "--no-sign", "--no-archive"}, r.Args())
}

func TestLaunchArgs(t *testing.T) {
	l := Launch{
		Profile:        "vn",
		QuickStart:     true,
		NoFilePatching: true,
		Binarize:       true,
		AllOptionals:   true,
		NoRap:          true,
		Executable:     "arma3_x64.exe",
		Instances:      2,
		Optionals:      []string{"extra"},
		Passthrough:    []string{"-window", "-nosplash"},
	}
	assert.Equal(t, []string{
		"launch", "vn", "-Q", "-F", "-b", "-O", "--no-rap",
		"-e", "arma3_x64.exe", "-i", "2", "-o", "extra",
		"--", "-window", "-nosplash",
	}, l.Args())
}

// The default profile stays positional-free and a single instance needs
// no -i flag.
func TestLaunchArgsDefaults(t *testing.T) {
	assert.Equal(t, []string{"launch"}, Launch{Profile: "default", Instances: 1}.Args())
}
