package ansi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"sgr color", "\x1b[31merror\x1b[0m: bad config\n", "error: bad config\n"},
		{"bold and reset", "\x1b[1mBuilding\x1b[m addons\n", "Building addons\n"},
		{"256 color", "\x1b[38;5;208mwarning\x1b[0m", "warning"},
		{"cursor movement", "\x1b[2K\x1b[1Gprogress 50%", "progress 50%"},
		{"two byte escape", "\x1bMscrolled", "scrolled"},
		{"escape only", "\x1b[0m", ""},
		{"plain text", "hemtt build finished\n", "hemtt build finished\n"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Strip(tt.input))
		})
	}
}

func TestStripPreservesNewline(t *testing.T) {
	got := Strip("\x1b[32mdone\x1b[0m\n")
	assert.Equal(t, "done\n", got)
}

func TestStripIdempotent(t *testing.T) {
	inputs := []string{
		"plain line\n",
		"\x1b[31mred\x1b[0m line\n",
		"tabs\tand  spaces preserved",
	}
	for _, in := range inputs {
		once := Strip(in)
		assert.Equal(t, once, Strip(once))
	}
}

func TestContainsEscape(t *testing.T) {
	assert.True(t, ContainsEscape("\x1b[0m"))
	assert.False(t, ContainsEscape("no escapes here"))
	assert.False(t, ContainsEscape(""))
}
