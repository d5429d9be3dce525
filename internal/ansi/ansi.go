// Package ansi strips terminal escape sequences from process output.
//
// Build tools color their output with VT100/CSI sequences; those bytes
// corrupt keyword matching and plain-text display, so every line is run
// through Strip before it leaves the supervisor.
package ansi

import "regexp"

// Matches CSI sequences (ESC [ params intermediates final) and the
// remaining two-byte ESC sequences (ESC @ through ESC _).
var escape = regexp.MustCompile(`\x1b(?:[@-Z\\-_]|\[[0-?]*[ -/]*[@-~])`)

// Strip removes all ANSI escape sequences from text. Non-escape bytes,
// including the trailing newline, pass through untouched. Stripping
// already-clean text returns it unchanged.
func Strip(text string) string {
	if !ContainsEscape(text) {
		return text
	}
	return escape.ReplaceAllString(text, "")
}

// ContainsEscape reports whether text holds at least one ESC byte.
func ContainsEscape(text string) bool {
	for i := 0; i < len(text); i++ {
		if text[i] == 0x1b {
			return true
		}
	}
	return false
}
