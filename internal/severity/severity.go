// Package severity tags process output lines for display coloring.
//
// Classification is keyword-based: each line is matched case-insensitively
// against fixed keyword sets, error before warning before info, first
// match wins. It is a display concern only; the supervisor never
// interprets the wrapped tool's output.
package severity

import "strings"

// Level is the display severity of a single output line.
type Level int

const (
	None Level = iota
	Info
	Warning
	Error
)

// String returns the lowercase tag name used for display styling.
func (l Level) String() string {
	switch l {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Info:
		return "info"
	default:
		return "none"
	}
}

var (
	errorKeywords   = []string{"error", "err:", "fatal", "failed", "failure"}
	warningKeywords = []string{"warning", "warn:", "caution"}
	infoKeywords    = []string{"info", "information", "note:", "hint:"}
)

// Classify returns the severity of one output line. Matching is on the
// lowercased line; the same line always yields the same level.
func Classify(line string) Level {
	lower := strings.ToLower(line)

	if containsAny(lower, errorKeywords) {
		return Error
	}
	if containsAny(lower, warningKeywords) {
		return Warning
	}
	if containsAny(lower, infoKeywords) {
		return Info
	}
	return None
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
