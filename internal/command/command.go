// Package command assembles argument vectors for the wrapped HEMTT CLI.
//
// Option structs mirror the flags each subcommand accepts; Args turns
// them into the exact flag sequence HEMTT expects. Build prepends the
// executable, producing the vector handed to the process supervisor.
package command

import "strings"

// Build returns the full command vector: the executable followed by args,
// in order, with nothing added or dropped. The input slice is copied so
// later mutation by the caller cannot reach a running supervisor.
func Build(executable string, args []string) []string {
	cmd := make([]string, 0, len(args)+1)
	cmd = append(cmd, executable)
	cmd = append(cmd, args...)
	return cmd
}

// SplitList expands a comma-separated field into trimmed values,
// dropping empties. "a, b,,c" becomes ["a" "b" "c"].
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
