package diff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxChangedLines = 200
	truncateMessage = "... (diff truncated) ..."
)

// Lines compares before and after line by line and returns the changed lines,
// removals prefixed with "-" and additions with "+", in document order.
// Returns nil if the texts are identical.
func Lines(before, after string) []string {
	if before == after {
		return nil
	}

	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArray)

	var out []string
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}

		for _, line := range strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n") {
			if len(out) == maxChangedLines {
				return append(out, truncateMessage)
			}
			out = append(out, prefix+line)
		}
	}
	return out
}

// Unified renders the changes between before and after under ---/+++ headers.
// Returns an empty string if the texts are identical.
func Unified(before, after, beforeLabel, afterLabel string) string {
	lines := Lines(before, after)
	if len(lines) == 0 {
		return ""
	}

	var buf strings.Builder
	buf.WriteString("--- " + beforeLabel + "\n")
	buf.WriteString("+++ " + afterLabel + "\n")
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteString("\n")
	}
	return buf.String()
}
