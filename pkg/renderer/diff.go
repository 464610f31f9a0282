package renderer

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff compares two renderings line by line. The text lists changed lines
// prefixed with "-" or "+"; unchanged lines are omitted.
func Diff(previous, current string) (text string, changed bool) {
	if previous == current {
		return text, changed
	}
	changed = true

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(previous, current)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var out strings.Builder
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

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			out.WriteString(prefix + strings.TrimSuffix(line, "\n") + "\n")
		}
	}

	text = out.String()
	return text, changed
}
