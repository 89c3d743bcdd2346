// Package diff compares two blocks of text line by line.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."

	// NoNewlineMarker follows a line that ends its text without a newline.
	NoNewlineMarker = `\ No newline at end of file`
)

// Op says whether a line is shared, only in the expected text or only in
// the actual text.
type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

// Prefix returns the unified diff marker for op.
func (o Op) Prefix() string {
	switch o {
	case Delete:
		return "-"
	case Insert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of a diff, without its trailing newline. NoNewline is
// set on the last line of a text that does not end in a newline.
type Line struct {
	Op        Op
	Text      string
	NoNewline bool
}

func (l Line) String() string {
	return l.Op.Prefix() + l.Text
}

// Lines returns the line diff turning expected into actual. Identical
// inputs produce only Equal lines.
func Lines(expected, actual string) []Line {
	dmp := diffmatchpatch.New()
	a, b, lineArray := dmp.DiffLinesToChars(expected, actual)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var lines []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			op = Delete
		case diffmatchpatch.DiffInsert:
			op = Insert
		}
		split := splitLines(d.Text)
		for i, text := range split {
			lines = append(lines, Line{
				Op:        op,
				Text:      text,
				NoNewline: i == len(split)-1 && !strings.HasSuffix(d.Text, "\n"),
			})
		}
	}
	return lines
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Changed reports whether any line differs.
func Changed(lines []Line) bool {
	for _, l := range lines {
		if l.Op != Equal {
			return true
		}
	}
	return false
}

// Unified renders the diff as a single-hunk unified diff. It returns an
// empty string when the texts are identical and truncates diffs longer than
// 10,000 lines.
func Unified(expected, actual, expectedLabel, actualLabel string) string {
	if expected == actual {
		return ""
	}

	lines := Lines(expected, actual)
	expectedCount, actualCount := 0, 0
	for _, l := range lines {
		if l.Op != Insert {
			expectedCount++
		}
		if l.Op != Delete {
			actualCount++
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n", expectedLabel)
	fmt.Fprintf(&sb, "+++ %s\n", actualLabel)
	fmt.Fprintf(&sb, "@@ -1,%d +1,%d @@\n", expectedCount, actualCount)
	for i, l := range lines {
		if i == maxDiffLines {
			sb.WriteString(truncateMessage)
			sb.WriteString("\n")
			break
		}
		sb.WriteString(l.String())
		sb.WriteString("\n")
		if l.NoNewline {
			sb.WriteString(NoNewlineMarker)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
