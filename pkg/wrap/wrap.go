// Package wrap breaks text into lines of a fixed display width.
package wrap

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/wordwrap"
	hardwrap "github.com/muesli/reflow/wrap"

	"github.com/alexisbeaulieu97/consolekit/pkg/color"
)

// Options controls how text is wrapped.
type Options struct {
	// LineLength is the maximum line width. Values below one mean "use the
	// console width minus one" and are resolved by the console.
	LineLength int
	// PadEnds right-pads every line with spaces up to LineLength.
	PadEnds bool
	Color   color.Pair
}

// DefaultOptions pads line ends and leaves the length to the console.
func DefaultOptions() Options {
	return Options{PadEnds: true}
}

// WithLineLength returns a copy of o with length applied when o has none.
func (o Options) WithLineLength(length int) Options {
	if o.LineLength < 1 {
		o.LineLength = length
	}
	return o
}

// Lines wraps text at word boundaries. Words longer than a line are broken
// across lines and embedded newlines always start a new line. Leading spaces
// of a source line indent its first wrapped line. Carriage returns are
// dropped. With no usable LineLength the text is only split on newlines.
func Lines(text string, opts Options) []string {
	text = strings.ReplaceAll(text, "\r", "")
	if opts.LineLength < 1 {
		return strings.Split(text, "\n")
	}

	var lines []string
	for _, source := range strings.Split(text, "\n") {
		lines = append(lines, wrapLine(source, opts.LineLength)...)
	}

	for i, line := range lines {
		line = strings.TrimRight(line, " ")
		if opts.PadEnds {
			line = padding.String(line, uint(opts.LineLength))
		}
		lines[i] = line
	}
	return lines
}

// wrapLine wraps a single source line. The indent is kept on the first line
// only, and dropped when it leaves no room for text.
func wrapLine(source string, length int) []string {
	body := strings.TrimLeft(source, " ")
	if body == "" {
		return []string{""}
	}

	indent := source[:len(source)-len(body)]
	width := length - runewidth.StringWidth(indent)
	if width < 1 {
		indent, width = "", length
	}

	wrapped := hardwrap.String(wordwrap.String(body, width), width)
	lines := strings.Split(wrapped, "\n")
	lines[0] = indent + lines[0]
	return lines
}
