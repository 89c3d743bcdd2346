package output

import (
	"github.com/alexisbeaulieu97/consolekit/pkg/color"
	"github.com/alexisbeaulieu97/consolekit/pkg/diff"
)

// DiffColors colors the lines of a diff by kind.
type DiffColors struct {
	Equal  color.Pair
	Delete color.Pair
	Insert color.Pair
}

// DefaultDiffColors shows removed lines in red and added lines in green.
func DefaultDiffColors() DiffColors {
	return DiffColors{
		Delete: color.Fg(color.Red),
		Insert: color.Fg(color.Green),
	}
}

func (d DiffColors) pair(op diff.Op) color.Pair {
	switch op {
	case diff.Delete:
		return d.Delete
	case diff.Insert:
		return d.Insert
	default:
		return d.Equal
	}
}

// WriteDiff writes the line diff from expected to actual, one prefixed line
// per diff line. A line that ends its text without a newline is followed by
// diff.NoNewlineMarker in the equal color. It reports whether the texts differ.
func (c *Console) WriteDiff(expected, actual string, colors DiffColors) (bool, error) {
	lines := diff.Lines(expected, actual)
	c.log.Debug("writing diff", "lines", len(lines))
	for _, l := range lines {
		if err := c.WriteLineColor(l.String(), colors.pair(l.Op)); err != nil {
			return false, err
		}
		if l.NoNewline {
			if err := c.WriteLineColor(diff.NoNewlineMarker, colors.Equal); err != nil {
				return false, err
			}
		}
	}
	return diff.Changed(lines), nil
}
