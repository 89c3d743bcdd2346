package output

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/consolekit/pkg/border"
	"github.com/alexisbeaulieu97/consolekit/pkg/color"
	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
	"github.com/alexisbeaulieu97/consolekit/pkg/list"
	"github.com/alexisbeaulieu97/consolekit/pkg/messagebox"
	"github.com/alexisbeaulieu97/consolekit/pkg/table"
	"github.com/alexisbeaulieu97/consolekit/pkg/wrap"
)

// WriteTable draws t framed by its border. Every cell is padded to the width
// of the longest value in the whole table.
func (c *Console) WriteTable(t *table.Table) error {
	if t == nil {
		return apperrors.NewMissingArgumentError("table", "")
	}

	style := t.Style()
	bs := border.OrDefault(style.Border)
	width := t.LongestValueLength()
	cellWidth := width + runewidth.StringWidth(style.Padding.Left) + runewidth.StringWidth(style.Padding.Right)
	rule := border.Rule(bs, t.Columns()*cellWidth)
	vertical := string(bs.VerticalLine())

	c.log.Debug("writing table", "columns", t.Columns(), "rows", t.Rows(), "value_width", width)

	if err := c.WriteLineColor(border.Top(bs, rule), style.BorderColor); err != nil {
		return err
	}
	for row := 0; row < t.Rows(); row++ {
		cells, err := t.Row(row)
		if err != nil {
			return err
		}
		if err := c.WriteColor(vertical, style.BorderColor); err != nil {
			return err
		}
		for _, cell := range cells {
			p := style.ValueColor
			if override, ok := cell.Color(); ok {
				p = override
			}
			if err := c.WriteColor(cell.Format(width, style.Padding.Left, style.Padding.Right), p); err != nil {
				return err
			}
		}
		if err := c.WriteLineColor(vertical, style.BorderColor); err != nil {
			return err
		}
	}
	return c.WriteLineColor(border.Bottom(bs, rule), style.BorderColor)
}

// WriteMessageBox draws m as a single framed column of its lines.
func (c *Console) WriteMessageBox(m *messagebox.MessageBox) error {
	if m == nil {
		return apperrors.NewMissingArgumentError("messageBox", "")
	}

	bs := m.Border()
	rule := border.Rule(bs, m.Width())
	vertical := string(bs.VerticalLine())

	if err := c.WriteLineColor(border.Top(bs, rule), m.BorderColor()); err != nil {
		return err
	}
	for _, line := range m.PaddedLines() {
		if err := c.WriteColor(vertical, m.BorderColor()); err != nil {
			return err
		}
		if err := c.WriteColor(line, m.TextColor()); err != nil {
			return err
		}
		if err := c.WriteLineColor(vertical, m.BorderColor()); err != nil {
			return err
		}
	}
	return c.WriteLineColor(border.Bottom(bs, rule), m.BorderColor())
}

// WriteList writes one line per list item in the list's item color.
func (c *Console) WriteList(l list.Formatter) error {
	if l == nil {
		return apperrors.NewMissingArgumentError("list", "")
	}
	for _, line := range l.Lines() {
		if err := c.WriteLineColor(line, l.ItemColor()); err != nil {
			return err
		}
	}
	return nil
}

// WriteWrap word-wraps text and writes each resulting line. A missing line
// length defaults to one less than the console width.
func (c *Console) WriteWrap(text string, opts wrap.Options) error {
	opts = opts.WithLineLength(c.width - 1)
	for _, line := range wrap.Lines(text, opts) {
		if err := c.WriteLineColor(line, opts.Color); err != nil {
			return err
		}
	}
	return nil
}

// WriteRainbowLine writes text cycling through red, yellow, blue and white,
// one character at a time, then ends the line.
func (c *Console) WriteRainbowLine(text string) error {
	return c.WriteRainbowLineColors(text, color.Rainbow())
}

// WriteRainbowLineColors is WriteRainbowLine with a custom palette.
func (c *Console) WriteRainbowLineColors(text string, colors []color.Pair) error {
	if len(colors) == 0 {
		return apperrors.NewMissingArgumentError("colors", "at least one color is required")
	}
	i := 0
	for _, r := range text {
		if err := c.WriteColor(string(r), colors[i]); err != nil {
			return err
		}
		i = (i + 1) % len(colors)
	}
	return c.NewLine()
}

// lineWidth is the usable width of a line; the last column is left free so
// a full line never triggers the terminal's automatic wrap.
func (c *Console) lineWidth() int {
	if c.width < 1 {
		return 0
	}
	return c.width - 1
}

// WriteAlignLeft writes text padded on the right to the line width.
func (c *Console) WriteAlignLeft(text string, p color.Pair) error {
	return c.WriteLineColor(runewidth.FillRight(text, c.lineWidth()), p)
}

// WriteAlignRight writes text padded on the left to the line width.
func (c *Console) WriteAlignRight(text string, p color.Pair) error {
	return c.WriteLineColor(runewidth.FillLeft(text, c.lineWidth()), p)
}

// WriteAlignCenter writes text centered on the line. When the free space is
// odd the extra space goes on the left.
func (c *Console) WriteAlignCenter(text string, p color.Pair) error {
	remaining := c.lineWidth() - runewidth.StringWidth(text)
	if remaining < 0 {
		remaining = 0
	}
	right := remaining / 2
	left := remaining - right

	return c.WriteLineColor(strings.Repeat(" ", left)+text+strings.Repeat(" ", right), p)
}

// WriteAlignToSides writes left at the start of the line and right at its end.
func (c *Console) WriteAlignToSides(left, right string, p color.Pair) error {
	gap := c.lineWidth() - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	if gap < 0 {
		gap = 0
	}
	return c.WriteLineColor(left+strings.Repeat(" ", gap)+right, p)
}

// WriteHorizontalLine fills the line width with ch, '-' when ch is zero.
func (c *Console) WriteHorizontalLine(ch rune, p color.Pair) error {
	if ch == 0 {
		ch = '-'
	}
	w := runewidth.RuneWidth(ch)
	if w < 1 {
		w = 1
	}
	return c.WriteLineColor(strings.Repeat(string(ch), c.lineWidth()/w), p)
}
