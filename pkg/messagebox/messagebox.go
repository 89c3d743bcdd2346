// Package messagebox holds a block of text that is rendered inside a border.
package messagebox

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/alexisbeaulieu97/consolekit/pkg/border"
	"github.com/alexisbeaulieu97/consolekit/pkg/color"
	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
)

// MessageBox is a framed, possibly multi-line message. Zero color pairs render
// in the console's current color.
type MessageBox struct {
	text        string
	lines       []string
	textColor   color.Pair
	borderColor color.Pair
	border      border.Style
}

// New creates a message box for text. Lines are split on '\n'.
func New(text string) (*MessageBox, error) {
	if text == "" {
		return nil, apperrors.NewMissingArgumentError("text", "message box text cannot be empty")
	}
	return &MessageBox{
		text:   text,
		lines:  strings.Split(text, "\n"),
		border: border.Double,
	}, nil
}

// Text returns the original text.
func (m *MessageBox) Text() string {
	return m.text
}

// Lines returns a copy of the message lines.
func (m *MessageBox) Lines() []string {
	lines := make([]string, len(m.lines))
	copy(lines, m.lines)
	return lines
}

// WithTextColor sets the color of the message lines.
func (m *MessageBox) WithTextColor(p color.Pair) *MessageBox {
	m.textColor = p
	return m
}

// WithBorderColor sets the color of the frame.
func (m *MessageBox) WithBorderColor(p color.Pair) *MessageBox {
	m.borderColor = p
	return m
}

// WithBorder sets the frame characters. A nil style restores the default.
func (m *MessageBox) WithBorder(s border.Style) *MessageBox {
	m.border = border.OrDefault(s)
	return m
}

func (m *MessageBox) TextColor() color.Pair   { return m.textColor }
func (m *MessageBox) BorderColor() color.Pair { return m.borderColor }
func (m *MessageBox) Border() border.Style    { return m.border }

// Width returns the display width of the longest line.
func (m *MessageBox) Width() int {
	longest := 0
	for _, line := range m.lines {
		if w := runewidth.StringWidth(line); w > longest {
			longest = w
		}
	}
	return longest
}

// PaddedLines returns the lines right-padded to Width.
func (m *MessageBox) PaddedLines() []string {
	width := m.Width()
	padded := make([]string, len(m.lines))
	for i, line := range m.lines {
		padded[i] = runewidth.FillRight(line, width)
	}
	return padded
}
