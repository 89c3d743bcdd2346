// Package border provides the line and corner characters used to frame
// tables and message boxes.
package border

import (
	"fmt"
	"strings"
)

// Style is the set of characters drawn around a box.
type Style interface {
	HorizontalLine() rune
	VerticalLine() rune
	LeftTop() rune
	RightTop() rune
	LeftBottom() rune
	RightBottom() rune
}

type runes struct {
	name        string
	horizontal  rune
	vertical    rune
	leftTop     rune
	rightTop    rune
	leftBottom  rune
	rightBottom rune
}

func (r runes) HorizontalLine() rune { return r.horizontal }
func (r runes) VerticalLine() rune   { return r.vertical }
func (r runes) LeftTop() rune        { return r.leftTop }
func (r runes) RightTop() rune       { return r.rightTop }
func (r runes) LeftBottom() rune     { return r.leftBottom }
func (r runes) RightBottom() rune    { return r.rightBottom }
func (r runes) String() string       { return r.name }

var (
	// Single draws light box lines.
	Single Style = runes{
		name:        "single",
		horizontal:  '─',
		vertical:    '│',
		leftTop:     '┌',
		rightTop:    '┐',
		leftBottom:  '└',
		rightBottom: '┘',
	}

	// Double draws double box lines. It is the default for tables and boxes.
	Double Style = runes{
		name:        "double",
		horizontal:  '═',
		vertical:    '║',
		leftTop:     '╔',
		rightTop:    '╗',
		leftBottom:  '╚',
		rightBottom: '╝',
	}

	// Simple draws plain ASCII lines for terminals without box glyphs.
	Simple Style = runes{
		name:        "simple",
		horizontal:  '-',
		vertical:    '|',
		leftTop:     '+',
		rightTop:    '+',
		leftBottom:  '+',
		rightBottom: '+',
	}
)

// Names lists the built-in style names accepted by ByName.
func Names() []string {
	return []string{"single", "double", "simple"}
}

// ByName returns a built-in style.
func ByName(name string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "single":
		return Single, nil
	case "double", "":
		return Double, nil
	case "simple", "ascii":
		return Simple, nil
	default:
		return nil, fmt.Errorf("unknown border style %q", name)
	}
}

// OrDefault returns s, or Double when s is nil.
func OrDefault(s Style) Style {
	if s == nil {
		return Double
	}
	return s
}

// Rule repeats the horizontal line character width times.
func Rule(s Style, width int) string {
	if width < 0 {
		width = 0
	}
	return strings.Repeat(string(s.HorizontalLine()), width)
}

// Top frames a rule with the top corners.
func Top(s Style, rule string) string {
	return string(s.LeftTop()) + rule + string(s.RightTop())
}

// Bottom frames a rule with the bottom corners.
func Bottom(s Style, rule string) string {
	return string(s.LeftBottom()) + rule + string(s.RightBottom())
}
