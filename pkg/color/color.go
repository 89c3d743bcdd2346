// Package color defines the foreground/background pairs applied to spans of
// console output.
package color

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// The sixteen console colors, numbered as the ANSI palette.
const (
	Black       = lipgloss.ANSIColor(0)
	DarkRed     = lipgloss.ANSIColor(1)
	DarkGreen   = lipgloss.ANSIColor(2)
	DarkYellow  = lipgloss.ANSIColor(3)
	DarkBlue    = lipgloss.ANSIColor(4)
	DarkMagenta = lipgloss.ANSIColor(5)
	DarkCyan    = lipgloss.ANSIColor(6)
	Gray        = lipgloss.ANSIColor(7)
	DarkGray    = lipgloss.ANSIColor(8)
	Red         = lipgloss.ANSIColor(9)
	Green       = lipgloss.ANSIColor(10)
	Yellow      = lipgloss.ANSIColor(11)
	Blue        = lipgloss.ANSIColor(12)
	Magenta     = lipgloss.ANSIColor(13)
	Cyan        = lipgloss.ANSIColor(14)
	White       = lipgloss.ANSIColor(15)
)

var named = map[string]lipgloss.ANSIColor{
	"black":       Black,
	"darkred":     DarkRed,
	"darkgreen":   DarkGreen,
	"darkyellow":  DarkYellow,
	"darkblue":    DarkBlue,
	"darkmagenta": DarkMagenta,
	"darkcyan":    DarkCyan,
	"gray":        Gray,
	"darkgray":    DarkGray,
	"red":         Red,
	"green":       Green,
	"yellow":      Yellow,
	"blue":        Blue,
	"magenta":     Magenta,
	"cyan":        Cyan,
	"white":       White,
}

var (
	hexPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	ansiPattern = regexp.MustCompile(`^(?:[0-9]|[1-9][0-9]|1[0-9][0-9]|2[0-4][0-9]|25[0-5])$`)
)

// Pair is a foreground/background combination. A nil half means the color is
// inherited from whatever is currently active on the console.
type Pair struct {
	Foreground lipgloss.TerminalColor
	Background lipgloss.TerminalColor
}

// Fg returns a pair that only sets the foreground.
func Fg(c lipgloss.TerminalColor) Pair {
	return Pair{Foreground: c}
}

// New returns a pair with both halves set.
func New(fg, bg lipgloss.TerminalColor) Pair {
	return Pair{Foreground: fg, Background: bg}
}

// IsZero reports whether neither half is set.
func (p Pair) IsZero() bool {
	return p.Foreground == nil && p.Background == nil
}

// Over fills the unset halves of p from base.
func (p Pair) Over(base Pair) Pair {
	if p.Foreground == nil {
		p.Foreground = base.Foreground
	}
	if p.Background == nil {
		p.Background = base.Background
	}
	return p
}

// Style applies the pair to a lipgloss style.
func (p Pair) Style(style lipgloss.Style) lipgloss.Style {
	if p.Foreground != nil {
		style = style.Foreground(p.Foreground)
	}
	if p.Background != nil {
		style = style.Background(p.Background)
	}
	return style
}

func (p Pair) String() string {
	return fmt.Sprintf("%s/%s", describe(p.Foreground), describe(p.Background))
}

func describe(c lipgloss.TerminalColor) string {
	switch v := c.(type) {
	case nil:
		return "-"
	case lipgloss.ANSIColor:
		for name, ansi := range named {
			if ansi == v {
				return name
			}
		}
		return fmt.Sprintf("%d", uint(v))
	case lipgloss.Color:
		return string(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Parse resolves a console color name (case-insensitive, e.g. "DarkBlue"),
// an ANSI index ("0"-"255") or a hex value ("#ff8800"). An empty string
// yields nil, meaning "inherit".
func Parse(s string) (lipgloss.TerminalColor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if c, ok := named[strings.ToLower(s)]; ok {
		return c, nil
	}
	if hexPattern.MatchString(s) || ansiPattern.MatchString(s) {
		return lipgloss.Color(s), nil
	}
	return nil, fmt.Errorf("unknown color %q", s)
}

// Valid reports whether Parse would accept s.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// Names lists the console color names accepted by Parse.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Rainbow is the default palette cycled by rainbow lines.
func Rainbow() []Pair {
	return []Pair{Fg(Red), Fg(Yellow), Fg(Blue), Fg(White)}
}
