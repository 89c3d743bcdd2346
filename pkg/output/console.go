// Package output writes colored text, tables, message boxes, lists and
// wrapped paragraphs to a terminal stream.
//
// A Console keeps an ambient color, the equivalent of a terminal's current
// foreground/background. Every colorized write applies its color on top of
// the ambient one and restores the previous ambient color before returning,
// whether or not the write succeeded.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/consolekit/internal/logger"
	"github.com/alexisbeaulieu97/consolekit/pkg/color"
)

// DefaultWidth is used when the writer is not a terminal and no width is given.
const DefaultWidth = 80

// Options configures a Console.
type Options struct {
	// Writer receives all output. Defaults to os.Stdout.
	Writer io.Writer
	// Width is the console width in cells. Zero means detect it.
	Width int
	// NoColor disables styling entirely.
	NoColor bool
	// Profile forces a color profile instead of detecting one.
	Profile *termenv.Profile
	// Logger receives debug events about rendering. May be nil.
	Logger *logger.Logger
}

// Console renders to a single writer. It is not safe for concurrent use.
type Console struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	term     *termenv.Output
	profile  termenv.Profile
	width    int
	current  color.Pair
	log      *logger.Logger
}

type fdWriter interface {
	io.Writer
	Fd() uintptr
}

// New creates a console from opts.
func New(opts Options) *Console {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	profile := detectProfile(w, opts.NoColor)
	if opts.Profile != nil {
		profile = *opts.Profile
	}

	width := opts.Width
	if width <= 0 {
		width = detectWidth(w)
	}

	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	c := &Console{
		w:        w,
		renderer: renderer,
		term:     termenv.NewOutput(w, termenv.WithProfile(profile)),
		profile:  profile,
		width:    width,
		log:      opts.Logger.Component("output"),
	}
	c.log.Debug("console ready", "profile", profileName(profile), "width", width)
	return c
}

func detectProfile(w io.Writer, noColor bool) termenv.Profile {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	f, ok := w.(fdWriter)
	if !ok || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

func detectWidth(w io.Writer) int {
	f, ok := w.(fdWriter)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

func profileName(p termenv.Profile) string {
	switch p {
	case termenv.TrueColor:
		return "truecolor"
	case termenv.ANSI256:
		return "ansi256"
	case termenv.ANSI:
		return "ansi"
	default:
		return "ascii"
	}
}

// Width returns the console width in cells.
func (c *Console) Width() int {
	return c.width
}

// Profile returns the color profile used for styling.
func (c *Console) Profile() termenv.Profile {
	return c.profile
}

// Color returns the ambient color.
func (c *Console) Color() color.Pair {
	return c.current
}

// SetColor replaces the ambient color used by uncolored writes.
func (c *Console) SetColor(p color.Pair) {
	c.current = p
}

// ResetColor clears the ambient color.
func (c *Console) ResetColor() {
	c.current = color.Pair{}
}

// withColor runs fn with p layered over the ambient color and restores the
// previous ambient color afterwards.
func (c *Console) withColor(p color.Pair, fn func() error) error {
	saved := c.current
	c.current = p.Over(saved)
	defer func() { c.current = saved }()
	return fn()
}

// span writes text styled with the ambient color.
func (c *Console) span(text string) error {
	if text == "" {
		return nil
	}
	if c.profile == termenv.Ascii || c.current.IsZero() {
		_, err := io.WriteString(c.w, text)
		return err
	}

	// lipgloss pads multi-line blocks to a common width, so style each line
	// on its own.
	style := c.current.Style(c.renderer.NewStyle().TabWidth(lipgloss.NoTabConversion))
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	_, err := io.WriteString(c.w, strings.Join(lines, "\n"))
	return err
}

// Write writes text in the ambient color.
func (c *Console) Write(text string) error {
	return c.span(text)
}

// WriteColor writes text in p.
func (c *Console) WriteColor(text string, p color.Pair) error {
	return c.withColor(p, func() error {
		return c.span(text)
	})
}

// WriteLine writes text followed by a line break.
func (c *Console) WriteLine(text string) error {
	if err := c.span(text); err != nil {
		return err
	}
	return c.NewLine()
}

// WriteLineColor writes text in p followed by a line break.
func (c *Console) WriteLineColor(text string, p color.Pair) error {
	return c.withColor(p, func() error {
		return c.WriteLine(text)
	})
}

// NewLine ends the current line.
func (c *Console) NewLine() error {
	_, err := io.WriteString(c.w, "\n")
	return err
}

// WriteBlankLines writes n empty lines.
func (c *Console) WriteBlankLines(n int) error {
	for i := 0; i < n; i++ {
		if err := c.NewLine(); err != nil {
			return err
		}
	}
	return nil
}

// Clear clears the screen and moves the cursor to the top-left corner.
func (c *Console) Clear() {
	c.term.ClearScreen()
}
