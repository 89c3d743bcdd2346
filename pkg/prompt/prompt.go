// Package prompt blocks until the user presses a key.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

const (
	AnyKeyMessage = "Press any key to continue..."
	EnterMessage  = "Press Enter to continue..."
)

var (
	// ErrInterrupted is returned when the user presses ctrl+c instead of
	// continuing.
	ErrInterrupted = errors.New("prompt interrupted")
	// ErrNoInput is returned when the input ends before a key is pressed.
	ErrNoInput = errors.New("input closed before a key was pressed")
)

type keyMap struct {
	Continue  key.Binding
	Interrupt key.Binding
}

func anyKeyMap() keyMap {
	return keyMap{
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func enterKeyMap() keyMap {
	return keyMap{
		Continue:  key.NewBinding(key.WithKeys("enter")),
		Interrupt: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// model waits for a single matching key press. A Continue binding without
// keys accepts any key.
type model struct {
	keys        keyMap
	continued   bool
	interrupted bool
	inputClosed bool
}

type inputClosedMsg struct{}

// eofNotifier sends inputClosedMsg once its reader reaches EOF.
type eofNotifier struct {
	r    io.Reader
	send func(tea.Msg)
	once sync.Once
}

func (e *eofNotifier) Read(p []byte) (int, error) {
	n, err := e.r.Read(p)
	if errors.Is(err, io.EOF) {
		e.once.Do(func() { e.send(inputClosedMsg{}) })
	}
	return n, err
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(inputClosedMsg); ok {
		m.inputClosed = true
		return m, tea.Quit
	}

	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(k, m.keys.Interrupt):
		m.interrupted = true
		return m, tea.Quit
	case len(m.keys.Continue.Keys()) == 0, key.Matches(k, m.keys.Continue):
		m.continued = true
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	return ""
}

// PressAnyKey writes AnyKeyMessage to out and waits for any key on in.
func PressAnyKey(ctx context.Context, in io.Reader, out io.Writer) error {
	return wait(ctx, in, out, AnyKeyMessage, anyKeyMap())
}

// PressEnter writes EnterMessage to out and waits for Enter on in. Other
// keys are ignored.
func PressEnter(ctx context.Context, in io.Reader, out io.Writer) error {
	return wait(ctx, in, out, EnterMessage, enterKeyMap())
}

func wait(ctx context.Context, in io.Reader, out io.Writer, message string, keys keyMap) error {
	if _, err := fmt.Fprintln(out, message); err != nil {
		return err
	}

	var notifier *eofNotifier
	input := in
	if !isTerminal(in) {
		notifier = &eofNotifier{r: in}
		input = notifier
	}

	p := tea.NewProgram(model{keys: keys},
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(out),
		tea.WithoutRenderer(),
		tea.WithoutSignalHandler(),
	)
	if notifier != nil {
		notifier.send = p.Send
	}

	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if err != nil {
		return fmt.Errorf("wait for key: %w", err)
	}
	m, ok := final.(model)
	switch {
	case !ok, m.continued:
		return nil
	case m.interrupted:
		return ErrInterrupted
	case m.inputClosed:
		return ErrNoInput
	}
	return nil
}

// isTerminal reports whether in is a terminal file. Terminals must reach
// bubbletea as *os.File to be put in raw mode.
func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
