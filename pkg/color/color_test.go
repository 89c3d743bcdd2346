package color

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  lipgloss.TerminalColor
	}{
		{name: "empty inherits", input: "", want: nil},
		{name: "console name", input: "DarkBlue", want: DarkBlue},
		{name: "lower case name", input: "yellow", want: Yellow},
		{name: "ansi index", input: "205", want: lipgloss.Color("205")},
		{name: "hex", input: "#ff8800", want: lipgloss.Color("#ff8800")},
		{name: "short hex", input: "#f80", want: lipgloss.Color("#f80")},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsUnknown(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"purple", "256", "#12345", "-1"} {
		_, err := Parse(input)
		assert.Error(t, err, input)
		assert.False(t, Valid(input), input)
	}
}

func TestPairOverInheritsUnsetHalves(t *testing.T) {
	t.Parallel()

	base := New(White, Black)

	assert.Equal(t, New(Red, Black), Fg(Red).Over(base))
	assert.Equal(t, base, Pair{}.Over(base))
	assert.Equal(t, New(Red, Blue), New(Red, Blue).Over(base))
}

func TestPairIsZero(t *testing.T) {
	t.Parallel()

	assert.True(t, Pair{}.IsZero())
	assert.False(t, Fg(Red).IsZero())
	assert.False(t, Pair{Background: Blue}.IsZero())
}

func TestPairString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "red/-", Fg(Red).String())
	assert.Equal(t, "-/#000000", Pair{Background: lipgloss.Color("#000000")}.String())
}

func TestNamesAreSortedAndParseable(t *testing.T) {
	t.Parallel()

	names := Names()
	require.Len(t, names, 16)
	assert.IsIncreasing(t, names)
	for _, name := range names {
		assert.True(t, Valid(name), name)
	}
}

func TestRainbowDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Pair{Fg(Red), Fg(Yellow), Fg(Blue), Fg(White)}, Rainbow())
}
