package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/consolekit/pkg/color"
	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
	"github.com/alexisbeaulieu97/consolekit/pkg/output"
)

var _ ColorWriter = (*output.Console)(nil)

type written struct {
	text string
	pair color.Pair
}

type recorder struct {
	lines []written
}

func (r *recorder) WriteColor(text string, p color.Pair) error {
	r.lines = append(r.lines, written{text: text, pair: p})
	return nil
}

func (r *recorder) WriteLineColor(text string, p color.Pair) error {
	return r.WriteColor(text, p)
}

func logAll(t *testing.T, l *Logger) {
	t.Helper()
	require.NoError(t, l.Debug("debug"))
	require.NoError(t, l.Info("info"))
	require.NoError(t, l.Warning("warning"))
	require.NoError(t, l.Error("error"))
	require.NoError(t, l.Critical("critical"))
}

func TestLevelFiltering(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level Level
		want  []string
	}{
		{level: LevelDebug, want: []string{"debug", "info", "warning", "error", "critical"}},
		{level: LevelInfo, want: []string{"info", "warning", "error", "critical"}},
		{level: LevelWarning, want: []string{"warning", "error", "critical"}},
		{level: LevelError, want: []string{"error", "critical"}},
		{level: LevelCritical, want: []string{"critical"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.level.String(), func(t *testing.T) {
			t.Parallel()
			rec := &recorder{}
			l, err := New(tt.level, DefaultColorTheme(), rec)
			require.NoError(t, err)

			logAll(t, l)

			var got []string
			for _, line := range rec.lines {
				got = append(got, line.text)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestThemeColors(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	theme := DefaultColorTheme()
	l, err := New(LevelDebug, theme, rec)
	require.NoError(t, err)

	logAll(t, l)

	require.Len(t, rec.lines, 5)
	assert.Equal(t, color.Fg(color.Gray), rec.lines[0].pair)
	assert.Equal(t, color.Fg(color.White), rec.lines[1].pair)
	assert.Equal(t, color.Fg(color.Yellow), rec.lines[2].pair)
	assert.Equal(t, color.Fg(color.Red), rec.lines[3].pair)
	assert.Equal(t, color.New(color.White, color.Red), rec.lines[4].pair)
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := New(LevelInfo, DefaultColorTheme(), nil)
	require.ErrorIs(t, err, apperrors.ErrMissingArgument)

	_, err = New(Level(0), DefaultColorTheme(), &recorder{})
	require.ErrorIs(t, err, apperrors.ErrOutOfRange)
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for input, want := range map[string]Level{
		"debug":    LevelDebug,
		"Info":     LevelInfo,
		"warn":     LevelWarning,
		"WARNING":  LevelWarning,
		"error":    LevelError,
		"critical": LevelCritical,
	} {
		got, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := ParseLevel("verbose")
	require.ErrorIs(t, err, apperrors.ErrOutOfRange)
	assert.Equal(t, "level(9)", Level(9).String())
}

func TestLoggerWritesToConsole(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	console := output.New(output.Options{Writer: buf, NoColor: true})
	l, err := New(LevelWarning, DefaultColorTheme(), console)
	require.NoError(t, err)

	require.NoError(t, l.Info("skipped"))
	require.NoError(t, l.Error("disk full"))
	assert.Equal(t, "disk full\n", buf.String())
	assert.True(t, console.Color().IsZero())
}
