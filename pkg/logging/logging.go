// Package logging writes leveled, color-coded messages to a console.
package logging

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/consolekit/pkg/color"
	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
)

// ColorWriter is the part of a console the logger writes through.
// *output.Console satisfies it.
type ColorWriter interface {
	WriteColor(text string, p color.Pair) error
	WriteLineColor(text string, p color.Pair) error
}

// Level orders message severities. A logger writes messages at or above
// its own level.
type Level int

const (
	LevelDebug Level = iota + 1
	LevelInfo
	LevelWarning
	LevelError
	LevelCritical
)

var levelNames = map[Level]string{
	LevelDebug:    "debug",
	LevelInfo:     "info",
	LevelWarning:  "warning",
	LevelError:    "error",
	LevelCritical: "critical",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	_, ok := levelNames[l]
	return ok
}

// ParseLevel resolves a level name, case-insensitively. "warn" is accepted
// for warning.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warn" {
		return LevelWarning, nil
	}
	for level, levelName := range levelNames {
		if levelName == name {
			return level, nil
		}
	}
	return 0, apperrors.NewRangeError("level", s, "unknown log level")
}

// ColorTheme holds the color of each level.
type ColorTheme struct {
	Debug    color.Pair
	Info     color.Pair
	Warning  color.Pair
	Error    color.Pair
	Critical color.Pair
}

// DefaultColorTheme returns gray, white, yellow, red and white on red.
func DefaultColorTheme() ColorTheme {
	return ColorTheme{
		Debug:    color.Fg(color.Gray),
		Info:     color.Fg(color.White),
		Warning:  color.Fg(color.Yellow),
		Error:    color.Fg(color.Red),
		Critical: color.New(color.White, color.Red),
	}
}

func (t ColorTheme) pair(level Level) color.Pair {
	switch level {
	case LevelDebug:
		return t.Debug
	case LevelInfo:
		return t.Info
	case LevelWarning:
		return t.Warning
	case LevelError:
		return t.Error
	default:
		return t.Critical
	}
}

// Logger writes one line per message.
type Logger struct {
	level Level
	theme ColorTheme
	out   ColorWriter
}

// New creates a logger writing to out.
func New(level Level, theme ColorTheme, out ColorWriter) (*Logger, error) {
	if out == nil {
		return nil, apperrors.NewMissingArgumentError("out", "")
	}
	if !level.Valid() {
		return nil, apperrors.NewRangeError("level", level, "unknown log level")
	}
	return &Logger{level: level, theme: theme, out: out}, nil
}

// Level returns the minimum level written.
func (l *Logger) Level() Level {
	return l.level
}

// Enabled reports whether messages at level are written.
func (l *Logger) Enabled(level Level) bool {
	return level == LevelCritical || level >= l.level
}

func (l *Logger) write(level Level, msg string) error {
	if !l.Enabled(level) {
		return nil
	}
	return l.out.WriteLineColor(msg, l.theme.pair(level))
}

func (l *Logger) Debug(msg string) error   { return l.write(LevelDebug, msg) }
func (l *Logger) Info(msg string) error    { return l.write(LevelInfo, msg) }
func (l *Logger) Warning(msg string) error { return l.write(LevelWarning, msg) }
func (l *Logger) Error(msg string) error   { return l.write(LevelError, msg) }

// Critical is written regardless of the logger's level.
func (l *Logger) Critical(msg string) error { return l.write(LevelCritical, msg) }
