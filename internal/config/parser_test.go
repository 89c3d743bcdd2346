package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/consolekit/pkg/border"
	"github.com/alexisbeaulieu97/consolekit/pkg/color"
	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
)

func TestParseConfig(t *testing.T) {
	t.Parallel()

	validYAML := `border: single
border_color:
  foreground: blue
value_color:
  foreground: "#ff8800"
  background: black
padding:
  left: "["
  right: "]"
wrap:
  line_length: 40
  pad_ends: false
log:
  level: debug
`

	cases := []struct {
		name     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "valid theme is parsed",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "single", cfg.Border)
				require.Equal(t, "blue", cfg.BorderColor.Foreground)
				require.Equal(t, "[", cfg.Padding.Left)
				require.Equal(t, 40, cfg.Wrap.LineLength)
				require.False(t, cfg.Wrap.PadEnds)
				require.Equal(t, "debug", cfg.Log.Level)
				require.True(t, cfg.Log.Human)
			},
		},
		{
			name:     "empty file yields defaults",
			contents: "",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, Default(), cfg)
			},
		},
		{
			name:     "partial file keeps other defaults",
			contents: "border: simple\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "simple", cfg.Border)
				require.Equal(t, " ", cfg.Padding.Left)
				require.True(t, cfg.Wrap.PadEnds)
			},
		},
		{
			name:     "invalid yaml reports line",
			contents: "border: single\npadding: [1, 2\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Greater(t, parseErr.Line, 0)
			},
		},
		{
			name:     "unknown key is rejected",
			contents: "border: single\ncolour: red\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name:     "unknown color",
			contents: "text_color:\n  foreground: mauve\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "text_color.foreground", validationErr.Field)
				require.Contains(t, validationErr.Message, "mauve")
			},
		},
		{
			name:     "unknown border",
			contents: "border: dotted\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "border", validationErr.Field)
			},
		},
		{
			name:     "line length out of range",
			contents: "wrap:\n  line_length: -1\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "wrap.line_length", validationErr.Field)
			},
		},
		{
			name:     "unknown log level",
			contents: "log:\n  level: loud\n",
			assert: func(t *testing.T, cfg *Config, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
				require.Equal(t, "log.level", validationErr.Field)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "theme.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tc.contents), 0o600))

			cfg, err := ParseConfig(path)
			tc.assert(t, cfg, err)
		})
	}
}

func TestParseConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 0, parseErr.Line)
}

func TestValidateConfigNil(t *testing.T) {
	t.Parallel()

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, ValidateConfig(nil), &validationErr)
	require.NoError(t, ValidateConfig(Default()))
}

func TestThemeConversion(t *testing.T) {
	t.Parallel()

	cfg, err := Parse("inline", []byte(`border: simple
border_color: {foreground: red}
value_color: {foreground: white, background: darkblue}
text_color: {foreground: "42"}
padding: {left: "", right: "|"}
wrap: {line_length: 20}
`))
	require.NoError(t, err)

	style, err := cfg.TableStyle()
	require.NoError(t, err)
	require.Equal(t, border.Simple, style.Border)
	require.Equal(t, color.Fg(color.Red), style.BorderColor)
	require.Equal(t, color.New(color.White, color.DarkBlue), style.ValueColor)
	require.Equal(t, "", style.Padding.Left)
	require.Equal(t, "|", style.Padding.Right)

	opts, err := cfg.WrapOptions()
	require.NoError(t, err)
	require.Equal(t, 20, opts.LineLength)
	require.True(t, opts.PadEnds)
	require.False(t, opts.Color.IsZero())
}
