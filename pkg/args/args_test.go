package args

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/alexisbeaulieu97/consolekit/pkg/errors"
)

const path = `C:\Temp`

func pathArg() AllowedArg {
	return AllowedArg{ShortName: 'p', HasValue: true, LongName: "path", Description: "Path to the file."}
}

func allFilesArg() AllowedArg {
	return AllowedArg{ShortName: 'a', LongName: "allfiles", Description: "Should use all files."}
}

func requireArgError(t *testing.T, err error, want string) {
	t.Helper()
	var argErr *apperrors.ArgError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, want, err.Error())
}

func TestAllowedArgValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		arg     AllowedArg
		wantErr string
	}{
		{name: "upper short name", arg: AllowedArg{ShortName: 'A'}},
		{name: "lower short name", arg: AllowedArg{ShortName: 'z'}},
		{name: "digit short name", arg: AllowedArg{ShortName: '0'}, wantErr: "short_name"},
		{name: "dash short name", arg: AllowedArg{ShortName: '-'}, wantErr: "short_name"},
		{name: "non ascii short name", arg: AllowedArg{ShortName: 'é'}, wantErr: "short_name"},
		{name: "no long name", arg: AllowedArg{ShortName: 'a'}},
		{name: "single letter long name", arg: AllowedArg{ShortName: 'a', LongName: "A"}},
		{name: "long name", arg: AllowedArg{ShortName: 'a', LongName: "abc"}},
		{name: "dashed long name", arg: AllowedArg{ShortName: 'a', LongName: "-a"}, wantErr: "long_name"},
		{name: "long name with digit", arg: AllowedArg{ShortName: 'a', LongName: "a1"}, wantErr: "long_name"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.arg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			var validationErr *apperrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantErr, validationErr.Field)
		})
	}
}

func TestParseNilInput(t *testing.T) {
	t.Parallel()

	_, err := Parse(nil, []AllowedArg{pathArg()})
	require.ErrorIs(t, err, apperrors.ErrMissingArgument)
}

func TestParseRejectsInvalidAllowedArgs(t *testing.T) {
	t.Parallel()

	_, err := Parse([]string{}, []AllowedArg{{ShortName: '1'}})
	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		want  []Arg
	}{
		{
			name:  "name with value",
			input: []string{"-p", path},
			want:  []Arg{{ShortName: 'p', LongName: "path", Value: path, Description: "Path to the file."}},
		},
		{
			name:  "name without value",
			input: []string{"-a"},
			want:  []Arg{{ShortName: 'a', LongName: "allfiles", Description: "Should use all files."}},
		},
		{
			name:  "flag first",
			input: []string{"-a", "-p", path},
			want: []Arg{
				{ShortName: 'a', LongName: "allfiles", Description: "Should use all files."},
				{ShortName: 'p', LongName: "path", Value: path, Description: "Path to the file."},
			},
		},
		{
			name:  "value first",
			input: []string{"-p", path, "-a"},
			want: []Arg{
				{ShortName: 'p', LongName: "path", Value: path, Description: "Path to the file."},
				{ShortName: 'a', LongName: "allfiles", Description: "Should use all files."},
			},
		},
		{
			name:  "long names",
			input: []string{"-path", path, "-allfiles"},
			want: []Arg{
				{ShortName: 'p', LongName: "path", Value: path, Description: "Path to the file."},
				{ShortName: 'a', LongName: "allfiles", Description: "Should use all files."},
			},
		},
		{
			name:  "empty input",
			input: []string{},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info, err := Parse(tt.input, []AllowedArg{pathArg(), allFilesArg()})
			require.NoError(t, err)
			assert.Equal(t, tt.want, info.Arguments())
			assert.Equal(t, len(tt.want) > 0, info.HasArguments())
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []string
		required []rune
		want     string
	}{
		{
			name:  "unknown name",
			input: []string{"-x"},
			want:  "Argument name: 'x' is not allowed.",
		},
		{
			name:  "value without name",
			input: []string{path},
			want:  `Argument value: 'C:\Temp' has no corresponding name.`,
		},
		{
			name:  "value after flag",
			input: []string{"-a", "extra"},
			want:  "Argument value: 'extra' has no corresponding name.",
		},
		{
			name:  "too many arguments",
			input: []string{"-p", path, "-a", "-a"},
			want:  "Allowed arguments 2 but 3 provided (p, a, a).",
		},
		{
			name:     "one required missing",
			input:    []string{"-a"},
			required: []rune{'p'},
			want:     "Argument 'p' is required and not supplied.",
		},
		{
			name:     "two required missing",
			input:    []string{},
			required: []rune{'p', 'a'},
			want:     "Argument 'p' is required and not supplied.\nArgument 'a' is required and not supplied.",
		},
		{
			name:     "required value never supplied",
			input:    []string{"-p"},
			required: []rune{'p'},
			want:     "Argument 'p' is required and not supplied.",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			allowed := []AllowedArg{pathArg(), allFilesArg()}
			for i := range allowed {
				for _, r := range tt.required {
					if allowed[i].ShortName == r {
						allowed[i].Required = true
					}
				}
			}

			info, err := Parse(tt.input, allowed)
			require.Nil(t, info)
			requireArgError(t, err, tt.want)
		})
	}
}

func TestParseRequiredPresent(t *testing.T) {
	t.Parallel()

	p, a := pathArg(), allFilesArg()
	p.Required, a.Required = true, true

	info, err := Parse([]string{"-p", path, "-a"}, []AllowedArg{p, a})
	require.NoError(t, err)
	require.Len(t, info.Arguments(), 2)
	assert.True(t, info.Arguments()[0].HasValue())
	assert.False(t, info.Arguments()[1].HasValue())
}

func TestInfoGet(t *testing.T) {
	t.Parallel()

	info, err := Parse([]string{"-path", path}, []AllowedArg{pathArg(), allFilesArg()})
	require.NoError(t, err)

	byShort, ok := info.Get("p")
	require.True(t, ok)
	assert.Equal(t, path, byShort.Value)

	byLong, ok := info.Get("path")
	require.True(t, ok)
	assert.Equal(t, byShort, byLong)

	_, ok = info.Get("a")
	assert.False(t, ok)
}

func TestHelpText(t *testing.T) {
	t.Parallel()

	const pad = "     "

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, HelpText(nil))
		assert.Empty(t, HelpText([]AllowedArg{}))
	})

	t.Run("short and long names", func(t *testing.T) {
		t.Parallel()
		want := "-p       " + pad + "Path to the file.\n" +
			"-path    " + pad + "Path to the file.\n" +
			"-a       " + pad + "Should use all files.\n" +
			"-allfiles" + pad + "Should use all files.\n"
		assert.Equal(t, want, HelpText([]AllowedArg{pathArg(), allFilesArg()}))
	})

	t.Run("short names only", func(t *testing.T) {
		t.Parallel()
		p, a := pathArg(), allFilesArg()
		p.LongName, a.LongName = "", ""
		want := "-p" + pad + "Path to the file.\n" +
			"-a" + pad + "Should use all files.\n"
		assert.Equal(t, want, HelpText([]AllowedArg{p, a}))
	})

	t.Run("no description", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "-v\n-verbose\n", HelpText([]AllowedArg{{ShortName: 'v', LongName: "verbose"}}))
	})

	t.Run("from parse result", func(t *testing.T) {
		t.Parallel()
		allowed := []AllowedArg{pathArg(), allFilesArg()}
		info, err := Parse([]string{}, allowed)
		require.NoError(t, err)
		assert.Equal(t, HelpText(allowed), info.HelpText())
	})
}
