package output

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/consolekit/pkg/diff"
)

func TestWriteDiff(t *testing.T) {
	t.Parallel()

	c, buf := plainConsole(80)
	changed, err := c.WriteDiff("a\nb\nc\n", "a\nx\nc\n", DefaultDiffColors())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, " a\n-b\n+x\n c\n", buf.String())
}

func TestWriteDiffColorsChangedLines(t *testing.T) {
	t.Parallel()

	c, buf := ansiConsole(80)
	changed, err := c.WriteDiff("same\nold\n", "same\nnew\n", DefaultDiffColors())
	require.NoError(t, err)
	assert.True(t, changed)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, " same", lines[0])
	assert.True(t, escapes.MatchString(lines[1]))
	assert.True(t, escapes.MatchString(lines[2]))
	assert.Equal(t, " same\n-old\n+new\n", escapes.ReplaceAllString(buf.String(), ""))
}

func TestWriteDiffIdentical(t *testing.T) {
	t.Parallel()

	c, buf := plainConsole(80)
	changed, err := c.WriteDiff("x\n", "x\n", DefaultDiffColors())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, " x\n", buf.String())
}

func TestWriteDiffMarksMissingNewline(t *testing.T) {
	t.Parallel()

	c, buf := plainConsole(80)
	changed, err := c.WriteDiff("a", "a\n", DefaultDiffColors())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "-a\n"+diff.NoNewlineMarker+"\n+a\n", buf.String())
}
