package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "LOCALE", "ERRORS", "STATUS")
	tbl.Row("de", 3, "failing")
	tbl.Row("pt-BR", 0, "ok")
	require.NoError(t, tbl.Flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "LOCALE  ERRORS  STATUS", lines[0])
	assert.Equal(t, "de      3       failing", lines[1])
	assert.Equal(t, "pt-BR   0       ok", lines[2])
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "A", "B")
	require.NoError(t, tbl.Flush())

	assert.Equal(t, "A  B\n", buf.String())
}

func TestStyles_Ascii(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, termenv.Ascii)

	assert.Equal(t, "✓ ok", s.OK("ok"))
	assert.Equal(t, "✗ 2 critical", s.Fail("2 critical"))
	assert.Equal(t, "! 1 warning", s.Warn("1 warning"))
	assert.Equal(t, "ignored", s.Muted("ignored"))
	assert.Equal(t, "German", s.Title("German"))
}

func TestStyles_Colored(t *testing.T) {
	s := NewStyles(&bytes.Buffer{}, termenv.TrueColor)

	out := s.Fail("broken")
	assert.Contains(t, out, "broken")
	assert.NotEqual(t, "✗ broken", out)
}

func TestColorProfile_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, termenv.Ascii, ColorProfile())
}
