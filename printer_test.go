package jx_test

import (
	"bufio"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jextract/jx"
)

func TestColumnPrinterAlignment(t *testing.T) {
	var buf strings.Builder
	p := jx.NewColumnPrinter(&buf)

	require.NoError(t, p.Print([]string{"foo", "1"}))
	require.NoError(t, p.Print([]string{"loooooong", "2"}))
	require.NoError(t, p.Flush())

	assert.Equal(t, "foo        1\nloooooong  2\n", buf.String())
}

func TestColumnPrinterNoTrailingWhitespace(t *testing.T) {
	var buf strings.Builder
	p := jx.NewColumnPrinter(&buf)

	require.NoError(t, p.Print([]string{"a", "bb"}))
	require.NoError(t, p.Print([]string{"aaa", "b"}))
	require.NoError(t, p.Flush())

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestColumnPrinterBuffersUntilFlush(t *testing.T) {
	var buf strings.Builder
	p := jx.NewColumnPrinter(&buf)

	require.NoError(t, p.Print([]string{"x", "y"}))
	assert.Empty(t, buf.String())

	require.NoError(t, p.Flush())
	assert.Equal(t, "x  y\n", buf.String())
}

func TestColumnPrinterEmptyFlush(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, jx.NewColumnPrinter(&buf).Flush())
	assert.Empty(t, buf.String())
}

func TestColumnPrinterRaggedRows(t *testing.T) {
	var buf strings.Builder
	p := jx.NewColumnPrinter(&buf)

	require.NoError(t, p.Print([]string{"aa", "bb"}))
	require.NoError(t, p.Print([]string{"c"}))
	require.NoError(t, p.Print([]string{"d", "e", "extra"}))
	require.NoError(t, p.Flush())

	// a short row prints only its own cells, a long row is cut to the
	// first row's column count
	assert.Equal(t, "aa  bb\nc\nd   e\n", buf.String())
}

func TestColumnPrinterWideRunes(t *testing.T) {
	var buf strings.Builder
	p := jx.NewColumnPrinter(&buf)

	// CJK characters occupy two cells each
	require.NoError(t, p.Print([]string{"名前", "1"}))
	require.NoError(t, p.Print([]string{"ab", "2"}))
	require.NoError(t, p.Flush())

	assert.Equal(t, "名前  1\nab    2\n", buf.String())
}

func TestDelimitedPrinterWritesImmediately(t *testing.T) {
	var buf strings.Builder
	p := jx.NewDelimitedPrinter(&buf, "\t")

	require.NoError(t, p.Print([]string{"a", "b"}))
	assert.Equal(t, "a\tb\n", buf.String())

	require.NoError(t, p.Print([]string{"c", "d"}))
	require.NoError(t, p.Flush())
	assert.Equal(t, "a\tb\nc\td\n", buf.String())
}

func TestDelimitedPrinterCustomJoiner(t *testing.T) {
	var buf strings.Builder
	p := jx.NewDelimitedPrinter(&buf, " | ")

	require.NoError(t, p.Print([]string{"a", "b", "c"}))
	assert.Equal(t, "a | b | c\n", buf.String())
}

func TestDelimitedPrinterFlusher(t *testing.T) {
	var buf strings.Builder
	bw := bufio.NewWriter(&buf)
	p := jx.NewDelimitedPrinter(bw, ",")
	p.Flusher = bw

	require.NoError(t, p.Print([]string{"a", "b"}))
	assert.Equal(t, "a,b\n", buf.String(), "row should reach the sink without an explicit flush")
}
