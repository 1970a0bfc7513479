package main

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
)

func TestCountReader_Empty(t *testing.T) {
	assert.Equal(t, Metrics{}, CountReader(strings.NewReader("")))
}

func TestCountReader_NoTrailingNewline(t *testing.T) {
	m := CountReader(strings.NewReader("line1\nline2\nline3"))

	assert.Equal(t, 3, m.Lines)
	assert.Equal(t, 3, m.Words)
	assert.Equal(t, 17, m.Bytes)
	assert.Equal(t, 17, m.Chars)
	assert.Equal(t, 5, m.MaxLineWidth)
}

func TestCountReader_Whitespace(t *testing.T) {
	m := CountReader(strings.NewReader("  word1   word2  \n\n  word3\t\tword4  \n"))

	assert.Equal(t, 3, m.Lines)
	assert.Equal(t, 4, m.Words)
	assert.Equal(t, 36, m.Bytes)
}

func TestCountReader_AllASCIIWhitespaceSeparatesWords(t *testing.T) {
	m := CountReader(strings.NewReader("a b\tc\rd\fe\vf\n"))
	assert.Equal(t, 6, m.Words)
}

func TestCountReader_MaxLineWidthIsMaximum(t *testing.T) {
	m := CountReader(strings.NewReader("short\nthis is a much longer line\nmedium line"))

	assert.Equal(t, 3, m.Lines)
	assert.Equal(t, 26, m.MaxLineWidth)
}

func TestCountReader_MultiByte(t *testing.T) {
	m := CountReader(strings.NewReader("caf\u00e9\n"))

	assert.Equal(t, 6, m.Bytes)
	assert.Equal(t, 5, m.Chars)
	assert.Equal(t, 4, m.MaxLineWidth)
}

func TestCountReader_WideCharacters(t *testing.T) {
	m := CountReader(strings.NewReader("Hello 世界\n"))

	assert.Equal(t, 13, m.Bytes)
	assert.Equal(t, 9, m.Chars)
	assert.Equal(t, 10, m.MaxLineWidth, "CJK characters take two columns")
	assert.Equal(t, 2, m.Words)
}

func TestCountReader_CombiningMark(t *testing.T) {
	m := CountReader(strings.NewReader("cafe\u0301\n"))

	assert.Equal(t, 7, m.Bytes)
	assert.Equal(t, 6, m.Chars)
	assert.Equal(t, 4, m.MaxLineWidth, "combining mark has no width")
}

func TestCountReader_InvalidUTF8(t *testing.T) {
	input := append([]byte{0xff, 'a', ' ', 'b', '\n'}, []byte("ok\n")...)
	m := CountReader(strings.NewReader(string(input)))

	assert.Equal(t, 2, m.Lines)
	assert.Equal(t, 8, m.Bytes)
	assert.Equal(t, 3, m.Words)
	assert.Equal(t, 3, m.Chars, "invalid line contributes no characters")
	assert.Equal(t, 2, m.MaxLineWidth)
}

func TestCountReader_StopsSilentlyOnReadError(t *testing.T) {
	r := io.MultiReader(
		strings.NewReader("one two\nthree"),
		iotest.ErrReader(errors.New("broken pipe")),
	)
	m := CountReader(r)

	assert.Equal(t, Metrics{Lines: 2, Words: 3, Bytes: 13, Chars: 13, MaxLineWidth: 7}, m)
}

func TestCountReader_OneByteReads(t *testing.T) {
	const input = "alpha beta\ngamma\n"
	assert.Equal(t,
		CountReader(strings.NewReader(input)),
		CountReader(iotest.OneByteReader(strings.NewReader(input))),
	)
}

func TestCountReader_LineLongerThanBuffer(t *testing.T) {
	long := strings.Repeat("a", readBufferSize*3+7)
	m := CountReader(strings.NewReader(long + "\nb\n"))

	assert.Equal(t, 2, m.Lines)
	assert.Equal(t, 2, m.Words)
	assert.Equal(t, len(long)+3, m.Bytes)
	assert.Equal(t, len(long), m.MaxLineWidth)
}

func TestCountReader_Idempotent(t *testing.T) {
	const input = "The quick brown fox\njumps over\n\tthe lazy dog"
	assert.Equal(t, CountReader(strings.NewReader(input)), CountReader(strings.NewReader(input)))
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{" one  two ", 2},
		{"one\n", 1},
		{"héllo wörld", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, countWords([]byte(tt.in)), "input %q", tt.in)
	}
}
