package main

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	newline        = '\n'
	readBufferSize = 64 * 1024
)

// displayWidth measures terminal columns. Ambiguous-width characters count
// as narrow regardless of the locale (runewidth's default reads LANG).
var displayWidth = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// CountReader reads r to the end and returns its metrics.
//
// Read errors are not reported: counting stops at the first failure and the
// metrics gathered so far are returned, the same way wc prints partial counts
// for a broken pipe. Open failures are classified before this point.
func CountReader(r io.Reader) Metrics {
	var (
		br   = bufio.NewReaderSize(r, readBufferSize)
		line []byte
		m    Metrics
	)
	for {
		frag, err := br.ReadSlice(newline)
		line = append(line, frag...)
		if err == bufio.ErrBufferFull {
			continue
		}
		if len(line) > 0 {
			m.addLine(line)
			line = line[:0]
		}
		if err != nil {
			return m
		}
	}
}

// addLine counts one newline-delimited chunk. The last chunk of a stream may
// lack its newline and still counts as a line.
func (m *Metrics) addLine(line []byte) {
	m.Bytes += len(line)
	m.Lines++
	m.Words += countWords(line)

	// Invalid UTF-8 contributes nothing to chars or width.
	if !utf8.Valid(line) {
		return
	}
	m.Chars += utf8.RuneCount(line)
	text := strings.TrimSuffix(string(line), string(newline))
	m.MaxLineWidth = max(m.MaxLineWidth, displayWidth.StringWidth(text))
}

// countWords counts maximal runs of bytes that are not ASCII whitespace.
func countWords(b []byte) int {
	words := 0
	inWord := false
	for _, c := range b {
		if isASCIISpace(c) {
			inWord = false
			continue
		}
		if !inWord {
			words++
			inWord = true
		}
	}
	return words
}

func isASCIISpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}
