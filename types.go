package main

// SourceKind tells a Source apart: a named file or standard input.
type SourceKind int

const (
	SourceFile SourceKind = iota
	SourceStdin
)

// stdinMarker is the argument (and NUL-list entry) that stands for standard input.
const stdinMarker = "-"

// Source is a place to read bytes from.
type Source struct {
	Kind SourceKind
	Path string // Empty for SourceStdin
}

// parseSource maps a raw input to a Source using the "-" convention.
func parseSource(raw string) Source {
	if raw == stdinMarker {
		return Source{Kind: SourceStdin}
	}
	return Source{Kind: SourceFile, Path: raw}
}

func (s Source) String() string {
	if s.Kind == SourceStdin {
		return stdinMarker
	}
	return s.Path
}

// Metrics holds the five counts for one source (or the running total).
type Metrics struct {
	Lines        int
	Words        int
	Bytes        int
	Chars        int
	MaxLineWidth int
}

// Add folds other into m. MaxLineWidth is a maximum, everything else is summed.
func (m *Metrics) Add(other Metrics) {
	m.Lines += other.Lines
	m.Words += other.Words
	m.Bytes += other.Bytes
	m.Chars += other.Chars
	m.MaxLineWidth = max(m.MaxLineWidth, other.MaxLineWidth)
}

// DisplayConfig selects the printed columns. Column order is fixed:
// lines, words, bytes, chars, max line length.
type DisplayConfig struct {
	Lines         bool
	Words         bool
	Bytes         bool
	Chars         bool
	MaxLineLength bool
}

// defaultDisplayConfig is used when no metric was asked for explicitly.
var defaultDisplayConfig = DisplayConfig{Lines: true, Words: true, Bytes: true}

// newDisplayConfig returns exactly the requested columns, or the default
// set when nothing was requested. The two sets are never merged.
func newDisplayConfig(lines, words, bytes, chars, maxLineLength bool) DisplayConfig {
	if !lines && !words && !bytes && !chars && !maxLineLength {
		return defaultDisplayConfig
	}
	return DisplayConfig{
		Lines:         lines,
		Words:         words,
		Bytes:         bytes,
		Chars:         chars,
		MaxLineLength: maxLineLength,
	}
}

// minColumnWidth is the narrowest any column gets.
const minColumnWidth = 2

// ColumnWidths is the print width reserved for each metric.
type ColumnWidths struct {
	Lines         int
	Words         int
	Bytes         int
	Chars         int
	MaxLineLength int
}

func defaultColumnWidths() ColumnWidths {
	return ColumnWidths{
		Lines:         minColumnWidth,
		Words:         minColumnWidth,
		Bytes:         minColumnWidth,
		Chars:         minColumnWidth,
		MaxLineLength: minColumnWidth,
	}
}

// widthsFor returns the widths needed to print m: one more than the digit
// count of each value, never below minColumnWidth.
func widthsFor(m Metrics) ColumnWidths {
	return ColumnWidths{
		Lines:         columnWidth(m.Lines),
		Words:         columnWidth(m.Words),
		Bytes:         columnWidth(m.Bytes),
		Chars:         columnWidth(m.Chars),
		MaxLineLength: columnWidth(m.MaxLineWidth),
	}
}

// Max returns the element-wise maximum of w and other.
func (w ColumnWidths) Max(other ColumnWidths) ColumnWidths {
	return ColumnWidths{
		Lines:         max(w.Lines, other.Lines),
		Words:         max(w.Words, other.Words),
		Bytes:         max(w.Bytes, other.Bytes),
		Chars:         max(w.Chars, other.Chars),
		MaxLineLength: max(w.MaxLineLength, other.MaxLineLength),
	}
}

func columnWidth(n int) int {
	return max(minColumnWidth, digits(n)+1)
}

// digits returns the number of decimal digits in n (1 for zero).
func digits(n int) int {
	if n == 0 {
		return 1
	}
	d := 0
	for n > 0 {
		n /= 10
		d++
	}
	return d
}

// LabelKind selects how a result row is named.
type LabelKind int

const (
	LabelFile LabelKind = iota
	LabelStdin
	LabelBlank
	LabelTotal
)

// Label is the name printed after the counts of a row.
type Label struct {
	Kind LabelKind
	Path string // Set for LabelFile only
}

// String renders the label including its leading separator.
func (l Label) String() string {
	switch l.Kind {
	case LabelFile:
		return " " + l.Path
	case LabelStdin:
		return " " + stdinMarker
	case LabelTotal:
		return " total"
	default:
		return ""
	}
}

// NamedResult is the outcome for one source: a labelled Metrics value, or
// Err when the source could not be opened.
type NamedResult struct {
	Label   Label
	Metrics Metrics
	Err     error
}
