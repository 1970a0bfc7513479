package main

import (
	"fmt"
	"io"
)

// Printer renders result rows with right-aligned columns.
type Printer struct {
	Widths  ColumnWidths
	Display DisplayConfig
}

// writeCounts writes the enabled metrics of m in fixed column order.
func (p Printer) writeCounts(w io.Writer, m Metrics) error {
	columns := []struct {
		enabled bool
		value   int
		width   int
	}{
		{p.Display.Lines, m.Lines, p.Widths.Lines},
		{p.Display.Words, m.Words, p.Widths.Words},
		{p.Display.Bytes, m.Bytes, p.Widths.Bytes},
		{p.Display.Chars, m.Chars, p.Widths.Chars},
		{p.Display.MaxLineLength, m.MaxLineWidth, p.Widths.MaxLineLength},
	}
	for _, c := range columns {
		if !c.enabled {
			continue
		}
		if _, err := fmt.Fprintf(w, "%*d", c.width, c.value); err != nil {
			return err
		}
	}
	return nil
}

// WriteResult writes one row: counts, label, line terminator.
func (p Printer) WriteResult(w io.Writer, r NamedResult) error {
	if err := p.writeCounts(w, r.Metrics); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n", r.Label)
	return err
}

// renderResults writes every result of state in input order, then the total
// row when one is due. Successful results go to w; failures go to errw as
// "<program>: <reason>" lines at their place in the sequence.
func renderResults(w, errw io.Writer, state *RunState, display DisplayConfig) error {
	p := Printer{Widths: state.Widths, Display: display}
	for _, r := range state.Results {
		if r.Err != nil {
			fmt.Fprintf(errw, "%s: %v\n", programName, r.Err)
			continue
		}
		if err := p.WriteResult(w, r); err != nil {
			return fmt.Errorf("error writing result: %w", err)
		}
	}

	if !state.HasTotal() {
		return nil
	}
	total := state.TotalRow()
	p.Widths = state.Widths
	if err := p.WriteResult(w, total); err != nil {
		return fmt.Errorf("error writing total: %w", err)
	}
	return nil
}
