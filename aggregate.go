package main

// RunState accumulates the results of one run in arrival order, together
// with the running column widths and totals.
type RunState struct {
	Results []NamedResult
	Widths  ColumnWidths
	Total   Metrics

	// requested is the number of sources named by the user (arguments, list
	// entries or picks) before an empty list is replaced by implicit stdin.
	requested int
	stdinSeen bool
}

func newRunState() *RunState {
	return &RunState{Widths: defaultColumnWidths()}
}

// claimStdin reports whether stdin may still be read, and marks it consumed.
func (s *RunState) claimStdin() bool {
	if s.stdinSeen {
		return false
	}
	s.stdinSeen = true
	return true
}

// Apply records counted metrics for src and folds them into widths and totals.
func (s *RunState) Apply(src Source, m Metrics) {
	s.Widths = s.Widths.Max(widthsFor(m))
	s.Total.Add(m)
	s.Results = append(s.Results, NamedResult{Label: s.labelFor(src), Metrics: m})
}

// ApplyError records a source that could not be counted. Widths and totals
// are left alone.
func (s *RunState) ApplyError(err error) {
	s.Results = append(s.Results, NamedResult{Err: err})
}

// labelFor names stdin with a blank label when it is the only source.
func (s *RunState) labelFor(src Source) Label {
	if src.Kind == SourceFile {
		return Label{Kind: LabelFile, Path: src.Path}
	}
	if s.requested < 2 {
		return Label{Kind: LabelBlank}
	}
	return Label{Kind: LabelStdin}
}

// HasTotal reports whether a total row is printed.
func (s *RunState) HasTotal() bool {
	return s.requested > 1
}

// TotalRow folds the total into the widths and returns the total row.
func (s *RunState) TotalRow() NamedResult {
	s.Widths = s.Widths.Max(widthsFor(s.Total))
	return NamedResult{Label: Label{Kind: LabelTotal}, Metrics: s.Total}
}

// Failed reports whether any source produced an error.
func (s *RunState) Failed() bool {
	for _, r := range s.Results {
		if r.Err != nil {
			return true
		}
	}
	return false
}
