package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunState_ApplyUpdatesWidthsAndTotals(t *testing.T) {
	state := newRunState()
	state.requested = 2

	state.Apply(Source{Kind: SourceFile, Path: "a"}, Metrics{Lines: 5, Words: 10, Bytes: 50, Chars: 50, MaxLineWidth: 12})
	state.Apply(Source{Kind: SourceFile, Path: "b"}, Metrics{Lines: 120, Words: 2, Bytes: 9, Chars: 9, MaxLineWidth: 3})

	assert.Equal(t, Metrics{Lines: 125, Words: 12, Bytes: 59, Chars: 59, MaxLineWidth: 12}, state.Total)
	assert.Equal(t, ColumnWidths{Lines: 4, Words: 3, Bytes: 3, Chars: 3, MaxLineLength: 3}, state.Widths)
	require.Len(t, state.Results, 2)
	assert.Equal(t, Label{Kind: LabelFile, Path: "a"}, state.Results[0].Label)
	assert.Equal(t, Label{Kind: LabelFile, Path: "b"}, state.Results[1].Label)
}

func TestRunState_ApplyErrorKeepsTotals(t *testing.T) {
	state := newRunState()
	state.requested = 2

	state.ApplyError(&NoFileError{Path: "missing"})
	state.Apply(Source{Kind: SourceFile, Path: "a"}, Metrics{Lines: 1, Words: 1, Bytes: 2})

	assert.Equal(t, Metrics{Lines: 1, Words: 1, Bytes: 2}, state.Total)
	assert.Equal(t, defaultColumnWidths(), state.Widths)
	require.Len(t, state.Results, 2)
	assert.Error(t, state.Results[0].Err)
	assert.True(t, state.Failed())
}

func TestRunState_StdinLabel(t *testing.T) {
	t.Run("single source is blank", func(t *testing.T) {
		state := newRunState()
		state.requested = 1
		state.Apply(Source{Kind: SourceStdin}, Metrics{})
		assert.Equal(t, LabelBlank, state.Results[0].Label.Kind)
	})

	t.Run("implicit stdin is blank", func(t *testing.T) {
		state := newRunState()
		state.Apply(Source{Kind: SourceStdin}, Metrics{})
		assert.Equal(t, LabelBlank, state.Results[0].Label.Kind)
		assert.False(t, state.HasTotal())
	})

	t.Run("several sources use the marker", func(t *testing.T) {
		state := newRunState()
		state.requested = 2
		state.Apply(Source{Kind: SourceStdin}, Metrics{})
		assert.Equal(t, LabelStdin, state.Results[0].Label.Kind)
	})
}

func TestRunState_TotalRowFoldsWidths(t *testing.T) {
	state := newRunState()
	state.requested = 2
	state.Apply(Source{Kind: SourceFile, Path: "a"}, Metrics{Lines: 5})
	state.Apply(Source{Kind: SourceFile, Path: "b"}, Metrics{Lines: 5})
	require.True(t, state.HasTotal())
	assert.Equal(t, 2, state.Widths.Lines)

	total := state.TotalRow()

	assert.Equal(t, Label{Kind: LabelTotal}, total.Label)
	assert.Equal(t, 10, total.Metrics.Lines)
	assert.Equal(t, 3, state.Widths.Lines)
}

func TestRunState_ClaimStdinOnce(t *testing.T) {
	state := newRunState()
	assert.True(t, state.claimStdin())
	assert.False(t, state.claimStdin())
	assert.False(t, state.claimStdin())
}
