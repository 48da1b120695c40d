package ragged

import (
	"errors"
	"testing"
)

func TestRowIdsToRowSplits_Basic(t *testing.T) {
	rowIDs := []uint32{0, 0, 1, 3, 3, 3}
	rowSplits := make([]uint32, 5)
	if err := RowIdsToRowSplits(rowIDs, rowSplits); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint32{0, 2, 3, 3, 6}
	for i, v := range want {
		if rowSplits[i] != v {
			t.Fatalf("split %d: expected %d, got %d", i, v, rowSplits[i])
		}
	}
}

func TestRowIdsToRowSplits_Empty(t *testing.T) {
	rowSplits := make([]uint32, 1)
	rowSplits[0] = 99 // must be overwritten
	if err := RowIdsToRowSplits(nil, rowSplits); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rowSplits[0] != 0 {
		t.Fatalf("expected [0], got %v", rowSplits)
	}
}

func TestRowIdsToRowSplits_EmptyRows(t *testing.T) {
	// All rows empty: every split is 0.
	rowSplits := make([]uint32, 4)
	if err := RowIdsToRowSplits(nil, rowSplits); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range rowSplits {
		if v != 0 {
			t.Fatalf("split %d: expected 0, got %d", i, v)
		}
	}
}

func TestRowIdsToRowSplits_LeadingAndTrailingEmptyRows(t *testing.T) {
	// Rows 0, 1 and 4, 5 are empty.
	rowIDs := []uint32{2, 2, 3}
	rowSplits := make([]uint32, 7)
	if err := RowIdsToRowSplits(rowIDs, rowSplits); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint32{0, 0, 0, 2, 3, 3, 3}
	for i, v := range want {
		if rowSplits[i] != v {
			t.Fatalf("split %d: expected %d, got %d", i, v, rowSplits[i])
		}
	}
}

func TestRowIdsToRowSplits_ElementCounts(t *testing.T) {
	rowIDs := []uint32{0, 0, 0, 2, 2, 4}
	rowSplits := make([]uint32, 6)
	if err := RowIdsToRowSplits(rowIDs, rowSplits); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rowSplits[0] != 0 {
		t.Fatalf("expected first split 0, got %d", rowSplits[0])
	}
	if rowSplits[5] != uint32(len(rowIDs)) {
		t.Fatalf("expected last split %d, got %d", len(rowIDs), rowSplits[5])
	}
	// Per-row counts must match occurrences in rowIDs.
	for r := 0; r < 5; r++ {
		count := 0
		for _, id := range rowIDs {
			if id == uint32(r) {
				count++
			}
		}
		got := int(rowSplits[r+1] - rowSplits[r])
		if got != count {
			t.Fatalf("row %d: expected %d elements, got %d", r, count, got)
		}
	}
}

func TestRowIdsToRowSplits_OutOfRange(t *testing.T) {
	rowIDs := []uint32{0, 1, 4}
	rowSplits := make([]uint32, 4) // only 3 rows
	err := RowIdsToRowSplits(rowIDs, rowSplits)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRowIdsToRowSplits_NonMonotonic(t *testing.T) {
	rowIDs := []uint32{0, 2, 1}
	rowSplits := make([]uint32, 4)
	err := RowIdsToRowSplits(rowIDs, rowSplits)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRowIdsToRowSplits_EmptySplitsBuffer(t *testing.T) {
	err := RowIdsToRowSplits([]uint32{0}, nil)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestRowSplitsToRowIds_RoundTrip(t *testing.T) {
	cases := [][]uint32{
		{0, 0, 1, 3, 3, 3},
		{},
		{0},
		{2, 2, 3},
		{0, 1, 2, 3, 4},
	}
	for _, rowIDs := range cases {
		numRows := uint32(0)
		if len(rowIDs) > 0 {
			numRows = rowIDs[len(rowIDs)-1] + 1
		}
		rowSplits := make([]uint32, numRows+1)
		if err := RowIdsToRowSplits(rowIDs, rowSplits); err != nil {
			t.Fatalf("RowIdsToRowSplits(%v): %v", rowIDs, err)
		}
		back := make([]uint32, len(rowIDs))
		if err := RowSplitsToRowIds(rowSplits, back); err != nil {
			t.Fatalf("RowSplitsToRowIds(%v): %v", rowSplits, err)
		}
		for i := range rowIDs {
			if back[i] != rowIDs[i] {
				t.Fatalf("round trip of %v: position %d expected %d, got %d",
					rowIDs, i, rowIDs[i], back[i])
			}
		}
	}
}

func TestRowSplitsToRowIds_Invalid(t *testing.T) {
	// First entry must be 0.
	if err := RowSplitsToRowIds([]uint32{1, 2}, make([]uint32, 2)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for nonzero start, got %v", err)
	}
	// Must be non-decreasing.
	if err := RowSplitsToRowIds([]uint32{0, 3, 2}, make([]uint32, 2)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for decreasing splits, got %v", err)
	}
	// Output buffer length must match the described element count.
	if err := RowSplitsToRowIds([]uint32{0, 2}, make([]uint32, 3)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for length mismatch, got %v", err)
	}
}

func TestCheckRowSplits(t *testing.T) {
	if err := CheckRowSplits([]uint32{0, 2, 2, 5}); err != nil {
		t.Fatalf("unexpected error for valid splits: %v", err)
	}
	if err := CheckRowSplits(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for empty splits, got %v", err)
	}
}
