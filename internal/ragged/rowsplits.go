package ragged

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every validation failure in this package.
var ErrInvalidArgument = errors.New("ragged: invalid argument")

// RowIdsToRowSplits converts a non-decreasing sequence of row ids into the
// row-splits (CSR-style prefix offset) representation. The output buffer is
// caller-provided; its length determines the row count: numRows = len(rowSplits)-1.
// On return rowSplits[r] is the position of the first element of row r and
// rowSplits[numRows] equals len(rowIDs). Rows with no elements get equal
// consecutive offsets.
//
// Offsets are uint32, so inputs are limited to 2^32-1 elements.
func RowIdsToRowSplits(rowIDs, rowSplits []uint32) error {
	if len(rowSplits) == 0 {
		return fmt.Errorf("%w: row splits buffer must have at least one entry", ErrInvalidArgument)
	}
	numRows := uint32(len(rowSplits) - 1)
	numElems := uint32(len(rowIDs))

	rowSplits[0] = 0
	prev := uint32(0)
	for i, id := range rowIDs {
		if id >= numRows {
			return fmt.Errorf("%w: row id %d at position %d out of range [0, %d)",
				ErrInvalidArgument, id, i, numRows)
		}
		if id < prev {
			return fmt.Errorf("%w: row ids must be non-decreasing, got %d after %d at position %d",
				ErrInvalidArgument, id, prev, i)
		}
		// Row advanced: every row in (prev, id] starts here. Rows skipped
		// entirely are empty and share the same offset.
		for r := prev; r < id; r++ {
			rowSplits[r+1] = uint32(i)
		}
		prev = id
	}
	// Trailing rows (possibly empty) all end at numElems.
	for r := prev; r < numRows; r++ {
		rowSplits[r+1] = numElems
	}
	return nil
}

// CheckRowSplits validates the row-splits invariants: at least one entry,
// first entry zero, non-decreasing.
func CheckRowSplits(rowSplits []uint32) error {
	if len(rowSplits) == 0 {
		return fmt.Errorf("%w: row splits must have at least one entry", ErrInvalidArgument)
	}
	if rowSplits[0] != 0 {
		return fmt.Errorf("%w: row splits must start at 0, got %d", ErrInvalidArgument, rowSplits[0])
	}
	for i := 1; i < len(rowSplits); i++ {
		if rowSplits[i] < rowSplits[i-1] {
			return fmt.Errorf("%w: row splits must be non-decreasing, got %d after %d at position %d",
				ErrInvalidArgument, rowSplits[i], rowSplits[i-1], i)
		}
	}
	return nil
}

// RowSplitsToRowIds expands a row-splits array back into per-element row ids,
// writing into the caller-provided buffer. It is the inverse of
// RowIdsToRowSplits: len(rowIDs) must equal rowSplits[len(rowSplits)-1].
func RowSplitsToRowIds(rowSplits, rowIDs []uint32) error {
	if err := CheckRowSplits(rowSplits); err != nil {
		return err
	}
	numRows := len(rowSplits) - 1
	total := rowSplits[numRows]
	if uint32(len(rowIDs)) != total {
		return fmt.Errorf("%w: row ids buffer has %d entries, row splits describe %d elements",
			ErrInvalidArgument, len(rowIDs), total)
	}
	for r := 0; r < numRows; r++ {
		for i := rowSplits[r]; i < rowSplits[r+1]; i++ {
			rowIDs[i] = uint32(r)
		}
	}
	return nil
}
