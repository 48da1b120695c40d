package raggedfile

import (
	"fmt"

	"github.com/fastsearch/textindex/internal/ragged"
)

// Index is an in-memory ragged uint32 array: a flat element array plus the
// row-splits offsets describing row boundaries.
type Index struct {
	RowSplits []uint32
	Values    []uint32
}

// New builds an Index from per-element row ids. The row ids must be
// non-decreasing and within [0, numRows).
func New(rowIDs, values []uint32, numRows int) (*Index, error) {
	if len(rowIDs) != len(values) {
		return nil, fmt.Errorf("%w: %d row ids for %d values",
			ragged.ErrInvalidArgument, len(rowIDs), len(values))
	}
	rowSplits := make([]uint32, numRows+1)
	if err := ragged.RowIdsToRowSplits(rowIDs, rowSplits); err != nil {
		return nil, err
	}
	vals := make([]uint32, len(values))
	copy(vals, values)
	return &Index{RowSplits: rowSplits, Values: vals}, nil
}

func (ix *Index) NumRows() int  { return len(ix.RowSplits) - 1 }
func (ix *Index) NumElems() int { return len(ix.Values) }

// Row returns the values of row r as a sub-slice of the flat array.
func (ix *Index) Row(r int) []uint32 {
	return ix.Values[ix.RowSplits[r]:ix.RowSplits[r+1]]
}

// validate checks the invariants a well-formed Index satisfies. Used after
// deserialization.
func (ix *Index) validate() error {
	if len(ix.RowSplits) == 0 {
		return fmt.Errorf("%w: index has no row splits", ragged.ErrInvalidArgument)
	}
	if err := ragged.CheckRowSplits(ix.RowSplits); err != nil {
		return err
	}
	if last := ix.RowSplits[len(ix.RowSplits)-1]; int(last) != len(ix.Values) {
		return fmt.Errorf("%w: row splits describe %d elements, have %d values",
			ragged.ErrInvalidArgument, last, len(ix.Values))
	}
	return nil
}
