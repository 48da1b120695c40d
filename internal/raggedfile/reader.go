package raggedfile

import (
	"fmt"
	"os"

	"github.com/fastsearch/textindex/internal/codec"
)

// Read loads an Index from path, validating the header, block checksums and
// the row-splits invariants.
func Read(path string) (*Index, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	h, err := ParseHeader(data)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	rest := data[FileHeaderSize:]
	if uint64(len(rest)) != uint64(h.SplitsBlockSize)+uint64(h.ValuesBlockSize) {
		return nil, fmt.Errorf("reading %s: %d block bytes, header describes %d",
			path, len(rest), h.SplitsBlockSize+h.ValuesBlockSize)
	}

	splitsPayload, err := codec.DecompressBlock(rest[:h.SplitsBlockSize])
	if err != nil {
		return nil, fmt.Errorf("decompressing row splits of %s: %w", path, err)
	}
	valuesPayload, err := codec.DecompressBlock(rest[h.SplitsBlockSize:])
	if err != nil {
		return nil, fmt.Errorf("decompressing values of %s: %w", path, err)
	}

	rowSplits, err := decodeUint32s(splitsPayload, int(h.NumRows)+1)
	if err != nil {
		return nil, fmt.Errorf("decoding row splits of %s: %w", path, err)
	}
	values, err := decodeUint32s(valuesPayload, int(h.NumElems))
	if err != nil {
		return nil, fmt.Errorf("decoding values of %s: %w", path, err)
	}

	ix := &Index{RowSplits: rowSplits, Values: values}
	if err := ix.validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	return ix, nil
}
