package raggedfile

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/fastsearch/textindex/internal/codec"
)

// Write serializes an Index to path using the given codec. The file is
// written to a temporary sibling first and renamed into place so readers
// never observe a partial file.
func Write(path string, ix *Index, c codec.Codec) error {
	if err := ix.validate(); err != nil {
		return err
	}

	splitsBlock, err := codec.CompressBlock(c, encodeUint32s(ix.RowSplits))
	if err != nil {
		return fmt.Errorf("compressing row splits: %w", err)
	}
	valuesBlock, err := codec.CompressBlock(c, encodeUint32s(ix.Values))
	if err != nil {
		return fmt.Errorf("compressing values: %w", err)
	}

	buf := encodeHeader(ix.NumRows(), ix.NumElems(), uint32(len(splitsBlock)), uint32(len(valuesBlock)))
	buf = append(buf, splitsBlock...)
	buf = append(buf, valuesBlock...)

	tmpPath := fmt.Sprintf("%s.tmp-%s", path, uuid.NewString())
	if err := os.WriteFile(tmpPath, buf, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming %s: %w", tmpPath, err)
	}
	return nil
}
