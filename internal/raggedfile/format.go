package raggedfile

import (
	"encoding/binary"
	"fmt"
)

// File layout:
//   [magic "RGIX" (4)] [version (2 LE)] [reserved (2)]
//   [num_rows (8 LE)] [num_elems (8 LE)]
//   [splits_block_size (4 LE)] [values_block_size (4 LE)]
//   [row-splits codec block] [values codec block]
//
// Both codec blocks use the framing from internal/codec. The row-splits block
// always holds num_rows+1 offsets; the values block holds num_elems uint32s.

const (
	Magic          = "RGIX"
	FormatVersion  = 1
	FileHeaderSize = 32
)

// Header is the decoded fixed-size file header.
type Header struct {
	Version         uint16
	NumRows         uint64
	NumElems        uint64
	SplitsBlockSize uint32
	ValuesBlockSize uint32
}

// ParseHeader decodes and validates the fixed file header.
func ParseHeader(data []byte) (Header, error) {
	var h Header
	if len(data) < FileHeaderSize {
		return h, fmt.Errorf("file too small for header: %d bytes", len(data))
	}
	if string(data[0:4]) != Magic {
		return h, fmt.Errorf("bad magic %q, expected %q", data[0:4], Magic)
	}
	h.Version = binary.LittleEndian.Uint16(data[4:6])
	if h.Version != FormatVersion {
		return h, fmt.Errorf("unsupported format version %d", h.Version)
	}
	h.NumRows = binary.LittleEndian.Uint64(data[8:16])
	h.NumElems = binary.LittleEndian.Uint64(data[16:24])
	h.SplitsBlockSize = binary.LittleEndian.Uint32(data[24:28])
	h.ValuesBlockSize = binary.LittleEndian.Uint32(data[28:32])
	return h, nil
}

func encodeHeader(numRows, numElems int, splitsBlockSize, valuesBlockSize uint32) []byte {
	buf := make([]byte, FileHeaderSize)
	copy(buf[0:4], Magic)
	binary.LittleEndian.PutUint16(buf[4:6], FormatVersion)
	binary.LittleEndian.PutUint64(buf[8:16], uint64(numRows))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(numElems))
	binary.LittleEndian.PutUint32(buf[24:28], splitsBlockSize)
	binary.LittleEndian.PutUint32(buf[28:32], valuesBlockSize)
	return buf
}

func encodeUint32s(values []uint32) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[4*i:], v)
	}
	return buf
}

func decodeUint32s(data []byte, count int) ([]uint32, error) {
	if len(data) != 4*count {
		return nil, fmt.Errorf("payload is %d bytes, expected %d for %d uint32s",
			len(data), 4*count, count)
	}
	values := make([]uint32, count)
	for i := range values {
		values[i] = binary.LittleEndian.Uint32(data[4*i:])
	}
	return values, nil
}
