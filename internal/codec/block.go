package codec

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Block format:
//   [method_byte (1)] [compressed_size_with_header (4 LE)] [uncompressed_size (4 LE)]
//   [xxhash64 of compressed payload (8 LE)] [payload...]
//
// compressed_size_with_header includes the 17-byte header itself. The checksum
// covers only the payload, so header corruption surfaces as a size or method
// error rather than a hash mismatch.

// HeaderSize is the fixed block header length in bytes.
const HeaderSize = 17

// ErrIncompressible is returned by a codec when compression would not shrink
// the payload. CompressBlock handles it by storing the payload raw.
var ErrIncompressible = errors.New("codec: payload is incompressible")

// ErrChecksum indicates a payload whose xxhash64 does not match its header.
var ErrChecksum = errors.New("codec: block checksum mismatch")

// CompressBlock compresses data and returns the full block (header + payload).
// If the codec reports the data incompressible, the block is written with the
// None method instead.
func CompressBlock(c Codec, data []byte) ([]byte, error) {
	method := c.MethodByte()
	compressed, err := c.Compress(data)
	if errors.Is(err, ErrIncompressible) {
		method = MethodNone
		compressed, err = (&NoneCodec{}).Compress(data)
	}
	if err != nil {
		return nil, err
	}

	totalSize := HeaderSize + len(compressed)
	block := make([]byte, totalSize)
	block[0] = method
	binary.LittleEndian.PutUint32(block[1:5], uint32(totalSize))
	binary.LittleEndian.PutUint32(block[5:9], uint32(len(data)))
	binary.LittleEndian.PutUint64(block[9:17], xxhash.Sum64(compressed))
	copy(block[HeaderSize:], compressed)
	return block, nil
}

// DecompressBlock validates a block's header and checksum and returns the
// decompressed payload.
func DecompressBlock(block []byte) ([]byte, error) {
	if len(block) < HeaderSize {
		return nil, fmt.Errorf("compressed block too small: %d bytes", len(block))
	}

	method := block[0]
	compressedSizeWithHeader := binary.LittleEndian.Uint32(block[1:5])
	uncompressedSize := binary.LittleEndian.Uint32(block[5:9])
	checksum := binary.LittleEndian.Uint64(block[9:17])

	if int(compressedSizeWithHeader) > len(block) || compressedSizeWithHeader < HeaderSize {
		return nil, fmt.Errorf("compressed block size mismatch: header says %d, have %d",
			compressedSizeWithHeader, len(block))
	}
	payload := block[HeaderSize:compressedSizeWithHeader]
	if got := xxhash.Sum64(payload); got != checksum {
		return nil, fmt.Errorf("%w: expected %016x, got %016x", ErrChecksum, checksum, got)
	}

	c := ByMethod(method)
	if c == nil {
		return nil, fmt.Errorf("unknown compression method: 0x%02x", method)
	}
	return c.Decompress(payload, int(uncompressedSize))
}

// ReadBlockHeader returns the compressed (with header) and uncompressed sizes
// from a block header without touching the payload.
func ReadBlockHeader(block []byte) (compressedSize, uncompressedSize uint32, err error) {
	if len(block) < HeaderSize {
		return 0, 0, fmt.Errorf("compressed block too small: %d bytes", len(block))
	}
	return binary.LittleEndian.Uint32(block[1:5]), binary.LittleEndian.Uint32(block[5:9]), nil
}
