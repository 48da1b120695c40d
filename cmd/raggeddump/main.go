package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/fastsearch/textindex/internal/codec"
	"github.com/fastsearch/textindex/internal/raggedfile"
)

type blockJSON struct {
	Offset           int    `json:"offset"`
	MethodByte       uint8  `json:"method_byte"`
	CompressedBytes  uint32 `json:"compressed_bytes_with_header"`
	UncompressedSize uint32 `json:"uncompressed_bytes"`
}

type dumpJSON struct {
	File      string     `json:"file"`
	FileSize  int64      `json:"file_size"`
	Version   uint16     `json:"version"`
	NumRows   uint64     `json:"num_rows"`
	NumElems  uint64     `json:"num_elems"`
	Splits    blockJSON  `json:"splits_block"`
	Values    blockJSON  `json:"values_block"`
	RowSplits []uint32   `json:"row_splits,omitempty"`
	Rows      [][]uint32 `json:"rows,omitempty"`
}

func main() {
	file := flag.String("file", "", "Ragged index file to inspect")
	decode := flag.Bool("decode", false, "Also decode and print row splits and per-row values")
	flag.Parse()

	if *file == "" {
		fatalf("missing required -file")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		fatalf("read file: %v", err)
	}

	h, err := raggedfile.ParseHeader(data)
	if err != nil {
		fatalf("parse header: %v", err)
	}

	out := dumpJSON{
		File:     *file,
		FileSize: int64(len(data)),
		Version:  h.Version,
		NumRows:  h.NumRows,
		NumElems: h.NumElems,
	}

	splitsOffset := raggedfile.FileHeaderSize
	valuesOffset := splitsOffset + int(h.SplitsBlockSize)
	out.Splits = summarizeBlock(data, splitsOffset)
	out.Values = summarizeBlock(data, valuesOffset)

	if *decode {
		ix, err := raggedfile.Read(*file)
		if err != nil {
			fatalf("decode index: %v", err)
		}
		out.RowSplits = ix.RowSplits
		out.Rows = make([][]uint32, ix.NumRows())
		for r := 0; r < ix.NumRows(); r++ {
			out.Rows[r] = ix.Row(r)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatalf("encode json: %v", err)
	}
}

func summarizeBlock(data []byte, offset int) blockJSON {
	j := blockJSON{Offset: offset}
	if offset < 0 || offset >= len(data) {
		return j
	}
	block := data[offset:]
	j.MethodByte = block[0]
	csz, usz, err := codec.ReadBlockHeader(block)
	if err != nil {
		return j
	}
	j.CompressedBytes = csz
	j.UncompressedSize = usz
	return j
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
