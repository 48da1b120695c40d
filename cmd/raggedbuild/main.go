package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fastsearch/textindex/internal/codec"
	"github.com/fastsearch/textindex/internal/raggedfile"
)

// raggedbuild reads "row_id value" pairs (one per line, row ids non-decreasing)
// and writes a compressed ragged index file.

func main() {
	input := flag.String("input", "-", "Input file of 'row_id value' pairs, or - for stdin")
	output := flag.String("output", "", "Output ragged index file")
	numRows := flag.Int("rows", -1, "Number of rows (default: last row id + 1)")
	method := flag.String("codec", "lz4", "Compression codec: lz4 or none")
	flag.Parse()

	if *output == "" {
		fatalf("missing required -output")
	}

	var c codec.Codec
	switch *method {
	case "lz4":
		c = &codec.LZ4Codec{}
	case "none":
		c = &codec.NoneCodec{}
	default:
		fatalf("unknown codec %q", *method)
	}

	in := os.Stdin
	if *input != "-" {
		f, err := os.Open(*input)
		if err != nil {
			fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	rowIDs, values, err := readPairs(in)
	if err != nil {
		fatalf("read input: %v", err)
	}

	rows := *numRows
	if rows < 0 {
		rows = 0
		if len(rowIDs) > 0 {
			rows = int(rowIDs[len(rowIDs)-1]) + 1
		}
	}

	ix, err := raggedfile.New(rowIDs, values, rows)
	if err != nil {
		fatalf("build index: %v", err)
	}
	if err := raggedfile.Write(*output, ix, c); err != nil {
		fatalf("write index: %v", err)
	}
	fmt.Printf("wrote %s: %d rows, %d elements\n", *output, ix.NumRows(), ix.NumElems())
}

func readPairs(f *os.File) (rowIDs, values []uint32, err error) {
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, nil, fmt.Errorf("line %d: expected 'row_id value', got %q", lineNo, line)
		}
		id, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: bad row id: %w", lineNo, err)
		}
		v, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: bad value: %w", lineNo, err)
		}
		rowIDs = append(rowIDs, uint32(id))
		values = append(values, uint32(v))
	}
	return rowIDs, values, scanner.Err()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
