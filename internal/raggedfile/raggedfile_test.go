package raggedfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fastsearch/textindex/internal/codec"
	"github.com/fastsearch/textindex/internal/raggedfile"
)

func TestNew(t *testing.T) {
	rowIDs := []uint32{0, 0, 1, 3, 3, 3}
	values := []uint32{10, 11, 20, 40, 41, 42}
	ix, err := raggedfile.New(rowIDs, values, 4)
	require.NoError(t, err)
	require.Equal(t, 4, ix.NumRows())
	require.Equal(t, 6, ix.NumElems())
	require.Equal(t, []uint32{0, 2, 3, 3, 6}, ix.RowSplits)
	require.Equal(t, []uint32{10, 11}, ix.Row(0))
	require.Empty(t, ix.Row(2))
	require.Equal(t, []uint32{40, 41, 42}, ix.Row(3))
}

func TestNew_Invalid(t *testing.T) {
	_, err := raggedfile.New([]uint32{0, 1}, []uint32{1}, 2)
	require.Error(t, err)

	_, err = raggedfile.New([]uint32{0, 5}, []uint32{1, 2}, 2)
	require.Error(t, err)
}

func TestWriteRead_RoundTrip(t *testing.T) {
	for name, c := range map[string]codec.Codec{
		"lz4":  &codec.LZ4Codec{},
		"none": &codec.NoneCodec{},
	} {
		t.Run(name, func(t *testing.T) {
			rowIDs := make([]uint32, 0, 3000)
			values := make([]uint32, 0, 3000)
			for i := 0; i < 3000; i++ {
				rowIDs = append(rowIDs, uint32(i/100))
				values = append(values, uint32(i%7))
			}
			ix, err := raggedfile.New(rowIDs, values, 30)
			require.NoError(t, err)

			path := filepath.Join(t.TempDir(), "index.rgix")
			require.NoError(t, raggedfile.Write(path, ix, c))

			got, err := raggedfile.Read(path)
			require.NoError(t, err)
			require.Equal(t, ix.RowSplits, got.RowSplits)
			require.Equal(t, ix.Values, got.Values)
		})
	}
}

func TestWriteRead_EmptyIndex(t *testing.T) {
	ix, err := raggedfile.New(nil, nil, 0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "empty.rgix")
	require.NoError(t, raggedfile.Write(path, ix, &codec.LZ4Codec{}))

	got, err := raggedfile.Read(path)
	require.NoError(t, err)
	require.Equal(t, []uint32{0}, got.RowSplits)
	require.Empty(t, got.Values)
}

func TestWrite_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	ix, err := raggedfile.New([]uint32{0, 1}, []uint32{7, 8}, 2)
	require.NoError(t, err)
	require.NoError(t, raggedfile.Write(filepath.Join(dir, "a.rgix"), ix, &codec.NoneCodec{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "a.rgix", entries[0].Name())
}

func TestRead_BadMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.rgix")
	require.NoError(t, os.WriteFile(path, []byte("not an index file at all, just text"), 0644))
	_, err := raggedfile.Read(path)
	require.ErrorContains(t, err, "bad magic")
}

func TestRead_CorruptBlock(t *testing.T) {
	ix, err := raggedfile.New([]uint32{0, 0, 1}, []uint32{1, 2, 3}, 2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "corrupt.rgix")
	require.NoError(t, raggedfile.Write(path, ix, &codec.NoneCodec{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[len(data)-1] ^= 0xff
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err = raggedfile.Read(path)
	require.ErrorIs(t, err, codec.ErrChecksum)
}
