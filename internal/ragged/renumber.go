package ragged

import "slices"

// numeric is the type constraint for Renumber.
type numeric interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~float32 | ~float64
}

// Renumber maps each element of data to its rank among the sorted distinct
// values, producing entries in [0, M) where M is the number of distinct
// values. The mapping preserves order: data[i] < data[j] implies
// out[i] < out[j], and equal elements get equal ranks.
func Renumber[T numeric](data []T) []uint32 {
	uniq := slices.Clone(data)
	slices.Sort(uniq)
	uniq = slices.Compact(uniq)

	out := make([]uint32, len(data))
	for i, v := range data {
		r, _ := slices.BinarySearch(uniq, v)
		out[i] = uint32(r)
	}
	return out
}
