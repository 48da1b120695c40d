package ragged

// Dropped marks entries of an old-to-new map whose element was filtered out.
const Dropped = ^uint32(0)

// CountTrue returns the number of true entries in a keep mask.
func CountTrue(keep []bool) int {
	n := 0
	for _, k := range keep {
		if k {
			n++
		}
	}
	return n
}

// New2Old returns, for each kept element, its index in the original array, in
// ascending order. The result has exactly CountTrue(keep) entries and is
// freshly allocated; an all-false mask yields an empty slice.
func New2Old(keep []bool) []uint32 {
	out := make([]uint32, 0, CountTrue(keep))
	for i, k := range keep {
		if k {
			out = append(out, uint32(i))
		}
	}
	return out
}

// Old2New is the inverse mapping of New2Old: for each original index, the
// index the element compacts to, or Dropped if it was filtered out. The second
// return value is the kept count.
func Old2New(keep []bool) ([]uint32, int) {
	out := make([]uint32, len(keep))
	n := uint32(0)
	for i, k := range keep {
		if k {
			out[i] = n
			n++
		} else {
			out[i] = Dropped
		}
	}
	return out, int(n)
}

// FilterSlice returns elements of data where keep[i] is true.
// Pre-counts matches for exact allocation.
func FilterSlice[T any](data []T, keep []bool) []T {
	out := make([]T, 0, CountTrue(keep))
	for i, k := range keep {
		if k {
			out = append(out, data[i])
		}
	}
	return out
}

// GatherSlice reorders data by the given index array. Composing it with
// New2Old reproduces FilterSlice.
func GatherSlice[T any](data []T, indexes []uint32) []T {
	out := make([]T, len(indexes))
	for i, idx := range indexes {
		out[i] = data[idx]
	}
	return out
}
