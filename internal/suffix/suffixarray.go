package suffix

import (
	"fmt"
	"math"
	"sort"

	"github.com/fastsearch/textindex/internal/ragged"
)

// CreateSuffixArray builds the suffix array of data plus an appended EOS
// symbol chosen strictly greater than every input symbol, so EOS sorts after
// everything else. The result has len(data)+1 entries: a permutation of
// 0..len(data) ordering all suffixes of the padded sequence lexicographically,
// with the EOS-only suffix always last.
//
// When renumber is true the input symbols are first compacted to dense ranks
// (order-preserving), which keeps the alphabet small for large sparse symbol
// spaces.
func CreateSuffixArray(data []int64, renumber bool) ([]int64, error) {
	if len(data) == 0 {
		return []int64{0}, nil
	}

	padded := make([]int64, len(data)+1)
	if renumber {
		for i, r := range ragged.Renumber(data) {
			padded[i] = int64(r)
		}
	} else {
		copy(padded, data)
	}

	maxSymbol := padded[0]
	for _, v := range padded[:len(data)] {
		if v > maxSymbol {
			maxSymbol = v
		}
	}
	if maxSymbol >= math.MaxInt64-1 {
		return nil, fmt.Errorf("%w: symbol %d leaves no room for the EOS sentinel",
			ragged.ErrInvalidArgument, maxSymbol)
	}
	padded[len(data)] = maxSymbol + 1

	return buildSuffixArray(padded), nil
}

// buildSuffixArray is a prefix-doubling construction: suffixes are repeatedly
// sorted by (rank[i], rank[i+k]) pairs with k doubling each round, so ranks
// converge after O(log n) rounds. Suffixes that run off the end compare
// smaller, which matches true lexicographic order here because the unique
// trailing EOS distinguishes every pair of suffixes first.
func buildSuffixArray(data []int64) []int64 {
	n := len(data)
	sa := make([]int, n)
	for i := range sa {
		sa[i] = i
	}

	rank := make([]int, n)
	for i, r := range ragged.Renumber(data) {
		rank[i] = int(r)
	}

	tmp := make([]int, n)
	for k := 1; ; k *= 2 {
		less := func(a, b int) bool {
			if rank[a] != rank[b] {
				return rank[a] < rank[b]
			}
			ra, rb := -1, -1
			if a+k < n {
				ra = rank[a+k]
			}
			if b+k < n {
				rb = rank[b+k]
			}
			return ra < rb
		}
		sort.Slice(sa, func(i, j int) bool { return less(sa[i], sa[j]) })

		tmp[sa[0]] = 0
		for i := 1; i < n; i++ {
			tmp[sa[i]] = tmp[sa[i-1]]
			if less(sa[i-1], sa[i]) {
				tmp[sa[i]]++
			}
		}
		copy(rank, tmp)
		if rank[sa[n-1]] == n-1 {
			break
		}
	}

	out := make([]int64, n)
	for i, v := range sa {
		out[i] = int64(v)
	}
	return out
}
