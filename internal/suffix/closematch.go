package suffix

import (
	"fmt"

	"github.com/fastsearch/textindex/internal/ragged"
)

// FindCloseMatches locates, for each query position, the two reference
// positions whose suffixes are lexicographically adjacent to it. The suffix
// array must cover a text whose first queryLen positions are the query and
// whose remaining positions are the reference (the last position being the
// EOS appended by CreateSuffixArray).
//
// The result has 2*queryLen entries: positions 2*i and 2*i+1 hold the
// reference positions immediately preceding and following query position i in
// suffix-array order. Where the true neighbor would be the EOS position
// (seqLen-1), or where a query position precedes every reference position,
// seqLen-2 is substituted so callers never see the sentinel.
func FindCloseMatches(suffixArray []int64, queryLen int) ([]int64, error) {
	seqLen := len(suffixArray)
	if queryLen < 0 || queryLen >= seqLen {
		return nil, fmt.Errorf("%w: query length %d must be in [0, %d)",
			ragged.ErrInvalidArgument, queryLen, seqLen)
	}

	output := make([]int64, 2*queryLen)
	lastRef := -1
	for i, textPos := range suffixArray {
		if textPos < int64(queryLen) {
			continue
		}
		followPos := textPos
		if followPos == int64(seqLen-1) {
			followPos = int64(seqLen - 2)
		}
		for j := lastRef + 1; j < i; j++ {
			queryPos := suffixArray[j]
			if queryPos >= int64(queryLen) {
				continue
			}
			precedePos := int64(seqLen - 2)
			if lastRef != -1 {
				precedePos = suffixArray[lastRef]
			}
			output[2*queryPos] = precedePos
			output[2*queryPos+1] = followPos
		}
		lastRef = i
	}
	return output, nil
}
