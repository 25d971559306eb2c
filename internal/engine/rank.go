package engine

import (
	"cmp"
	"slices"
)

// Rank orders results by match percentage (descending, full precision) and
// candidate id (ascending) on ties, assigns contiguous 1-based ranks and
// keeps the first limit entries. A limit of zero or less keeps everything.
// The input slice is reordered in place.
func Rank(results []MatchResult, limit int) []MatchResult {
	slices.SortStableFunc(results, func(a, b MatchResult) int {
		if c := cmp.Compare(b.MatchPercentage, a.MatchPercentage); c != 0 {
			return c
		}
		return cmp.Compare(a.CandidateID, b.CandidateID)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	for i := range results {
		results[i].Rank = i + 1
	}

	return results
}
