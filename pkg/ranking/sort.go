package ranking

import (
	"sort"

	"github.com/japaniel/wakachi/pkg/model"
)

// less orders a ahead of b when a is the better headword candidate: the
// longer match wins first, then the fewer deinflection steps, then the
// lower headword type, then the higher priority score.
func less(a, b model.WordResult) bool {
	if a.MatchLen != b.MatchLen {
		return a.MatchLen > b.MatchLen
	}

	stepsA, stepsB := a.ReasonChains.MaxLen(), b.ReasonChains.MaxLen()
	if stepsA != stepsB {
		return stepsA < stepsB
	}

	typeA, typeB := HeadwordType(a.Entry), HeadwordType(b.Entry)
	if typeA != typeB {
		return typeA < typeB
	}

	return PriorityScore(a.Entry) > PriorityScore(b.Entry)
}

// Sort orders results from best to worst headword candidate, in place, and
// returns the same slice for convenience. The ordering is deterministic:
// equal results retain their relative input order.
func Sort(results []model.WordResult) []model.WordResult {
	sort.SliceStable(results, func(i, j int) bool {
		return less(results[i], results[j])
	})
	return results
}

// Best returns the highest-ranked result in results, or nil if results is
// empty. results is left in sorted order as a side effect.
func Best(results []model.WordResult) *model.WordResult {
	if len(results) == 0 {
		return nil
	}
	Sort(results)
	return &results[0]
}
