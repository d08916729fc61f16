// SPDX-License-Identifier: MIT

package commute

import "sort"

// Aggregate groups verdicts by pair index. A pair fails if ANY of its
// verdicts is unequal. The input order is irrelevant; outputs are sorted by
// pair index so reports are stable.
//
// Complexity: O(V + P log P) for V verdicts over P distinct pairs.
func Aggregate(verdicts []Verdict) Summary {
	byPair := make(map[int]*PairSummary)
	for _, v := range verdicts {
		s, ok := byPair[v.PairIndex]
		if !ok {
			s = &PairSummary{Index: v.PairIndex}
			byPair[v.PairIndex] = s
		}
		s.Chunks++
		if !v.Equal {
			s.Mismatches++
		}
	}

	out := Summary{
		Failing: []int{},
		Pairs:   make([]PairSummary, 0, len(byPair)),
	}
	for _, s := range byPair {
		out.Pairs = append(out.Pairs, *s)
		if s.Failed() {
			out.Failing = append(out.Failing, s.Index)
		}
	}
	sort.Slice(out.Pairs, func(i, j int) bool { return out.Pairs[i].Index < out.Pairs[j].Index })
	sort.Ints(out.Failing)

	return out
}
