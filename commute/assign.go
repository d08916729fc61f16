// SPDX-License-Identifier: MIT

package commute

import "github.com/katalvlaran/commute/chunk"

// Assign lays the batch out as independent work items. Slot s owns the
// pairs at positions s, s+workers, s+2*workers, ...; for each owned pair one
// item is emitted per coordinate. Slots with no pair (workers > len(pairs))
// contribute nothing.
//
// Output order is slot, then pair within slot, then coordinate. Consumers
// must not rely on it: every item carries its own pair index.
//
// Errors: ErrInvalidWorkers (workers < 1).
// Complexity: O(len(pairs) * len(coords)).
func Assign(workers int, pairs []Pair, coords []chunk.Coordinate, fault bool) ([]WorkItem, error) {
	if workers < 1 {
		return nil, commuteErrorf("Assign", ErrInvalidWorkers)
	}

	items := make([]WorkItem, 0, len(pairs)*len(coords))
	for slot := 0; slot < workers; slot++ {
		for p := slot; p < len(pairs); p += workers {
			pair := &pairs[p]
			for _, c := range coords {
				items = append(items, WorkItem{
					Coord:          c,
					PairIndex:      pair.Index,
					Slot:           slot,
					Pair:           pair,
					FaultInjection: fault,
				})
			}
		}
	}

	return items, nil
}
