// Package vortex: tolerance-based deduplication and final ordering.
package vortex

import (
	"math"
	"sort"
)

// dedupeLevels filters candidates in generation order, first seen wins.
// Two levels are "the same" when |ΔPrice| < priceEps AND |ΔTime| < timeEps.
// O(n²) over a candidate count bounded by a small constant.
func dedupeLevels(candidates []Level) []Level {
	kept := make([]Level, 0, len(candidates))

	var dup bool
	for _, c := range candidates {
		dup = false
		for _, k := range kept {
			if math.Abs(c.Price-k.Price) < priceEps && math.Abs(c.Time-k.Time) < timeEps {
				dup = true

				break
			}
		}
		if !dup {
			kept = append(kept, c)
		}
	}

	return kept
}

// sortLevels orders levels by price descending, in place. Stable, so
// equal prices keep their dedupe order.
func sortLevels(levels []Level) {
	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].Price > levels[j].Price
	})
}
