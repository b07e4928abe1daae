// Package vortex computes Rodin-circle price levels from a high/low
// range: node projection, circuit/flux segment construction, pairwise
// intersection testing and tolerance-based deduplication.
//
// 🚀 What does vortex do?
//
//	Given priceHigh and priceLow it derives mid = (high+low)/2 and
//	radius = (high−low)/2, then for each of three stacked layers
//	(mid shifted by −1, 0, +1 full ranges):
//	  • places the digits 1–9 on a circle at five fixed angles
//	    (0°, 40°, 80°, 120°, 160°, mirrored below the axis),
//	    time = 180 + 180·cos(θ), price = mid ± radius·sin(θ)
//	  • flags digits 1, 4, 5, 8 as standalone pivot levels
//	  • connects digits along the doubling circuit 1-2-4-8-7-5-1 and
//	    the flux triangle 3-6-9-3
//	After all three layers exist, every segment is tested against every
//	other (across layers too) for a bounded intersection; hits become
//	levels alongside the pivots. Near-duplicates are dropped
//	(first seen wins) and the survivors are sorted by price, top-down.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/vortexgrid/vortex"
//
//	levels, err := vortex.Compute(1.0850, 1.0800)
//	if err != nil {
//	  // handle ErrNonFiniteInput
//	}
//	for _, l := range levels {
//	  fmt.Printf("%.4f (%d) @ %.2f  %s\n",
//	    l.Price, vortex.DigitalRoot(l.Price), l.Time, l.Origin)
//	}
//
// Performance:
//
//   - Bounded work: 3 stacks × 9 segments ⇒ at most 351 pair tests.
//   - Time: O(1) for practical purposes, Memory: O(levels).
//
// Determinism: no maps are ranged over, no RNG, no clocks — identical
// inputs produce identical sequences, bit for bit.
//
// See example_test.go for runnable scenarios.
package vortex
