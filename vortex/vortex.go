// SPDX-License-Identifier: MIT
// Package: vortexgrid/vortex
//
// vortex.go — the Compute entry point orchestrating all stages.
package vortex

import "math"

// Compute derives the full level grid for a price range.
//
// Pipeline:
//  1. mid = (high+low)/2, radius = (high−low)/2.
//  2. For each stack offset −1, 0, +1 (mid shifted by a full range):
//     project nodes, emit the pivot levels, trace the circuit and flux
//     segments into one global slice.
//  3. Cross every unordered segment pair; bounded hits become levels.
//  4. Dedupe (first seen wins) and sort by price descending.
//
// Contract:
//   - Returns ErrNonFiniteInput when either bound is NaN or ±Inf.
//   - priceHigh ≥ priceLow is assumed, not enforced: a reversed pair
//     is computed as-is and yields the mirrored (negative-radius)
//     geometry. Callers wanting rejection must check upfront.
//   - Deterministic: identical inputs yield identical sequences.
//
// Complexity: bounded — 3 stacks × 9 segments, ≤ 351 pair tests.
func Compute(priceHigh, priceLow float64) ([]Level, error) {
	if !isFinite(priceHigh) || !isFinite(priceLow) {
		return nil, ErrNonFiniteInput
	}

	var (
		mid    = (priceHigh + priceLow) / 2
		span   = priceHigh - priceLow
		radius = span / 2
	)

	// Stage 1+2: nodes, pivots and segments per stack, fixed order.
	segments := make([]Segment, 0, len(stackOffsets)*(len(circuitSeq)+len(fluxSeq)-2))
	var candidates []Level
	for _, offset := range stackOffsets {
		nodes := projectNodes(mid+float64(offset)*span, radius)

		candidates = append(candidates, pivotLevels(nodes, offset)...)
		segments = append(segments, traceSegments(nodes, circuitSeq, KindCircuit, offset)...)
		segments = append(segments, traceSegments(nodes, fluxSeq, KindFlux, offset)...)
	}

	// Stage 3: intersections only after all stacks' segments exist.
	candidates = append(candidates, crossSegments(segments)...)

	// Stage 4: dedupe, then stable top-down ordering.
	levels := dedupeLevels(candidates)
	sortLevels(levels)

	return levels, nil
}

// isFinite reports whether f is neither NaN nor ±Inf.
func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
