// SPDX-License-Identifier: MIT
// Package: vortexgrid/vortex
//
// lines.go — segment construction along a digit traversal.
//
// Purpose:
//   - Walk a fixed digit sequence pairwise and connect resolvable pairs.
//   - Keep emission order stable (it fixes the global candidate order).
//
// Contract:
//   - A pair with either digit missing from the map is skipped silently;
//     with the fixed label tables this cannot happen, but the walker
//     must tolerate it rather than fail.
//
// Complexity: O(len(seq)) per call.
package vortex

import "fmt"

// traceSegments connects consecutive digits of seq using the stack's
// node map, naming each segment "<kind> <a>-<b> (stack <±offset>)".
func traceSegments(nodes map[int]Node, seq []int, kind SegmentKind, stack int) []Segment {
	segs := make([]Segment, 0, len(seq)-1)

	var (
		from, to Node
		ok       bool
	)
	for i := 0; i < len(seq)-1; i++ {
		if from, ok = nodes[seq[i]]; !ok {
			continue
		}
		if to, ok = nodes[seq[i+1]]; !ok {
			continue
		}

		segs = append(segs, Segment{
			Name: fmt.Sprintf("%s %d-%d (stack %+d)", kind, seq[i], seq[i+1], stack),
			X1:   from.Time, Y1: from.Price,
			X2:   to.Time, Y2: to.Price,
			Kind: kind,
		})
	}

	return segs
}
