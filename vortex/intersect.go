// SPDX-License-Identifier: MIT
// Package: vortexgrid/vortex
//
// intersect.go — pivot emission and pairwise segment intersection.
//
// Purpose:
//   - Emit the four pivot digits of a stack as standalone levels.
//   - Cross every unordered segment pair (across stacks too) with the
//     standard parametric method and collect bounded hits.
//
// Contract:
//   - |denom| < parallelEps ⇒ pair skipped, no level (not an error).
//   - A hit is accepted only with t ∈ [0,1] AND u ∈ [0,1]: strictly
//     segment-bounded, never an extended-line intersection.
//
// Complexity:
//   - O(n²) pair tests over n ≤ 27 segments. Bounded small constant —
//     a sweep-line or spatial index would add code for no benefit here.
package vortex

import (
	"fmt"
	"math"
)

// pivotLevels copies the four pivot digits of one stack out of the
// node map, in fixed pivotLabels order.
func pivotLevels(nodes map[int]Node, stack int) []Level {
	levels := make([]Level, 0, len(pivotLabels))

	for _, digit := range pivotLabels {
		n, ok := nodes[digit]
		if !ok {
			continue
		}
		levels = append(levels, Level{
			Price:  n.Price,
			Time:   n.Time,
			Origin: fmt.Sprintf("pivot %d (stack %+d)", digit, stack),
		})
	}

	return levels
}

// crossSegments tests every unordered pair i<j of segs and returns the
// bounded intersection points as levels, in pair order.
func crossSegments(segs []Segment) []Level {
	var levels []Level

	var (
		x, y float64
		ok   bool
	)
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			if x, y, ok = segmentCross(segs[i], segs[j]); !ok {
				continue
			}
			levels = append(levels, Level{
				Price:  y,
				Time:   x,
				Origin: fmt.Sprintf("%s x %s", segs[i].Name, segs[j].Name),
			})
		}
	}

	return levels
}

// segmentCross solves the parametric intersection of segments a and b.
//
// With P1P2 = a and P3P4 = b:
//
//	denom = (x1−x2)(y3−y4) − (y1−y2)(x3−x4)
//	t     = ((x1−x3)(y3−y4) − (y1−y3)(x3−x4)) / denom
//	u     = ((x1−x3)(y1−y2) − (y1−y3)(x1−x2)) / denom
//
// Reports (point, true) only when |denom| ≥ parallelEps and both
// parameters land in [0,1]; the point is P1 + t·(P2−P1).
func segmentCross(a, b Segment) (x, y float64, ok bool) {
	denom := (a.X1-a.X2)*(b.Y1-b.Y2) - (a.Y1-a.Y2)*(b.X1-b.X2)
	if math.Abs(denom) < parallelEps {
		return 0, 0, false
	}

	t := ((a.X1-b.X1)*(b.Y1-b.Y2) - (a.Y1-b.Y1)*(b.X1-b.X2)) / denom
	u := ((a.X1-b.X1)*(a.Y1-a.Y2) - (a.Y1-b.Y1)*(a.X1-a.X2)) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return 0, 0, false
	}

	return a.X1 + t*(a.X2-a.X1), a.Y1 + t*(a.Y2-a.Y1), true
}
