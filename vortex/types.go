// Package vortex defines core types and sentinel errors for the
// vortex subpackage of github.com/katalvlaran/vortexgrid.
package vortex

import "errors"

// Sentinel errors for vortex operations.
var (
	// ErrNonFiniteInput indicates a price bound is NaN or ±Inf.
	ErrNonFiniteInput = errors.New("vortex: price bounds must be finite")
)

// SegmentKind tells which traversal produced a segment: the doubling
// circuit (1-2-4-8-7-5-1) or the flux triangle (3-6-9-3).
type SegmentKind int

const (
	// KindCircuit marks segments from the doubling circuit.
	KindCircuit SegmentKind = iota
	// KindFlux marks segments from the 3-6-9 flux triangle.
	KindFlux
)

// String returns the lowercase kind name used in segment names.
func (k SegmentKind) String() string {
	if k == KindFlux {
		return "flux"
	}

	return "circuit"
}

// Node is one projected circle position within a single stack:
// a (time, price) point labeled with its Rodin digit.
// Nodes live only as long as their stack is being built.
type Node struct {
	Time  float64 // 180 + 180·cos(θ)
	Price float64 // stack mid ± radius·sin(θ)
	Digit int     // 1..9
}

// Segment is one line piece connecting two nodes of a stack.
// Immutable once created; all stacks' segments coexist in one slice
// before intersection testing.
type Segment struct {
	// Name encodes kind, both digits and the stack offset, e.g.
	// "circuit 2-4 (stack +1)". Traceability only — never compared.
	Name           string
	X1, Y1, X2, Y2 float64 // X = time, Y = price
	Kind           SegmentKind
}

// Level is one resulting price level.
type Level struct {
	// Price is the level value; the final sequence is sorted on it,
	// descending.
	Price float64

	// Time is the circle time coordinate (0..360) the level came from.
	Time float64

	// Origin is a human-readable trail: either a pivot digit with its
	// stack, or the names of the two segments that crossed.
	Origin string
}
