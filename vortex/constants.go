// SPDX-License-Identifier: MIT
// Package: vortexgrid/vortex
//
// constants.go — fixed domain parameters of the Rodin-circle layout.
//
// These are domain constants, not configuration: the whole point of the
// layout is that every caller shares the same circle. Nothing in this
// file is mutated at runtime.
package vortex

//-----------------------------------------------------------------------------
// Circle geometry
//-----------------------------------------------------------------------------

// timeCenter and timeRadius place the circle on the time axis:
// time = timeCenter + timeRadius·cos(θ), spanning 0..360.
const (
	timeCenter = 180.0
	timeRadius = 180.0
)

// nodeAngles are the five projection angles in degrees. The lower arc
// reuses the same angles with the price offset negated, so together
// they cover the nine distinct positions of a 40°-spaced circle
// (0° appears once: sin(0)=0 collapses its upper and lower points).
var nodeAngles = [5]float64{0, 40, 80, 120, 160}

//-----------------------------------------------------------------------------
// Digit labels
//-----------------------------------------------------------------------------

// upperLabels and lowerLabels are index-aligned with nodeAngles.
// upperLabels[i] names the node at +radius·sin, lowerLabels[i] the one
// at −radius·sin. Together they place 9 on the 0° axis, 1–4 ascending
// on the upper arc and 8–5 on the mirrored lower arc.
//
// Index 0 collides on digit 9 on purpose: the node map is keyed by
// digit and the lower write lands second, so last-write-wins. At 0°
// both writes carry the same point, so the collision is observable
// only as an invariant of the map, never as a value change.
var (
	upperLabels = [5]int{9, 1, 2, 3, 4}
	lowerLabels = [5]int{9, 8, 7, 6, 5}
)

// circuitSeq is the Rodin doubling circuit (1→2→4→8→7→5→1, mod-9
// doubling), walked pairwise into six segments closing a loop.
var circuitSeq = []int{1, 2, 4, 8, 7, 5, 1}

// fluxSeq is the 3-6-9 flux triangle, walked pairwise into three
// segments closing a loop.
var fluxSeq = []int{3, 6, 9, 3}

// pivotLabels are the digits emitted as standalone pivot levels,
// independent of any intersection outcome. They are the four off-axis
// extreme angles (40° and 160°, both arcs). Emission order is fixed.
var pivotLabels = [4]int{1, 4, 5, 8}

// stackOffsets are the three layer offsets; each shifts the mid-price
// by a full high−low range. Processing order is fixed: −1, 0, +1.
var stackOffsets = [3]int{-1, 0, 1}

//-----------------------------------------------------------------------------
// Tolerances
//-----------------------------------------------------------------------------

// parallelEps guards the intersection denominator: |denom| below this
// treats the pair as parallel/degenerate and reports no intersection.
// A deliberate tolerance, not geometric exactness.
const parallelEps = 1e-4

// priceEps and timeEps define near-duplicate equality for dedupe.
// Asymmetric on purpose: price needs tighter precision than time.
const (
	priceEps = 1e-4
	timeEps  = 1e-2
)
