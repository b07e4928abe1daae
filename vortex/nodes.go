// SPDX-License-Identifier: MIT
// Package: vortexgrid/vortex
//
// nodes.go — node projection for one stack.
//
// Purpose:
//   - Map the five fixed angles onto (time, price) nodes keyed by digit.
//   - Mirror each angle below the price axis for the lower-arc digits.
//
// Contract:
//   - Pure arithmetic: no errors, no side effects beyond the returned map.
//   - Digit collisions overwrite (lower arc writes second and wins).
//
// Complexity: O(1) — five angles, ten writes.
package vortex

import "math"

// degToRad converts degrees to radians.
const degToRad = math.Pi / 180

// projectNodes builds the digit→Node map for one stack.
//
// For each angle θ of nodeAngles:
//
//	time       = timeCenter + timeRadius·cos(θ)
//	upperPrice = midPrice + priceRadius·sin(θ)   → upperLabels[i]
//	lowerPrice = midPrice − priceRadius·sin(θ)   → lowerLabels[i]
//
// The upper write happens first, so a colliding lower label wins.
func projectNodes(midPrice, priceRadius float64) map[int]Node {
	nodes := make(map[int]Node, len(upperLabels)+len(lowerLabels))

	var (
		rad    float64 // θ in radians
		t      float64 // time coordinate
		offset float64 // radius·sin(θ)
	)
	for i, deg := range nodeAngles {
		rad = deg * degToRad
		t = timeCenter + timeRadius*math.Cos(rad)
		offset = priceRadius * math.Sin(rad)

		nodes[upperLabels[i]] = Node{Time: t, Price: midPrice + offset, Digit: upperLabels[i]}
		nodes[lowerLabels[i]] = Node{Time: t, Price: midPrice - offset, Digit: lowerLabels[i]}
	}

	return nodes
}
