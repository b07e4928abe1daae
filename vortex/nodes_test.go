package vortex

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestProjectNodes_DigitCoverage verifies all nine digits are present
// and that the colliding digit 9 sits on the 0° axis (time 360, price
// exactly mid — sin 0 contributes nothing).
func TestProjectNodes_DigitCoverage(t *testing.T) {
	nodes := projectNodes(100, 5)

	require.Len(t, nodes, 9, "ten writes over nine digits must leave nine entries")
	for digit := 1; digit <= 9; digit++ {
		assert.Contains(t, nodes, digit)
	}

	axis := nodes[9]
	assert.InDelta(t, 360.0, axis.Time, 1e-12)
	assert.Equal(t, 100.0, axis.Price, "digit 9 sits on the mid price")
}

// TestProjectNodes_MirroredArcs verifies upper and lower digits of the
// same angle mirror around the mid price at the same time coordinate.
func TestProjectNodes_MirroredArcs(t *testing.T) {
	nodes := projectNodes(100, 5)

	// 40°: digit 1 above, digit 8 below.
	assert.InDelta(t, nodes[1].Time, nodes[8].Time, 1e-12)
	assert.InDelta(t, 100+5*math.Sin(40*math.Pi/180), nodes[1].Price, 1e-12)
	assert.InDelta(t, 100-5*math.Sin(40*math.Pi/180), nodes[8].Price, 1e-12)

	// 160°: digit 4 above, digit 5 below.
	assert.InDelta(t, nodes[4].Time, nodes[5].Time, 1e-12)
	assert.InDelta(t, 200.0, nodes[4].Price+nodes[5].Price, 1e-12)
}

// TestProjectNodes_NegativeRadius documents the reversed-range
// behavior: a negative radius flips the arcs, nothing else.
func TestProjectNodes_NegativeRadius(t *testing.T) {
	nodes := projectNodes(100, -5)

	assert.Less(t, nodes[1].Price, 100.0, "upper-arc digit drops below mid")
	assert.Greater(t, nodes[8].Price, 100.0, "lower-arc digit rises above mid")
}

// TestTraceSegments_CircuitAndFlux verifies edge counts and the stable
// naming scheme for both traversals.
func TestTraceSegments_CircuitAndFlux(t *testing.T) {
	nodes := projectNodes(100, 5)

	circuit := traceSegments(nodes, circuitSeq, KindCircuit, 1)
	require.Len(t, circuit, 6, "circuit 1-2-4-8-7-5-1 has six edges")
	assert.Equal(t, "circuit 1-2 (stack +1)", circuit[0].Name)
	assert.Equal(t, "circuit 5-1 (stack +1)", circuit[5].Name)
	assert.Equal(t, KindCircuit, circuit[0].Kind)

	flux := traceSegments(nodes, fluxSeq, KindFlux, -1)
	require.Len(t, flux, 3, "flux 3-6-9-3 has three edges")
	assert.Equal(t, "flux 3-6 (stack -1)", flux[0].Name)
	assert.Equal(t, KindFlux, flux[0].Kind)
}

// TestTraceSegments_SkipsUnresolvedPairs verifies that a missing digit
// silently drops both edges touching it.
func TestTraceSegments_SkipsUnresolvedPairs(t *testing.T) {
	nodes := projectNodes(100, 5)
	delete(nodes, 4)

	circuit := traceSegments(nodes, circuitSeq, KindCircuit, 0)

	require.Len(t, circuit, 4, "edges 2-4 and 4-8 must be skipped")
	assert.Equal(t, "circuit 1-2 (stack +0)", circuit[0].Name)
	assert.Equal(t, "circuit 8-7 (stack +0)", circuit[1].Name)
}

// TestTraceSegments_EndpointsCopyNodes verifies segment endpoints are
// copied straight from the node map (X = time, Y = price).
func TestTraceSegments_EndpointsCopyNodes(t *testing.T) {
	nodes := projectNodes(100, 5)

	first := traceSegments(nodes, circuitSeq, KindCircuit, 0)[0]

	assert.Equal(t, nodes[1].Time, first.X1)
	assert.Equal(t, nodes[1].Price, first.Y1)
	assert.Equal(t, nodes[2].Time, first.X2)
	assert.Equal(t, nodes[2].Price, first.Y2)
}
