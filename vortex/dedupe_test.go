package vortex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDedupeLevels_FirstSeenWins verifies that the earliest of two
// near-equal candidates survives with its origin intact.
func TestDedupeLevels_FirstSeenWins(t *testing.T) {
	in := []Level{
		{Price: 1.08500, Time: 180.000, Origin: "first"},
		{Price: 1.08505, Time: 180.005, Origin: "second"}, // within both tolerances
		{Price: 1.08500, Time: 181.000, Origin: "third"},  // same price, time too far apart
	}

	out := dedupeLevels(in)

	require.Len(t, out, 2)
	assert.Equal(t, "first", out[0].Origin)
	assert.Equal(t, "third", out[1].Origin)
}

// TestDedupeLevels_AsymmetricTolerances verifies both tolerances must
// hold for a drop: close in one dimension only is not a duplicate.
func TestDedupeLevels_AsymmetricTolerances(t *testing.T) {
	in := []Level{
		{Price: 1.0, Time: 100.0},
		{Price: 1.0, Time: 100.5},       // price equal, time off by 0.5 ≥ 1e-2 → kept
		{Price: 1.001, Time: 100.0},     // time equal, price off by 1e-3 ≥ 1e-4 → kept
		{Price: 1.00005, Time: 100.005}, // both within tolerance → dropped
	}

	out := dedupeLevels(in)
	assert.Len(t, out, 3)
}

// TestSortLevels_StableDescending verifies descending order and that
// equal prices keep their incoming order.
func TestSortLevels_StableDescending(t *testing.T) {
	levels := []Level{
		{Price: 1.0, Origin: "low"},
		{Price: 3.0, Origin: "high-a"},
		{Price: 2.0, Origin: "mid"},
		{Price: 3.0, Origin: "high-b"},
	}

	sortLevels(levels)

	require.Len(t, levels, 4)
	assert.Equal(t, "high-a", levels[0].Origin, "equal prices keep insertion order")
	assert.Equal(t, "high-b", levels[1].Origin)
	assert.Equal(t, "mid", levels[2].Origin)
	assert.Equal(t, "low", levels[3].Origin)
}

// TestDedupeLevels_Empty verifies the empty input round-trips.
func TestDedupeLevels_Empty(t *testing.T) {
	assert.Empty(t, dedupeLevels(nil))
}
