package vortex_test

import (
	"testing"

	"github.com/katalvlaran/vortexgrid/vortex"
)

// benchmarkCompute runs the full pipeline for one range inside the
// timed loop and fails on unexpected errors.
func benchmarkCompute(b *testing.B, high, low float64) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := vortex.Compute(high, low); err != nil {
			b.Fatalf("Compute failed: %v", err)
		}
	}
}

// BenchmarkCompute_FXRange benchmarks a typical 50-pip FX range.
func BenchmarkCompute_FXRange(b *testing.B) {
	benchmarkCompute(b, 1.0850, 1.0800)
}

// BenchmarkCompute_WideRange benchmarks a wide index-scale range.
func BenchmarkCompute_WideRange(b *testing.B) {
	benchmarkCompute(b, 4800.0, 4500.0)
}

// BenchmarkCompute_ZeroRange benchmarks the degenerate collapsed case.
func BenchmarkCompute_ZeroRange(b *testing.B) {
	benchmarkCompute(b, 1.25, 1.25)
}
