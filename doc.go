// Package vortexgrid turns a plain high/low price range into a grid of
// geometric support & resistance levels, using the Rodin vortex circle
// (digits 1–9 around a ring) as the projection layout.
//
// 🚀 What is vortexgrid?
//
//	A small, deterministic, zero-I/O library that:
//		• Projects a price range onto a 9-digit circle (5 fixed angles, mirrored arcs)
//		• Replays the projection on three stacked layers (−1, 0, +1 range offsets)
//		• Connects the digits along the doubling circuit 1-2-4-8-7-5 and the 3-6-9 flux triangle
//		• Crosses every segment against every other and collects the meeting points
//		• Returns one deduplicated list of price levels, sorted top-down
//
// ✨ Why choose vortexgrid?
//
//   - Deterministic – same range in, same levels out, no RNG, no clocks
//   - Tiny API – one Compute call, one Level struct
//   - Pure Go – no cgo, no hidden deps
//   - Inspectable – every level carries a human-readable origin trail
//
// Everything is organized under two subpackages plus a CLI:
//
//	vortex/ — node projection, circuit/flux segments, intersections, dedupe
//	render/ — console table adapter (price, digital root, time, origin)
//	cmd/vortexgrid — `vortexgrid [-verbose] HIGH LOW`
//
// Quick ASCII example (one stack, upper arc digits):
//
//	      2
//	   3     1
//	  4       9   ← price axis mid, time axis 0..360
//	   5     8
//	      7
//
// Dive into vortex/doc.go for the full pipeline walkthrough.
//
//	go get github.com/katalvlaran/vortexgrid/vortex
package vortexgrid
