// Package vortex: digital-root annotation helper.
package vortex

import "math"

// DigitalRoot reduces a price to its vortex digit 1..9 via the mod-9
// shortcut on the cent-scaled magnitude:
//
//	v = round(|price| · 100); v mod 9 == 0 ? 9 : v mod 9
//
// Display-side helper: it annotates printed levels and takes no part
// in the level computation itself. Note that v == 0 maps to 9.
//
// The reduction stays in float space: converting the scaled magnitude
// to an integer first would overflow past ~9.2e16 and flip the sign of
// the remainder. math.Mod is exact on integral floats, so the digit is
// correct for every finite price.
func DigitalRoot(price float64) int {
	if r := math.Mod(math.Round(math.Abs(price)*100), 9); r != 0 {
		return int(r)
	}

	return 9
}
