// Package render is the console adapter for vortex levels: it formats
// the computed grid as an aligned table with the price (4 decimals),
// its vortex digital root, the circle time coordinate (2 decimals) and
// the origin trail.
//
// Rendering is purely observational — it consumes a finished level
// slice and the original bounds, and touches nothing else.
package render
