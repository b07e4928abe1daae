package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/vortexgrid/vortex"
)

// Cell precision: prices print with 4 decimals, times with 2.
const (
	pricePlaces = 4
	timePlaces  = 2
)

// Table writes the level grid to w as an aligned console table,
// headed by the input range. Formatting goes through decimal so the
// printed figures round half away from zero, the way price displays
// conventionally do. Writer errors are the caller's concern.
func Table(w io.Writer, levels []vortex.Level, priceHigh, priceLow float64) {
	fmt.Fprintf(w, "Vortex levels for range %s / %s (%d levels)\n\n",
		fixed(priceHigh, pricePlaces), fixed(priceLow, pricePlaces), len(levels))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PRICE\tROOT\tTIME\tORIGIN")
	for _, l := range levels {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n",
			fixed(l.Price, pricePlaces),
			vortex.DigitalRoot(l.Price),
			fixed(l.Time, timePlaces),
			l.Origin)
	}
	tw.Flush()
}

// fixed renders f with exactly the given number of decimal places.
// Non-finite values print as-is ("NaN", "+Inf", "-Inf") instead of
// panicking inside decimal.NewFromFloat.
func fixed(f float64, places int32) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return decimal.NewFromFloat(f).StringFixed(places)
}
