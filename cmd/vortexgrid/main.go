// Command vortexgrid prints the Rodin-circle level grid for a price
// range given as two positional arguments:
//
//	vortexgrid [-verbose] HIGH LOW
//
// Exit codes: 0 on success, 1 on computation failure, 2 on bad argv.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/katalvlaran/vortexgrid/render"
	"github.com/katalvlaran/vortexgrid/vortex"
)

func main() {
	verbose := flag.Bool("verbose", false, "Enable per-stage diagnostics on stderr")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 2 {
		usage()
		os.Exit(2)
	}

	high, err := strconv.ParseFloat(flag.Arg(0), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vortexgrid: bad HIGH %q: %v\n", flag.Arg(0), err)
		os.Exit(2)
	}
	low, err := strconv.ParseFloat(flag.Arg(1), 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vortexgrid: bad LOW %q: %v\n", flag.Arg(1), err)
		os.Exit(2)
	}

	logger := zap.NewNop()
	if *verbose {
		if logger, err = zap.NewDevelopment(); err != nil {
			fmt.Fprintf(os.Stderr, "vortexgrid: logger: %v\n", err)
			os.Exit(1)
		}
	}
	defer logger.Sync()

	logger.Debug("computing level grid",
		zap.Float64("high", high),
		zap.Float64("low", low),
		zap.Float64("mid", (high+low)/2),
		zap.Float64("radius", (high-low)/2),
	)

	levels, err := vortex.Compute(high, low)
	if err != nil {
		logger.Error("computation failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "vortexgrid: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("level grid ready", zap.Int("levels", len(levels)))

	render.Table(os.Stdout, levels, high, low)
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: vortexgrid [-verbose] HIGH LOW")
	fmt.Fprintln(os.Stderr, "  HIGH, LOW  price range bounds (HIGH >= LOW expected)")
	flag.PrintDefaults()
}
