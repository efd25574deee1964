package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"
)

func main() {
	cloths := flag.Int("cloths", 4, "cloths stepped per frame")
	size := flag.Int("size", 20, "grid width and height")
	frames := flag.Int("frames", 600, "frames to simulate")
	iterations := flag.String("iterations", "1,3,5,10", "comma separated solver iteration counts")
	flag.Parse()

	iters, err := parseIterations(*iterations)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *cloths <= 0 || *size <= 0 || *frames <= 0 {
		fmt.Fprintln(os.Stderr, "cloths, size and frames must be positive")
		os.Exit(2)
	}

	fmt.Printf("Cloth Benchmark (%d cloths, %dx%d, %d frames at 60Hz)\n", *cloths, *size, *size, *frames)
	fmt.Println("══════════════════════════════════════════════════════════════════════════")
	fmt.Printf("%-10s %12s %12s %12s %12s %10s\n", "Iterations", "Create", "Update", "Per frame", "ns/particle", "Final sag")
	fmt.Println("──────────────────────────────────────────────────────────────────────────")

	series := make([][]float64, 0, len(iters))
	labels := make([]string, 0, len(iters))
	for _, n := range iters {
		res := run(scenario{cloths: *cloths, size: *size, frames: *frames, iterations: n})
		printResult(res)
		series = append(series, res.sag)
		labels = append(labels, strconv.Itoa(n))
	}

	fmt.Println("══════════════════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption("bottom row mean Y per frame, iterations "+strings.Join(labels, "/")),
	))
}

func printResult(r result) {
	sag := 0.0
	if len(r.sag) > 0 {
		sag = r.sag[len(r.sag)-1]
	}
	fmt.Printf("%-10d %12s %12s %12s %12.1f %10.3f\n",
		r.iterations, r.create, r.update, r.perFrame(), r.perParticle(), sag)
}
