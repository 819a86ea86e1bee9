package report

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fractanim/internal/anim"
	"github.com/san-kum/fractanim/internal/config"
	"github.com/san-kum/fractanim/internal/fractal"
)

const thresholdSamples = 80

// Print computes the default grid and writes a summary table, an escape-count
// histogram and the threshold curve of one animation period.
func Print(out io.Writer, cfg *config.Config) error {
	grid, err := fractal.Compute(fractal.DefaultPlane(), fractal.MaxCheckIters)
	if err != nil {
		return fmt.Errorf("compute grid: %w", err)
	}

	hist := grid.Histogram()
	total, sum := 0, 0
	for v, n := range hist {
		total += n
		sum += v * n
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WIDTH\tHEIGHT\tMAX_ITERS\tIN_SET\tMEAN_ITERS\tPERIOD")
	fmt.Fprintf(w, "%d\t%d\t%d\t%.2f%%\t%.2f\t%.1fs\n",
		grid.Width(), grid.Height(), grid.MaxIters(),
		100*grid.InSetFraction(), float64(sum)/float64(total), cfg.AnimationTime)
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(out)

	// log10(1+n) keeps the in-set spike from flattening the escape tail.
	logHist := make([]float64, len(hist))
	for i, n := range hist {
		logHist[i] = math.Log10(1 + float64(n))
	}
	fmt.Fprintln(out, asciigraph.Plot(logHist,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("log10(pixels) per escape iteration"),
	))
	fmt.Fprintln(out)

	curve := make([]float64, thresholdSamples)
	for i := range curve {
		t := cfg.AnimationTime * float64(i) / float64(thresholdSamples-1)
		curve[i] = float64(anim.ThresholdAt(t, cfg.AnimationTime, grid.MaxIters()))
	}
	fmt.Fprintln(out, asciigraph.Plot(curve,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("check iterations over one %.0fs period", cfg.AnimationTime)),
	))
	return nil
}
