package alignplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// Build creates a figure with one subplot for primary and one for each of
// additional, stacked top to bottom and sharing the x axis of the first.
func Build(opts Options, primary []float64, additional ...[]float64) (*Figure, error) {
	series := make([][]float64, 0, 1+len(additional))
	series = append(series, primary)
	series = append(series, additional...)
	return BuildSeries(series, opts)
}

// BuildSeries is like Build but takes all series in one slice.
// The first element is the primary series.
func BuildSeries(series [][]float64, opts Options) (*Figure, error) {
	n := len(series)
	if n == 0 {
		return nil, ErrNoSeries
	}

	labels, err := opts.resolveLabels(n)
	if err != nil {
		return nil, err
	}
	colorIDs, err := opts.resolveColors(n)
	if err != nil {
		return nil, err
	}
	colors, err := resolveColors(colorIDs[:n])
	if err != nil {
		return nil, err
	}

	domain := 0
	for _, s := range series {
		domain = max(domain, len(s))
	}

	fig := &Figure{
		Subplots: make([]*Subplot, n),
		Domain:   domain,
		XLabel:   opts.XLabel,
	}
	grid := opts.ShouldShowGrid()

	for i, s := range series {
		p := plot.New()
		p.Y.Label.Text = labels[i]

		var g *sharedGrid
		if grid {
			sg := newSharedGrid()
			g = &sg
			p.Add(sg)
		}

		// Non-finite samples leave a gap in the line.
		for _, seg := range segments(s) {
			line, err := plotter.NewLine(seg)
			if err != nil {
				return nil, fmt.Errorf("series %d: %w", i, err)
			}
			line.Color = colors[i]
			p.Add(line)
		}

		sp := &Subplot{
			Plot:  p,
			Label: labels[i],
			Color: colorIDs[i],
			Len:   len(s),
			Grid:  grid,
			grid:  g,
		}

		if i > 0 {
			// Tick labels at the shared boundary would collide.
			above := fig.Subplots[i-1]
			above.HideXTickLabels = true
			above.Plot.X.Tick.Marker = hiddenLabelTicker{Ticker: above.Plot.X.Tick.Marker}

			sp.HideTopYTickLabel = true
			p.Y.Tick.Marker = topLabelHiddenTicker{Ticker: p.Y.Tick.Marker}
		}

		fig.Subplots[i] = sp
	}

	fig.shareX()

	if opts.XLabel != "" {
		fig.Subplots[n-1].Plot.X.Label.Text = opts.XLabel
	}

	return fig, nil
}

// segments splits s into runs of finite samples, each sample paired with
// its index as the x value.
func segments(s []float64) []plotter.XYs {
	var (
		segs []plotter.XYs
		cur  plotter.XYs
	)
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if len(cur) > 0 {
				segs = append(segs, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, plotter.XY{X: float64(i), Y: v})
	}
	if len(cur) > 0 {
		segs = append(segs, cur)
	}
	return segs
}
