package alignplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// sharedGrid draws grid lines at the major ticks of the axes' base tickers,
// so ticks whose labels were hidden still get their lines.
type sharedGrid struct {
	*plotter.Grid
}

func newSharedGrid() sharedGrid {
	return sharedGrid{Grid: plotter.NewGrid()}
}

// Plot implements plot.Plotter.
func (g sharedGrid) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	vertical, horizontal := g.lines(plt)

	if g.Vertical.Color != nil {
		for _, v := range vertical {
			x := trX(v)
			c.StrokeLine2(g.Vertical, x, c.Min.Y, x, c.Max.Y)
		}
	}
	if g.Horizontal.Color != nil {
		for _, v := range horizontal {
			y := trY(v)
			c.StrokeLine2(g.Horizontal, c.Min.X, y, c.Max.X, y)
		}
	}
}

// lines returns the data values of the vertical and horizontal grid lines.
func (g sharedGrid) lines(plt *plot.Plot) (vertical, horizontal []float64) {
	return majorValues(baseTicker(plt.X.Tick.Marker), plt.X.Min, plt.X.Max),
		majorValues(baseTicker(plt.Y.Tick.Marker), plt.Y.Min, plt.Y.Max)
}

func majorValues(t plot.Ticker, min, max float64) []float64 {
	var vs []float64
	for _, tk := range t.Ticks(min, max) {
		if tk.IsMinor() {
			continue
		}
		vs = append(vs, tk.Value)
	}
	return vs
}

// baseTicker strips the label-hiding wrappers from t.
func baseTicker(t plot.Ticker) plot.Ticker {
	for {
		switch w := t.(type) {
		case hiddenLabelTicker:
			t = w.Ticker
		case topLabelHiddenTicker:
			t = w.Ticker
		default:
			return t
		}
	}
}
