package alignplot

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Subplot is one row of a Figure.
type Subplot struct {
	// Plot is the underlying plot. Callers may modify it before drawing.
	Plot *plot.Plot
	// Label is the y-axis label.
	Label string
	// Color is the color identifier the series is drawn with.
	Color string
	// Len is the number of samples in the series.
	Len int
	// Grid reports whether grid lines are drawn.
	Grid bool
	// HideXTickLabels is set on every subplot except the bottom one.
	HideXTickLabels bool
	// HideTopYTickLabel is set on every subplot except the top one.
	HideTopYTickLabel bool

	grid *sharedGrid
}

// Figure is a vertical stack of subplots sharing one x axis.
type Figure struct {
	Subplots []*Subplot
	// Domain is the length of the shared x domain [0, Domain).
	Domain int
	// XLabel is the label of the bottom subplot's x axis.
	XLabel string
}

// Len returns the number of subplots.
func (f *Figure) Len() int {
	return len(f.Subplots)
}

// XDomain returns the shared x indices 0..Domain-1.
func (f *Figure) XDomain() []int {
	xs := make([]int, f.Domain)
	for i := range xs {
		xs[i] = i
	}
	return xs
}

// shareX gives every subplot the same x range.
func (f *Figure) shareX() {
	xmax := float64(max(f.Domain-1, 0))
	for _, sp := range f.Subplots {
		sp.Plot.X.Min = 0
		sp.Plot.X.Max = xmax
	}
}

// tiles lays the subplots out in equal-height rows with no gap between them.
func (f *Figure) tiles() draw.Tiles {
	return draw.Tiles{
		Rows:      len(f.Subplots),
		Cols:      1,
		PadTop:    vg.Points(8),
		PadBottom: vg.Points(4),
		PadLeft:   vg.Points(4),
		PadRight:  vg.Points(12),
	}
}

// Draw draws the figure onto c.
func (f *Figure) Draw(c draw.Canvas) {
	if len(f.Subplots) == 0 {
		return
	}
	plots := make([][]*plot.Plot, len(f.Subplots))
	for i, sp := range f.Subplots {
		sanitizeRange(&sp.Plot.X)
		sanitizeRange(&sp.Plot.Y)
		plots[i] = []*plot.Plot{sp.Plot}
	}
	canvases := plot.Align(plots, f.tiles(), c)
	for i := range plots {
		plots[i][0].Draw(canvases[i][0])
	}
}

// sanitizeRange makes an axis range finite and non-empty so tickers
// can be asked for ticks. Empty series leave infinite bounds behind.
func sanitizeRange(a *plot.Axis) {
	if math.IsInf(a.Min, 0) || math.IsNaN(a.Min) {
		a.Min = 0
	}
	if math.IsInf(a.Max, 0) || math.IsNaN(a.Max) {
		a.Max = 0
	}
	if a.Min > a.Max {
		a.Min, a.Max = a.Max, a.Min
	}
	if a.Min == a.Max {
		a.Min--
		a.Max++
	}
}

// Render draws the figure in the given format and writes it to w.
func (f *Figure) Render(w io.Writer, format Format, width, height vg.Length) error {
	c, err := draw.NewFormattedCanvas(width, height, string(format))
	if err != nil {
		return fmt.Errorf("creating %s canvas: %w", format, err)
	}
	f.Draw(draw.New(c))
	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("writing %s: %w", format, err)
	}
	return nil
}

// Save renders the figure to path. The format is taken from the extension.
func (f *Figure) Save(path string, width, height vg.Length) error {
	format, err := ParseFormat(filepath.Ext(path))
	if err != nil {
		return err
	}
	return f.SaveAs(path, format, width, height)
}

// SaveAs renders the figure in the given format to path.
func (f *Figure) SaveAs(path string, format Format, width, height vg.Length) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	return f.Render(out, format, width, height)
}

// ParseFormat parses a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpg", "jpeg":
		return FormatJPG, nil
	case "svg":
		return FormatSVG, nil
	case "pdf":
		return FormatPDF, nil
	case "eps":
		return FormatEPS, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("unsupported format: %q (must be png, jpg, svg, pdf, eps or tif)", s)
}
