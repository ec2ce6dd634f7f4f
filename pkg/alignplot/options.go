// Package alignplot renders numeric series as vertically stacked line plots
// that share one horizontal axis.
package alignplot

import (
	"strconv"

	"gonum.org/v1/plot/vg"
)

// Format is an output image format.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPG  Format = "jpg"
	FormatSVG  Format = "svg"
	FormatPDF  Format = "pdf"
	FormatEPS  Format = "eps"
	FormatTIFF Format = "tif"
)

// Default figure dimensions.
const (
	DefaultWidth  = 6.4 * vg.Inch
	DefaultHeight = 4.8 * vg.Inch
)

// DefaultPalette is used when Options.Colors is nil. Series beyond the
// palette are drawn in its last color.
var DefaultPalette = []string{"red", "green", "blue"}

// Options configures the builder.
type Options struct {
	// Labels are the y-axis labels, one per series.
	// If empty, labels "Data 0".."Data N-1" are generated.
	Labels []string
	// Colors are color identifiers, at least one per series.
	// If nil, DefaultPalette is used.
	Colors []string
	// XLabel is attached to the bottom subplot only. Empty means none.
	XLabel string
	// ShowGrid toggles grid lines on every subplot.
	// If nil, defaults to true.
	ShowGrid *bool
}

// DefaultOptions returns default builder options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldShowGrid returns whether grid lines are drawn.
func (o Options) ShouldShowGrid() bool {
	if o.ShowGrid != nil {
		return *o.ShowGrid
	}
	return true
}

// DefaultLabels returns "Data 0".."Data n-1".
func DefaultLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = "Data " + strconv.Itoa(i)
	}
	return labels
}

// DefaultColors returns DefaultPalette extended to n entries.
func DefaultColors(n int) []string {
	colors := make([]string, 0, max(n, len(DefaultPalette)))
	colors = append(colors, DefaultPalette...)
	last := DefaultPalette[len(DefaultPalette)-1]
	for len(colors) < n {
		colors = append(colors, last)
	}
	return colors
}

func (o Options) resolveLabels(n int) ([]string, error) {
	if len(o.Labels) == 0 {
		return DefaultLabels(n), nil
	}
	if len(o.Labels) != n {
		return nil, newValidationError(LabelCountMismatch, n, len(o.Labels))
	}
	return append([]string(nil), o.Labels...), nil
}

func (o Options) resolveColors(n int) ([]string, error) {
	if o.Colors == nil {
		return DefaultColors(n), nil
	}
	if len(o.Colors) < n {
		return nil, newValidationError(ColorCountMismatch, n, len(o.Colors))
	}
	return append([]string(nil), o.Colors...), nil
}
