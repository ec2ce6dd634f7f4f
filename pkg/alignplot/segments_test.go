package alignplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/plot/plotter"
)

func TestSegments(t *testing.T) {
	t.Parallel()

	nan, inf := math.NaN(), math.Inf(1)
	for name, tc := range map[string]struct {
		in   []float64
		want []plotter.XYs
	}{
		"empty":    {in: nil, want: nil},
		"finite":   {in: []float64{3, 4}, want: []plotter.XYs{{{X: 0, Y: 3}, {X: 1, Y: 4}}}},
		"all nan":  {in: []float64{nan, nan}, want: nil},
		"gap":      {in: []float64{1, nan, 3, 4}, want: []plotter.XYs{{{X: 0, Y: 1}}, {{X: 2, Y: 3}, {X: 3, Y: 4}}}},
		"inf ends": {in: []float64{inf, 2, -inf}, want: []plotter.XYs{{{X: 1, Y: 2}}}},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, segments(tc.in))
		})
	}
}
