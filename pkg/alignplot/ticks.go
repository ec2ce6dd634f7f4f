package alignplot

import "gonum.org/v1/plot"

// hiddenLabelTicker keeps the tick marks of the wrapped ticker but drops
// every label. Dropped labels reserve no space below the axis; the ticks
// become minor ticks, so grid lines come from sharedGrid.
type hiddenLabelTicker struct {
	plot.Ticker
}

func (t hiddenLabelTicker) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}

// topLabelHiddenTicker blanks the label of the highest labelled tick.
// The label becomes a space so the tick stays a major tick.
type topLabelHiddenTicker struct {
	plot.Ticker
}

func (t topLabelHiddenTicker) Ticks(min, max float64) []plot.Tick {
	ticks := t.Ticker.Ticks(min, max)
	top := -1
	for i, tick := range ticks {
		if tick.IsMinor() || tick.Value > max {
			continue
		}
		if top < 0 || tick.Value > ticks[top].Value {
			top = i
		}
	}
	if top >= 0 {
		ticks[top].Label = " "
	}
	return ticks
}
