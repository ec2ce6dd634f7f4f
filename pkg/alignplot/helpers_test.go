package alignplot_test

import (
	"strings"

	"gonum.org/v1/plot"
)

func hasLabels(ticks []plot.Tick) bool {
	return labelCount(ticks) > 0
}

func labelCount(ticks []plot.Tick) int {
	n := 0
	for _, t := range ticks {
		if strings.TrimSpace(t.Label) != "" {
			n++
		}
	}
	return n
}

func highestLabel(ticks []plot.Tick) string {
	label, top := "", 0.0
	for _, t := range ticks {
		if strings.TrimSpace(t.Label) != "" && (label == "" || t.Value > top) {
			label, top = t.Label, t.Value
		}
	}
	return label
}
