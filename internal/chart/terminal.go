package chart

import (
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/eulerplot/internal/dynamo"
)

// Terminal plots the three curves against the step index as text. The
// series must be finite.
func Terminal(s *dynamo.Series, width, height int) (string, error) {
	if s.Len() == 0 {
		return "", dynamo.ErrEmptySeries
	}
	if !s.Aligned() {
		return "", dynamo.ErrMisaligned
	}
	if !s.IsValid() {
		return "", dynamo.ErrNonFinite
	}

	return asciigraph.PlotMany(
		[][]float64{s.Euler, s.Midpoint, s.Exact},
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Precision(4),
		asciigraph.SeriesColors(asciigraph.Blue, asciigraph.Green, asciigraph.Red),
		asciigraph.SeriesLegends(LabelEuler, LabelMidpoint, LabelExact),
		asciigraph.Caption(DefaultTitle),
	), nil
}
