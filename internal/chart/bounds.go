package chart

import (
	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/eulerplot/internal/dynamo"
)

// Range is the data window of the chart.
type Range struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Bounds spans x from the first to the last sample. The y range pairs the
// minimum of the Euler series with the maximum of the exact series; the
// midpoint series does not take part.
//
// TODO: consider min/max over all three series once the chart no longer
// has to match earlier output.
func Bounds(s *dynamo.Series) (Range, error) {
	if s.Len() == 0 {
		return Range{}, dynamo.ErrEmptySeries
	}
	if !s.Aligned() {
		return Range{}, dynamo.ErrMisaligned
	}

	return Range{
		XMin: s.X[0],
		XMax: s.X[len(s.X)-1],
		YMin: floats.Min(s.Euler),
		YMax: floats.Max(s.Exact),
	}, nil
}
