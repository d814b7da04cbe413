package chart

import (
	"image/color"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/eulerplot/internal/dynamo"
)

const (
	DefaultPath   = "euler_method.png"
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultTitle  = "Euler's Method Approximations"
)

// Line colors.
var (
	ColEuler    = color.RGBA{B: 255, A: 255}
	ColMidpoint = color.RGBA{G: 255, A: 255}
	ColExact    = color.RGBA{R: 255, A: 255}
)

// Legend labels, in drawing order.
const (
	LabelEuler    = "Approx y (Euler)"
	LabelMidpoint = "Approx y (Midpoint)"
	LabelExact    = "Exact y"
)

// pixels are mapped 1:1 onto points.
const dpi = 72

// TitleSize is the caption font size; the default title fits a 640 pixel
// wide chart at this size.
const TitleSize = 44

// legendInset keeps the legend off the axes in the lower right corner.
const legendInset = 8

type Options struct {
	Path   string `yaml:"path"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

func DefaultOptions() Options {
	return Options{
		Path:   DefaultPath,
		Width:  DefaultWidth,
		Height: DefaultHeight,
		Title:  DefaultTitle,
	}
}

// Artifact is a rendered chart on disk.
type Artifact struct {
	Path   string
	Width  int
	Height int
}

// Build assembles the plot without drawing it.
func Build(s *dynamo.Series, title string) (*plot.Plot, error) {
	r, err := Bounds(s)
	if err != nil {
		return nil, &dynamo.RenderError{Stage: "bounds", Wrapped: err}
	}

	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(TitleSize)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.BackgroundColor = color.White
	p.Add(plotter.NewGrid())

	curves := []struct {
		label string
		ys    []float64
		col   color.Color
	}{
		{LabelEuler, s.Euler, ColEuler},
		{LabelMidpoint, s.Midpoint, ColMidpoint},
		{LabelExact, s.Exact, ColExact},
	}

	for _, c := range curves {
		pts := make(plotter.XYs, len(s.X))
		for i := range pts {
			pts[i].X = s.X[i]
			pts[i].Y = c.ys[i]
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, &dynamo.RenderError{Stage: "series", Wrapped: errors.Wrap(err, c.label)}
		}
		line.Color = c.col
		line.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(c.label, line)
	}

	// Lower right; the curves grow toward the top.
	p.Legend.Top = false
	p.Legend.Left = false
	p.Legend.XOffs = -vg.Points(legendInset)
	p.Legend.YOffs = vg.Points(legendInset)

	// p.Add widens the axes to the data; pin them back to the bounds.
	p.X.Min, p.X.Max = r.XMin, r.XMax
	p.Y.Min, p.Y.Max = r.YMin, r.YMax

	return p, nil
}

// Render draws the series and writes it as a PNG of exactly
// opts.Width x opts.Height pixels to opts.Path.
func Render(s *dynamo.Series, opts Options) (*Artifact, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, &dynamo.RenderError{
			Stage:   "canvas",
			Wrapped: errors.Wrapf(dynamo.ErrParameterBounds, "size %dx%d", opts.Width, opts.Height),
		}
	}

	p, err := Build(s, opts.Title)
	if err != nil {
		return nil, err
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Points(float64(opts.Width)), vg.Points(float64(opts.Height))),
		vgimg.UseDPI(dpi),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(opts.Path)
	if err != nil {
		return nil, &dynamo.RenderError{Stage: "create", Wrapped: err}
	}
	defer f.Close()

	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		return nil, &dynamo.RenderError{Stage: "encode", Wrapped: errors.Wrapf(err, "writing %s", opts.Path)}
	}
	if err := f.Close(); err != nil {
		return nil, &dynamo.RenderError{Stage: "encode", Wrapped: errors.Wrapf(err, "closing %s", opts.Path)}
	}

	log.WithFields(log.Fields{
		"path":   opts.Path,
		"width":  opts.Width,
		"height": opts.Height,
		"points": s.Len(),
	}).Debug("chart written")

	return &Artifact{Path: opts.Path, Width: opts.Width, Height: opts.Height}, nil
}
