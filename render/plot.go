package render

import (
	"fmt"
	"image/color"
	"io"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PlotOptions controls the static scatter plot.
type PlotOptions struct {
	Width  vg.Length
	Height vg.Length
	DPI    int
	// PointRadius is the radius of one sample glyph.
	PointRadius vg.Length
}

func (o PlotOptions) withDefaults() PlotOptions {
	if o.Width <= 0 {
		o.Width = 6 * vg.Inch
	}
	if o.Height <= 0 {
		o.Height = 4 * vg.Inch
	}
	if o.DPI <= 0 {
		o.DPI = 300
	}
	if o.PointRadius <= 0 {
		o.PointRadius = vg.Points(0.5)
	}
	return o
}

// Plot draws every sample of the trajectory as a scatter plot and writes it
// to w as PNG.
//
// The axes start at the launch position and extend past the analytical
// range and max height.
func Plot(w io.Writer, flight Flight, points []ballistic.TrajectoryPoint, opts PlotOptions) error {
	if len(points) == 0 {
		return ErrEmptyTrajectory
	}
	opts = opts.withDefaults()

	xys := make(plotter.XYs, len(points))
	for i, p := range points {
		xys[i].X = p.X()
		xys[i].Y = p.Y()
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("theta=%g, v=%g, g=%g", flight.Angle(), flight.Speed(), flight.Gravity())
	p.X.Label.Text = "Distance"
	p.Y.Label.Text = "Height"

	scatter, err := plotter.NewScatter(xys)
	if err != nil {
		return fmt.Errorf("render: scatter: %w", err)
	}
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = opts.PointRadius
	scatter.GlyphStyle.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	p.Add(scatter)

	launchX, launchY := flight.LaunchCoordinates()
	p.X.Min, p.X.Max = launchX, launchX+flight.Range()+0.1
	if r := flight.Range(); r < 0 {
		// launched backwards
		p.X.Min, p.X.Max = launchX+r-0.1, launchX
	}
	p.Y.Min, p.Y.Max = launchY, launchY+flight.MaxHeight()+0.2

	canvas := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height), vgimg.UseDPI(opts.DPI))
	p.Draw(draw.New(canvas))

	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// SavePlot writes the scatter plot to the file at path.
func SavePlot(path string, flight Flight, points []ballistic.TrajectoryPoint, opts PlotOptions) error {
	return saveTo(path, func(w io.Writer) error {
		return Plot(w, flight, points, opts)
	})
}
