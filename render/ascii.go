package render

import (
	"fmt"

	ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"
	"github.com/guptarohit/asciigraph"
)

// ASCIIOptions controls the terminal chart.
type ASCIIOptions struct {
	Width  int
	Height int
}

// ASCII returns a terminal chart of the height of the projectile along the
// trajectory. The chart is empty for an empty trajectory.
func ASCII(flight Flight, points []ballistic.TrajectoryPoint, opts ASCIIOptions) string {
	if len(points) == 0 {
		return ""
	}
	if opts.Width <= 0 {
		opts.Width = 60
	}
	if opts.Height <= 0 {
		opts.Height = 12
	}

	heights := make([]float64, len(points))
	for i, p := range points {
		heights[i] = p.Y()
	}

	caption := fmt.Sprintf("height over %d samples (theta=%g, v=%g, g=%g)",
		len(points), flight.Angle(), flight.Speed(), flight.Gravity())
	return asciigraph.Plot(heights,
		asciigraph.Width(opts.Width),
		asciigraph.Height(opts.Height),
		asciigraph.Caption(caption))
}
