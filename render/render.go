// Package render draws launched trajectories: a static scatter plot (PNG),
// an animated GIF and a terminal chart.
//
// The functions only read the trajectory and the analytical values of the
// flight; they never launch the projectile themselves.
package render

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// DefaultAnimationName is the file name used when no animation path is given.
const DefaultAnimationName = "ballistic_motion.gif"

// ErrEmptyTrajectory is returned when there is nothing to draw.
var ErrEmptyTrajectory = errors.New("render: trajectory is empty, launch the projectile first")

// Flight is the read-only view of a simulation that the renderers need to
// place and label a trajectory.
type Flight interface {
	Speed() float64
	Angle() float64
	Gravity() float64
	LaunchCoordinates() (x, y float64)
	Range() float64
	MaxHeight() float64
}

// DefaultPlotName returns a plot file name identified by the timestamp.
func DefaultPlotName(now time.Time) string {
	return fmt.Sprintf("projectile_t=%d.png", now.Unix())
}

func title(flight Flight) string {
	return fmt.Sprintf("Trajectory Animation (theta=%g, v=%g, g=%g)", flight.Angle(), flight.Speed(), flight.Gravity())
}

func saveTo(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("render: close %s: %w", path, cerr)
		}
	}()
	return write(f)
}
