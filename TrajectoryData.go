package go_ballisticlaunch

import (
	"math"

	"github.com/gehtsoft-usa/go_ballisticlaunch/bmath/vector"
)

//Timespan keeps the amount of time spent
type Timespan struct {
	time float64
}

//TotalSeconds returns the total number of seconds
func (v Timespan) TotalSeconds() float64 {
	return v.time
}

//Seconds return the whole number of the seconds
func (v Timespan) Seconds() float64 {
	return math.Mod(math.Floor(v.time), 60)
}

//Minutes return the whole number of minutes
func (v Timespan) Minutes() float64 {
	return math.Mod(math.Floor(v.time/60), 60)
}

//TrajectoryPoint structure keeps information about one sample of the trajectory.
type TrajectoryPoint struct {
	time     Timespan
	position vector.Vector
	velocity vector.Vector
}

//Time return the amount of time spent since the launch moment
func (v TrajectoryPoint) Time() Timespan {
	return v.time
}

//Position returns the coordinates of the projectile
func (v TrajectoryPoint) Position() vector.Vector {
	return v.position
}

//X returns the horizontal coordinate of the projectile
func (v TrajectoryPoint) X() float64 {
	return v.position.X
}

//Y returns the vertical coordinate of the projectile
func (v TrajectoryPoint) Y() float64 {
	return v.position.Y
}

//Velocity returns the velocity vector of the projectile
func (v TrajectoryPoint) Velocity() vector.Vector {
	return v.velocity
}

//Positions returns the coordinates of every point of the trajectory
func Positions(points []TrajectoryPoint) []vector.Vector {
	var positions = make([]vector.Vector, len(points))
	for i, p := range points {
		positions[i] = p.position
	}
	return positions
}

//Bounds returns the smallest and the largest coordinates of the trajectory.
//
//Both vectors are zero for an empty trajectory.
func Bounds(points []TrajectoryPoint) (min, max vector.Vector) {
	if len(points) == 0 {
		return
	}
	min, max = points[0].position, points[0].position
	for _, p := range points[1:] {
		min = min.Min(p.position)
		max = max.Max(p.position)
	}
	return
}
