package go_ballisticlaunch

import (
	"math"

	"github.com/gehtsoft-usa/go_ballisticlaunch/bmath/kinematic"
	"github.com/gehtsoft-usa/go_ballisticlaunch/bmath/vector"
)

const cMaximumPreallocatedSamples float64 = 1 << 20

//Launch launches the projectile and returns its trajectory.
//
//The position is sampled from the moment of launch with the simulation step for as long as
//the time is less than the flight time, so the landing point itself is usually not a part
//of the trajectory.
//
//The trajectory returned is also kept as the current trajectory of the simulation. Launch
//returns *InvalidStepError or *InvalidFlightTimeError and keeps the previous trajectory
//if the parameters make the flight impossible.
func (v *Simulation) Launch() ([]TrajectoryPoint, error) {
	var flightTime, step, err = v.checkLaunch()
	if err != nil {
		return nil, err
	}

	var velocityX, velocityY = v.VelocityX(), v.VelocityY()
	var gravity = v.gravity
	var launchX, launchY = v.launchX, v.launchY

	var capacity = math.Ceil(flightTime / step)
	if capacity > cMaximumPreallocatedSamples {
		capacity = cMaximumPreallocatedSamples
	}
	var points = make([]TrajectoryPoint, 0, int(capacity)+1)

	var t float64
	for t < flightTime {
		points = append(points, TrajectoryPoint{
			time: Timespan{time: t},
			position: vector.Create(
				kinematic.Displacement(velocityX, t, 0)+launchX,
				kinematic.Displacement(velocityY, t, -gravity)+launchY),
			velocity: vector.Create(velocityX, kinematic.FinalVelocity(velocityY, t, -gravity)),
		})
		t += step
	}

	v.trajectory = points
	return v.Trajectory(), nil
}

//checkLaunch returns the flight time and the step or the error which makes the launch impossible
func (v *Simulation) checkLaunch() (flightTime, step float64, err error) {
	step = v.step
	if !(step > 0) {
		return 0, 0, &InvalidStepError{Step: step}
	}

	flightTime = v.FlightTime()
	if !(flightTime > 0) || math.IsInf(flightTime, 1) {
		return 0, 0, &InvalidFlightTimeError{FlightTime: flightTime}
	}

	//the time would stop advancing before reaching the flight time
	if flightTime+step == flightTime {
		return 0, 0, &InvalidStepError{Step: step}
	}
	return flightTime, step, nil
}

//SampleCount returns the number of samples the next Launch produces with the current parameters.
//
//The time is accumulated the same way Launch does, so the count may be one more than
//flightTime/step rounded up. SampleCount returns *TooManySamplesError carrying the estimated
//count if the trajectory would have more than limit samples, and the Launch error if the
//parameters make the flight impossible.
func (v *Simulation) SampleCount(limit int) (int, error) {
	var flightTime, step, err = v.checkLaunch()
	if err != nil {
		return 0, err
	}

	var estimate = math.Ceil(flightTime / step)
	if estimate > float64(limit) {
		return 0, &TooManySamplesError{Samples: estimate, Limit: limit}
	}

	var count int
	for t := 0.0; t < flightTime; t += step {
		count++
	}
	if count > limit {
		return 0, &TooManySamplesError{Samples: float64(count), Limit: limit}
	}
	return count, nil
}
