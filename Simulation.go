package go_ballisticlaunch

import (
	"math"
	"time"

	"github.com/gehtsoft-usa/go_ballisticlaunch/bmath/kinematic"
	"github.com/gehtsoft-usa/go_ballisticlaunch/bmath/unit"
)

//Simulation keeps the parameters of a projectile launched under uniform gravity
//and the trajectory produced by the last launch.
//
//All values are plain numbers in consistent units (the SI units are assumed
//by CreateSimulationWithUnits): speed, gravity, launch coordinates and step.
//The angle is measured in degrees from the horizontal.
//
//A Simulation is not safe for concurrent use.
type Simulation struct {
	speed      float64
	angle      float64
	gravity    float64
	launchX    float64
	launchY    float64
	step       float64
	trajectory []TrajectoryPoint
}

//CreateSimulation creates a simulation with all the parameters necessary to launch the projectile
//
//speed - the magnitude of the initial velocity
//
//angle - the launch angle in degrees
//
//gravity - the gravitational acceleration, positive downwards
//
//step - the time between two consecutive trajectory samples, the smaller step is, the sharper the trajectory is
func CreateSimulation(speed, angle, gravity, launchX, launchY, step float64) *Simulation {
	return &Simulation{
		speed:   speed,
		angle:   angle,
		gravity: gravity,
		launchX: launchX,
		launchY: launchY,
		step:    step,
	}
}

//CreateSimulationFromParameters creates a simulation from the launch parameters
func CreateSimulationFromParameters(p LaunchParameters) *Simulation {
	return CreateSimulation(p.Speed, p.Angle, p.Gravity, p.LaunchX, p.LaunchY, p.Step)
}

//CreateSimulationWithUnits creates a simulation from the values with measurement units.
//
//The values are converted into meters per second, degrees, meters per second squared, meters and seconds.
func CreateSimulationWithUnits(speed unit.Velocity, angle unit.Angular, gravity unit.Acceleration,
	launchX unit.Distance, launchY unit.Distance, step time.Duration) *Simulation {

	return CreateSimulation(speed.In(unit.VelocityMPS),
		angle.In(unit.AngularDegree),
		gravity.In(unit.AccelerationMPS2),
		launchX.In(unit.DistanceMeter),
		launchY.In(unit.DistanceMeter),
		step.Seconds())
}

//Speed returns the magnitude of the initial velocity
func (v *Simulation) Speed() float64 {
	return v.speed
}

//SetSpeed sets the magnitude of the initial velocity.
//
//Both velocity components follow the new speed and the current angle.
func (v *Simulation) SetSpeed(speed float64) {
	v.speed = speed
}

//Angle returns the launch angle in degrees
func (v *Simulation) Angle() float64 {
	return v.angle
}

//SetAngle sets the launch angle in degrees.
//
//Both velocity components follow the new angle and the current speed.
func (v *Simulation) SetAngle(angle float64) {
	v.angle = angle
}

//Gravity returns the gravitational acceleration
func (v *Simulation) Gravity() float64 {
	return v.gravity
}

//SetGravity sets the gravitational acceleration
func (v *Simulation) SetGravity(gravity float64) {
	v.gravity = gravity
}

//LaunchCoordinates returns the cartesian coordinates of the launch position
func (v *Simulation) LaunchCoordinates() (x, y float64) {
	return v.launchX, v.launchY
}

//SetLaunchCoordinates sets the cartesian coordinates of the launch position
func (v *Simulation) SetLaunchCoordinates(x, y float64) {
	v.launchX = x
	v.launchY = y
}

//Step returns the time between two consecutive trajectory samples
func (v *Simulation) Step() float64 {
	return v.step
}

//SetStep sets the time between two consecutive trajectory samples
func (v *Simulation) SetStep(step float64) {
	v.step = step
}

//Parameters returns the current launch parameters
func (v *Simulation) Parameters() LaunchParameters {
	return LaunchParameters{
		Speed:   v.speed,
		Angle:   v.angle,
		Gravity: v.gravity,
		LaunchX: v.launchX,
		LaunchY: v.launchY,
		Step:    v.step,
	}
}

func (v *Simulation) angleInRadians() float64 {
	return unit.MustCreateAngular(v.angle, unit.AngularDegree).In(unit.AngularRadian)
}

//VelocityX returns the horizontal component of the initial velocity
func (v *Simulation) VelocityX() float64 {
	return v.speed * math.Cos(v.angleInRadians())
}

//VelocityY returns the vertical component of the initial velocity
func (v *Simulation) VelocityY() float64 {
	return v.speed * math.Sin(v.angleInRadians())
}

//FlightTime returns the time until the projectile returns to the launch height, by analytical means
func (v *Simulation) FlightTime() float64 {
	return 2.0 * v.VelocityY() / v.gravity
}

//MaxHeight returns the peak height of the projectile above the launch height, by analytical means
func (v *Simulation) MaxHeight() float64 {
	var vy = v.VelocityY()
	return vy * vy / (2.0 * v.gravity)
}

//Range returns the horizontal distance travelled until the projectile returns to the launch height,
//by analytical means
func (v *Simulation) Range() float64 {
	var doubleAngle = unit.MustCreateAngular(2.0*v.angle, unit.AngularDegree).In(unit.AngularRadian)
	return v.speed * v.speed * math.Sin(doubleAngle) / v.gravity
}

//ApexTime returns the time at which the projectile reaches the max height
func (v *Simulation) ApexTime() float64 {
	return kinematic.ApexTime(v.VelocityY(), -v.gravity)
}

//Trajectory returns a copy of the trajectory produced by the last successful launch
//or nil if the projectile has not been launched yet.
//
//The trajectory is not updated when the parameters change, the projectile must be launched again.
func (v *Simulation) Trajectory() []TrajectoryPoint {
	if v.trajectory == nil {
		return nil
	}
	var points = make([]TrajectoryPoint, len(v.trajectory))
	copy(points, v.trajectory)
	return points
}
