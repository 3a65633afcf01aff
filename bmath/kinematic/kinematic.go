//Package kinematic includes the closed-form equations of motion under
//constant acceleration.
package kinematic

//Displacement returns the displacement of an object given its initial velocity, time, and acceleration.
func Displacement(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity*time + 0.5*acceleration*(time*time)
}

//FinalVelocity returns the velocity of an object given its initial velocity, time, and acceleration.
func FinalVelocity(initialVelocity float64, time float64, acceleration float64) float64 {
	return initialVelocity + acceleration*time
}

//ApexTime returns the time at which the velocity crosses zero, or 0 when
//the acceleration is zero.
func ApexTime(initialVelocity float64, acceleration float64) float64 {
	if acceleration == 0 {
		return 0
	}
	return -initialVelocity / acceleration
}
