package go_ballisticlaunch

import "fmt"

//InvalidFlightTimeError is returned by Launch when the analytical flight time is not a
//positive finite number, e.g. because the vertical velocity or the gravity is not positive.
type InvalidFlightTimeError struct {
	FlightTime float64
}

func (e *InvalidFlightTimeError) Error() string {
	return fmt.Sprintf("Launch: time of flight (%g) is insufficient, maybe try to increase speed or launch angle?", e.FlightTime)
}

//InvalidStepError is returned by Launch when the step is not positive or is too small
//to advance the simulation time.
type InvalidStepError struct {
	Step float64
}

func (e *InvalidStepError) Error() string {
	return fmt.Sprintf("Launch: step (%g) must be a positive number large enough to advance the time", e.Step)
}

//TooManySamplesError is returned by SampleCount when the trajectory would have more samples
//than the limit given.
type TooManySamplesError struct {
	Samples float64
	Limit   int
}

func (e *TooManySamplesError) Error() string {
	return fmt.Sprintf("Launch: %.0f samples exceed the limit of %d, maybe try to increase the step?", e.Samples, e.Limit)
}
