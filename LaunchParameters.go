package go_ballisticlaunch

//LaunchParameters struct keeps all the parameters of a launch as plain values.
//
//It is the form in which the parameters are read from files and requests.
type LaunchParameters struct {
	Speed   float64 `json:"speed" yaml:"speed"`
	Angle   float64 `json:"angle" yaml:"angle"`
	Gravity float64 `json:"gravity" yaml:"gravity"`
	LaunchX float64 `json:"x" yaml:"x"`
	LaunchY float64 `json:"y" yaml:"y"`
	Step    float64 `json:"step" yaml:"step"`
}

//DefaultLaunchParameters returns the parameters of the reference example:
//speed 10, angle 20°, gravity 10, launched from (0, 0) with step 0.0001
func DefaultLaunchParameters() LaunchParameters {
	return LaunchParameters{
		Speed:   10,
		Angle:   20,
		Gravity: 10,
		LaunchX: 0,
		LaunchY: 0,
		Step:    0.0001,
	}
}
