package config

import ballistic "github.com/gehtsoft-usa/go_ballisticlaunch"

// PartialParameters holds launch parameters in which every field may be
// omitted. Omitted fields take the value of the defaults on Merge.
type PartialParameters struct {
	Speed   *float64 `json:"speed,omitempty" yaml:"speed,omitempty"`
	Angle   *float64 `json:"angle,omitempty" yaml:"angle,omitempty"`
	Gravity *float64 `json:"gravity,omitempty" yaml:"gravity,omitempty"`
	LaunchX *float64 `json:"x,omitempty" yaml:"x,omitempty"`
	LaunchY *float64 `json:"y,omitempty" yaml:"y,omitempty"`
	Step    *float64 `json:"step,omitempty" yaml:"step,omitempty"`
}

// Merge fills the omitted fields from defaults.
func (p PartialParameters) Merge(defaults ballistic.LaunchParameters) ballistic.LaunchParameters {
	out := defaults
	pick := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	pick(&out.Speed, p.Speed)
	pick(&out.Angle, p.Angle)
	pick(&out.Gravity, p.Gravity)
	pick(&out.LaunchX, p.LaunchX)
	pick(&out.LaunchY, p.LaunchY)
	pick(&out.Step, p.Step)
	return out
}
