package unit

import (
	"fmt"
	"strings"
)

var velocityNames = map[string]byte{
	"m/s": VelocityMPS, "mps": VelocityMPS,
	"km/h": VelocityKMH, "kmh": VelocityKMH,
	"ft/s": VelocityFPS, "fps": VelocityFPS,
	"mph": VelocityMPH,
	"kt": VelocityKT, "kn": VelocityKT,
}

var distanceNames = map[string]byte{
	"in": DistanceInch, "inch": DistanceInch,
	"ft": DistanceFoot, "foot": DistanceFoot,
	"yd": DistanceYard, "yard": DistanceYard,
	"mi": DistanceMile, "mile": DistanceMile,
	"nm": DistanceNauticalMile,
	"mm": DistanceMillimeter,
	"cm": DistanceCentimeter,
	"m": DistanceMeter, "meter": DistanceMeter,
	"km": DistanceKilometer,
	"ln": DistanceLine, "line": DistanceLine,
}

var accelerationNames = map[string]byte{
	"m/s2": AccelerationMPS2, "m/s²": AccelerationMPS2, "mps2": AccelerationMPS2,
	"ft/s2": AccelerationFPS2, "ft/s²": AccelerationFPS2, "fps2": AccelerationFPS2,
	"g": AccelerationG,
}

var angularNames = map[string]byte{
	"rad": AngularRadian, "radian": AngularRadian,
	"deg": AngularDegree, "degree": AngularDegree, "°": AngularDegree,
	"moa": AngularMOA,
	"mil": AngularMil,
	"mrad": AngularMRad,
	"ths": AngularThousand,
}

func parseUnit(kind string, names map[string]byte, name string) (byte, error) {
	u, ok := names[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("%s: unit %q is not supported", kind, name)
	}
	return u, nil
}

//ParseVelocityUnit returns the unit.Velocity* constant for a unit name such as "m/s" or "fps"
func ParseVelocityUnit(name string) (byte, error) {
	return parseUnit("Velocity", velocityNames, name)
}

//ParseDistanceUnit returns the unit.Distance* constant for a unit name such as "m" or "ft"
func ParseDistanceUnit(name string) (byte, error) {
	return parseUnit("Distance", distanceNames, name)
}

//ParseAccelerationUnit returns the unit.Acceleration* constant for a unit name such as "m/s2" or "g"
func ParseAccelerationUnit(name string) (byte, error) {
	return parseUnit("Acceleration", accelerationNames, name)
}

//ParseAngularUnit returns the unit.Angular* constant for a unit name such as "deg" or "mil"
func ParseAngularUnit(name string) (byte, error) {
	return parseUnit("Angular", angularNames, name)
}
