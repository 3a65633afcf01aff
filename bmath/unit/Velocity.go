package unit

//VelocityMPS is the value indicating that velocity value is expressed in meters per second
const VelocityMPS byte = 60

//VelocityKMH is the value indicating that velocity value is expressed in kilometers per hour
const VelocityKMH byte = 61

//VelocityFPS is the value indicating that velocity value is expressed in feet per second
const VelocityFPS byte = 62

//VelocityMPH is the value indicating that velocity value is expressed in miles per hour
const VelocityMPH byte = 63

//VelocityKT is the value indicating that velocity value is expressed in knots
const VelocityKT byte = 64

var velocityUnits = linearUnits{
	kind: "Velocity",
	units: map[byte]linearUnit{
		VelocityMPS: {perUnit: 1, name: "m/s", accuracy: 2},
		VelocityKMH: {perUnit: 1 / 3.6, name: "km/h", accuracy: 1},
		VelocityFPS: {perUnit: 0.3048, name: "ft/s", accuracy: 1},
		VelocityMPH: {perUnit: 0.44704, name: "mph", accuracy: 1},
		VelocityKT:  {perUnit: 1852.0 / 3600.0, name: "kt", accuracy: 1},
	},
}

//Velocity struct keeps velocity or speed values.
//
//The value is stored in meters per second.
type Velocity struct {
	value        float64
	defaultUnits byte
}

//CreateVelocity creates a velocity value.
//
//units are measurement unit and may be any value from
//unit.Velocity* constants.
func CreateVelocity(value float64, units byte) (Velocity, error) {
	v, err := velocityUnits.toDefault(value, units)
	if err != nil {
		return Velocity{}, err
	}
	return Velocity{value: v, defaultUnits: units}, nil
}

//MustCreateVelocity creates the velocity value but panics instead of returned a error
func MustCreateVelocity(value float64, units byte) Velocity {
	v, err := CreateVelocity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the velocity in the specified units.
//
//The method returns a error in case the unit is
//not supported.
func (v Velocity) Value(units byte) (float64, error) {
	return velocityUnits.fromDefault(v.value, units)
}

//Convert changes the units in which the value is displayed
func (v Velocity) Convert(units byte) Velocity {
	return Velocity{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Velocity) In(units byte) float64 {
	return velocityUnits.in(v.value, units)
}

func (v Velocity) String() string {
	return velocityUnits.format(v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Velocity) Units() byte {
	return v.defaultUnits
}
