package unit

//AccelerationMPS2 is the value indicating that the acceleration value is set in meters per second squared
const AccelerationMPS2 byte = 70

//AccelerationFPS2 is the value indicating that the acceleration value is set in feet per second squared
const AccelerationFPS2 byte = 71

//AccelerationG is the value indicating that the acceleration value is set in standard gravities
const AccelerationG byte = 72

//StandardGravity is the standard acceleration of gravity on Earth in meters per second squared
const StandardGravity float64 = 9.80665

var accelerationUnits = linearUnits{
	kind: "Acceleration",
	units: map[byte]linearUnit{
		AccelerationMPS2: {perUnit: 1, name: "m/s²", accuracy: 2},
		AccelerationFPS2: {perUnit: 0.3048, name: "ft/s²", accuracy: 2},
		AccelerationG:    {perUnit: StandardGravity, name: "g", accuracy: 3},
	},
}

//Acceleration struct keeps an acceleration value, e.g. the gravitational acceleration.
//
//The value is stored in meters per second squared.
type Acceleration struct {
	value        float64
	defaultUnits byte
}

//CreateAcceleration creates an acceleration value.
//
//units are measurement unit and may be any value from
//unit.Acceleration* constants.
func CreateAcceleration(value float64, units byte) (Acceleration, error) {
	v, err := accelerationUnits.toDefault(value, units)
	if err != nil {
		return Acceleration{}, err
	}
	return Acceleration{value: v, defaultUnits: units}, nil
}

//MustCreateAcceleration creates the acceleration value but panics instead of returned a error
func MustCreateAcceleration(value float64, units byte) Acceleration {
	v, err := CreateAcceleration(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the acceleration in the specified units.
//
//The method returns a error in case the unit is
//not supported.
func (v Acceleration) Value(units byte) (float64, error) {
	return accelerationUnits.fromDefault(v.value, units)
}

//Convert changes the units in which the value is displayed
func (v Acceleration) Convert(units byte) Acceleration {
	return Acceleration{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Acceleration) In(units byte) float64 {
	return accelerationUnits.in(v.value, units)
}

func (v Acceleration) String() string {
	return accelerationUnits.format(v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Acceleration) Units() byte {
	return v.defaultUnits
}
