package unit

//DistanceInch is the value indicating that the distance value is set in inches
const DistanceInch byte = 10

//DistanceFoot is the value indicating that the distance value is set in feet
const DistanceFoot byte = 11

//DistanceYard is the value indicating that the distance value is set in yards
const DistanceYard byte = 12

//DistanceMile is the value indicating that the distance value is set in miles
const DistanceMile byte = 13

//DistanceNauticalMile is the value indicating that the distance value is set in nautical miles
const DistanceNauticalMile byte = 14

//DistanceMillimeter is the value indicating that the distance value is set in millimeters
const DistanceMillimeter byte = 15

//DistanceCentimeter is the value indicating that the distance value is set in centimeters
const DistanceCentimeter byte = 16

//DistanceMeter is the value indicating that the distance value is set in meters
const DistanceMeter byte = 17

//DistanceKilometer is the value indicating that the distance value is set in kilometers
const DistanceKilometer byte = 18

//DistanceLine is the value indicating that the distance value is set in lines (1/10 of inch)
const DistanceLine byte = 19

var distanceUnits = linearUnits{
	kind: "Distance",
	units: map[byte]linearUnit{
		DistanceInch:         {perUnit: 0.0254, name: "\"", accuracy: 1},
		DistanceFoot:         {perUnit: 0.3048, name: "'", accuracy: 2},
		DistanceYard:         {perUnit: 0.9144, name: "yd", accuracy: 3},
		DistanceMile:         {perUnit: 1609.344, name: "mi", accuracy: 3},
		DistanceNauticalMile: {perUnit: 1852, name: "nm", accuracy: 3},
		DistanceMillimeter:   {perUnit: 0.001, name: "mm", accuracy: 0},
		DistanceCentimeter:   {perUnit: 0.01, name: "cm", accuracy: 1},
		DistanceMeter:        {perUnit: 1, name: "m", accuracy: 2},
		DistanceKilometer:    {perUnit: 1000, name: "km", accuracy: 3},
		DistanceLine:         {perUnit: 0.00254, name: "ln", accuracy: 1},
	},
}

//Distance structure keeps a distance or a coordinate value.
//
//The value is stored in meters.
type Distance struct {
	value        float64
	defaultUnits byte
}

//CreateDistance creates a distance value.
//
//units are measurement unit and may be any value from
//unit.Distance* constants.
func CreateDistance(value float64, units byte) (Distance, error) {
	v, err := distanceUnits.toDefault(value, units)
	if err != nil {
		return Distance{}, err
	}
	return Distance{value: v, defaultUnits: units}, nil
}

//MustCreateDistance creates the distance value but panics instead of returned a error
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the distance in the specified units.
//
//The method returns a error in case the unit is
//not supported.
func (v Distance) Value(units byte) (float64, error) {
	return distanceUnits.fromDefault(v.value, units)
}

//Convert changes the units in which the value is displayed
func (v Distance) Convert(units byte) Distance {
	return Distance{value: v.value, defaultUnits: units}
}

//In converts the value in the specified units.
//Returns 0 if unit conversion is not possible.
func (v Distance) In(units byte) float64 {
	return distanceUnits.in(v.value, units)
}

func (v Distance) String() string {
	return distanceUnits.format(v.value, v.defaultUnits)
}

//Units return the units in which the value is measured
func (v Distance) Units() byte {
	return v.defaultUnits
}
