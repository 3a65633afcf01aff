package unit

import "fmt"

//linearUnit describes a unit which differs from the default unit of its kind by a factor only
type linearUnit struct {
	perUnit  float64 //amount of default units in one unit
	name     string
	accuracy int
}

//linearUnits is the table of all units of one kind, e.g. of all distance units
type linearUnits struct {
	kind  string
	units map[byte]linearUnit
}

func (t linearUnits) lookup(units byte) (linearUnit, error) {
	u, ok := t.units[units]
	if !ok {
		return linearUnit{}, fmt.Errorf("%s: unit %d is not supported", t.kind, units)
	}
	return u, nil
}

func (t linearUnits) toDefault(value float64, units byte) (float64, error) {
	u, err := t.lookup(units)
	if err != nil {
		return 0, err
	}
	return value * u.perUnit, nil
}

func (t linearUnits) fromDefault(value float64, units byte) (float64, error) {
	u, err := t.lookup(units)
	if err != nil {
		return 0, err
	}
	return value / u.perUnit, nil
}

//in returns 0 when the unit is not supported
func (t linearUnits) in(value float64, units byte) float64 {
	x, err := t.fromDefault(value, units)
	if err != nil {
		return 0
	}
	return x
}

func (t linearUnits) format(value float64, units byte) string {
	u, err := t.lookup(units)
	if err != nil {
		return "!error: default units aren't correct"
	}
	return fmt.Sprintf("%.*f%s", u.accuracy, value/u.perUnit, u.name)
}
