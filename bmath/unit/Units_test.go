package unit_test

import (
	"math"
	"testing"

	"github.com/gehtsoft-usa/go_ballisticlaunch/bmath/unit"
)

func angularBackAndForth(t *testing.T, value float64, units byte) {
	var u unit.Angular
	var e1, e2 error
	var v float64
	u, e1 = unit.CreateAngular(value, units)
	if e1 != nil {
		t.Errorf("Creation failed for %d", units)
		return
	}
	v, e2 = u.Value(units)
	if !(e2 == nil && math.Abs(v-value) < 1e-7 && math.Abs(v-u.In(units)) < 1e-7) {
		t.Errorf("Read back failed for %d", units)
		return
	}
}

func distanceBackAndForth(t *testing.T, value float64, units byte) {
	var u unit.Distance
	var e1, e2 error
	var v float64
	u, e1 = unit.CreateDistance(value, units)
	if e1 != nil {
		t.Errorf("Creation failed for %d", units)
		return
	}
	v, e2 = u.Value(units)
	if !(e2 == nil && math.Abs(v-value) < 1e-7 && math.Abs(v-u.In(units)) < 1e-7) {
		t.Errorf("Read back failed for %d", units)
		return
	}
}

func velocityBackAndForth(t *testing.T, value float64, units byte) {
	var u unit.Velocity
	var e1, e2 error
	var v float64
	u, e1 = unit.CreateVelocity(value, units)
	if e1 != nil {
		t.Errorf("Creation failed for %d", units)
		return
	}
	v, e2 = u.Value(units)
	if !(e2 == nil && math.Abs(v-value) < 1e-7 && math.Abs(v-u.In(units)) < 1e-7) {
		t.Errorf("Read back failed for %d", units)
		return
	}
}

func accelerationBackAndForth(t *testing.T, value float64, units byte) {
	var u unit.Acceleration
	var e1, e2 error
	var v float64
	u, e1 = unit.CreateAcceleration(value, units)
	if e1 != nil {
		t.Errorf("Creation failed for %d", units)
		return
	}
	v, e2 = u.Value(units)
	if !(e2 == nil && math.Abs(v-value) < 1e-7 && math.Abs(v-u.In(units)) < 1e-7) {
		t.Errorf("Read back failed for %d", units)
		return
	}
}

func TestAngular(t *testing.T) {
	angularBackAndForth(t, 3, unit.AngularDegree)
	angularBackAndForth(t, 3, unit.AngularMOA)
	angularBackAndForth(t, 3, unit.AngularMRad)
	angularBackAndForth(t, 3, unit.AngularMil)
	angularBackAndForth(t, 3, unit.AngularRadian)
	angularBackAndForth(t, 3, unit.AngularThousand)
	angularBackAndForth(t, 3, unit.AngularCmPer100M)
	angularBackAndForth(t, 3, unit.AngularInchesPer100Yd)

	var u unit.Angular
	u, _ = unit.CreateAngular(1, unit.AngularInchesPer100Yd)
	if math.Abs(0.954930-u.In(unit.AngularMOA)) > 1e-5 {
		t.Errorf("Conversion failed")
	}

	u = u.Convert(unit.AngularCmPer100M)
	if u.String() != "2.78cm/100m" {
		t.Errorf("To string failed: %s", u.String())
	}

	if unit.MustCreateAngular(90, unit.AngularDegree).In(unit.AngularRadian) != math.Pi/2 {
		t.Errorf("Degree conversion is not exact")
	}

	if _, err := unit.CreateAngular(1, 99); err == nil {
		t.Errorf("Unknown unit accepted")
	}
}

func TestDistance(t *testing.T) {
	distanceBackAndForth(t, 3, unit.DistanceCentimeter)
	distanceBackAndForth(t, 3, unit.DistanceFoot)
	distanceBackAndForth(t, 3, unit.DistanceInch)
	distanceBackAndForth(t, 3, unit.DistanceKilometer)
	distanceBackAndForth(t, 3, unit.DistanceLine)
	distanceBackAndForth(t, 3, unit.DistanceMeter)
	distanceBackAndForth(t, 3, unit.DistanceMile)
	distanceBackAndForth(t, 3, unit.DistanceMillimeter)
	distanceBackAndForth(t, 3, unit.DistanceNauticalMile)
	distanceBackAndForth(t, 3, unit.DistanceYard)

	if math.Abs(unit.MustCreateDistance(1, unit.DistanceFoot).In(unit.DistanceInch)-12) > 1e-9 {
		t.Errorf("Foot to inch failed")
	}
	if unit.MustCreateDistance(2.5, unit.DistanceMeter).String() != "2.50m" {
		t.Errorf("To string failed")
	}
	if unit.MustCreateDistance(1, unit.DistanceFoot).Convert(unit.DistanceInch).String() != "12.0\"" {
		t.Errorf("Convert failed")
	}
	if (unit.Distance{}).String() != "!error: default units aren't correct" {
		t.Errorf("Unknown units are formatted")
	}
	if _, err := unit.CreateDistance(1, unit.VelocityMPS); err == nil {
		t.Errorf("Velocity unit accepted as distance unit")
	}
}

func TestVelocity(t *testing.T) {
	velocityBackAndForth(t, 3, unit.VelocityFPS)
	velocityBackAndForth(t, 3, unit.VelocityKMH)
	velocityBackAndForth(t, 3, unit.VelocityKT)
	velocityBackAndForth(t, 3, unit.VelocityMPH)
	velocityBackAndForth(t, 3, unit.VelocityMPS)

	if math.Abs(unit.MustCreateVelocity(36, unit.VelocityKMH).In(unit.VelocityMPS)-10) > 1e-9 {
		t.Errorf("km/h to m/s failed")
	}
}

func TestAcceleration(t *testing.T) {
	accelerationBackAndForth(t, 3, unit.AccelerationMPS2)
	accelerationBackAndForth(t, 3, unit.AccelerationFPS2)
	accelerationBackAndForth(t, 3, unit.AccelerationG)

	if unit.MustCreateAcceleration(1, unit.AccelerationG).In(unit.AccelerationMPS2) != unit.StandardGravity {
		t.Errorf("g to m/s² failed")
	}
	if unit.MustCreateAcceleration(10, unit.AccelerationMPS2).String() != "10.00m/s²" {
		t.Errorf("To string failed")
	}
}

func TestParse(t *testing.T) {
	var u byte
	var err error

	if u, err = unit.ParseVelocityUnit("FPS"); err != nil || u != unit.VelocityFPS {
		t.Errorf("ParseVelocityUnit failed")
	}
	if u, err = unit.ParseDistanceUnit(" km "); err != nil || u != unit.DistanceKilometer {
		t.Errorf("ParseDistanceUnit failed")
	}
	if u, err = unit.ParseAccelerationUnit("g"); err != nil || u != unit.AccelerationG {
		t.Errorf("ParseAccelerationUnit failed")
	}
	if u, err = unit.ParseAngularUnit("deg"); err != nil || u != unit.AngularDegree {
		t.Errorf("ParseAngularUnit failed")
	}
	if _, err = unit.ParseVelocityUnit("furlongs/fortnight"); err == nil {
		t.Errorf("Unknown unit name accepted")
	}
}
