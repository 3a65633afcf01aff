package kinematic_test

import (
	"testing"

	"github.com/gehtsoft-usa/go_ballisticlaunch/bmath/kinematic"
	"github.com/stretchr/testify/assert"
)

func TestDisplacement(t *testing.T) {
	tests := []struct {
		name         string
		velocity     float64
		time         float64
		acceleration float64
		want         float64
	}{
		{name: "at rest", velocity: 0, time: 3, acceleration: 0, want: 0},
		{name: "uniform motion", velocity: 4, time: 2.5, acceleration: 0, want: 10},
		{name: "free fall", velocity: 0, time: 2, acceleration: -10, want: -20},
		{name: "thrown up", velocity: 10, time: 1, acceleration: -10, want: 5},
		{name: "back to start", velocity: 10, time: 2, acceleration: -10, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kinematic.Displacement(tt.velocity, tt.time, tt.acceleration))
		})
	}
}

func TestFinalVelocity(t *testing.T) {
	assert.Equal(t, 0.0, kinematic.FinalVelocity(10, 1, -10))
	assert.Equal(t, -10.0, kinematic.FinalVelocity(10, 2, -10))
	assert.Equal(t, 7.0, kinematic.FinalVelocity(7, 100, 0))
}

func TestApexTime(t *testing.T) {
	assert.Equal(t, 1.0, kinematic.ApexTime(10, -10))
	assert.Equal(t, 0.0, kinematic.ApexTime(10, 0))
}
