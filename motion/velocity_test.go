package motion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/quants/chrono"
	"github.com/teranos/quants/space"
)

func TestVelocityConversions(t *testing.T) {
	tests := []struct {
		name     string
		velocity Velocity
		target   VelocityUnit
		want     float64
	}{
		{"m/s to km/h", MetersPerSecond(1), KilometerPerHour, 3.6},
		{"km/h to m/s", KilometersPerHour(36), MeterPerSecond, 10},
		{"mph to km/h", MilesPerHour(60), KilometerPerHour, 96.56064},
		{"kn to km/h", Knots(1), KilometerPerHour, 1.852},
		{"ft/s to m/s", NewVelocity(1, FootPerSecond), MeterPerSecond, 0.3048},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.velocity.To(tt.target), 1e-9)
		})
	}
}

func TestOver(t *testing.T) {
	v := Over(space.Kilometers(100), chrono.Hours(2))
	assert.Equal(t, MeterPerSecond, v.Unit())
	assert.InDelta(t, 50, v.To(KilometerPerHour), 1e-9)
}

func TestTimes(t *testing.T) {
	d := KilometersPerHour(60).Times(chrono.Minutes(30))
	assert.InDelta(t, 30, d.To(space.Kilometer), 1e-9)
}

func TestTimeTo(t *testing.T) {
	d := KilometersPerHour(100).TimeTo(space.Kilometers(250))
	assert.InDelta(t, 2.5, d.To(chrono.Hour), 1e-9)
}

func TestVelocityRoundTripThroughOver(t *testing.T) {
	v := MetersPerSecond(12.5)
	d := v.Times(chrono.Seconds(8))
	back := Over(d, chrono.Seconds(8))
	assert.True(t, v.Equal(back))
}

func TestParseVelocity(t *testing.T) {
	v, err := ParseVelocity("60 km/h")
	require.NoError(t, err)
	assert.Equal(t, KilometersPerHour(60), v)

	v, err = ParseVelocity("12 kn")
	require.NoError(t, err)
	assert.Equal(t, Knot, v.Unit())

	_, err = ParseVelocity("5 furlongs/fortnight")
	require.Error(t, err)
}
