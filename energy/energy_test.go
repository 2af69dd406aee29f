package energy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/quants/quantity"
)

func TestEnergyConversions(t *testing.T) {
	tests := []struct {
		name   string
		energy Energy
		target EnergyUnit
		want   float64
	}{
		{"Wh to J", WattHours(1), Joule, 3600},
		{"kWh to Wh", KilowattHours(1), WattHour, 1000},
		{"kWh to MJ", KilowattHours(1), Megajoule, 3.6},
		{"kJ to J", Kilojoules(1), Joule, 1000},
		{"kcal to J", NewEnergy(1, Kilocalorie), Joule, 4184},
		{"BTU to Wh", NewEnergy(1, BritishThermalUnit), WattHour, 0.2930710701722222},
		{"erg to J", NewEnergy(1, Erg), Joule, 1e-7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.energy.To(tt.target), 1e-9)
		})
	}
}

func TestEnergyPrimaryIsWattHourSIIsJoule(t *testing.T) {
	assert.Equal(t, WattHour, Energies.PrimaryUnit())
	assert.Equal(t, Joule, Energies.SIUnit())
	assert.True(t, quantity.IsSI(Joule))
	assert.False(t, quantity.IsSI(WattHour))
}

func TestEnergyArithmetic(t *testing.T) {
	sum := KilowattHours(1).Add(WattHours(500))
	assert.Equal(t, KilowattHour, sum.Unit())
	assert.InDelta(t, 1.5, sum.Value(), 1e-12)

	assert.True(t, Joules(3600).Equal(WattHours(1)))
	assert.InDelta(t, 7200, WattHours(1).Mul(2).ToJoules(), 1e-9)
}

func TestParseEnergy(t *testing.T) {
	e, err := ParseEnergy("1.5 kWh")
	require.NoError(t, err)
	assert.Equal(t, KilowattHours(1.5), e)

	e, err = ParseEnergy("250mJ")
	require.NoError(t, err)
	assert.Equal(t, Millijoule, e.Unit())

	_, err = ParseEnergy("5 therms")
	require.Error(t, err)
}
