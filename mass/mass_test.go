package mass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/quants/quantity"
)

func TestMassConversions(t *testing.T) {
	tests := []struct {
		name   string
		mass   Mass
		target MassUnit
		want   float64
	}{
		{"kg to g", Kilograms(1), Gram, 1000},
		{"t to kg", Tonnes(1), Kilogram, 1000},
		{"lb to g", Pounds(1), Gram, 453.59237},
		{"lb to oz", Pounds(1), Ounce, 16},
		{"stone to lb", NewMass(1, Stone), Pound, 14},
		{"troy oz to grain", NewMass(1, TroyOunce), TroyGrain, 480},
		{"carat to mg", NewMass(1, Carat), Milligram, 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.mass.To(tt.target), 1e-9)
		})
	}
}

func TestMassPrimaryIsGramSIIsKilogram(t *testing.T) {
	assert.Equal(t, Gram, Masses.PrimaryUnit())
	assert.Equal(t, Kilogram, Masses.SIUnit())

	primaries := 0
	for _, u := range Masses.Units() {
		if quantity.IsPrimary(u) {
			primaries++
		}
	}
	assert.Equal(t, 1, primaries)
}

func TestMassArithmetic(t *testing.T) {
	sum := Kilograms(1).Add(Grams(500))
	assert.Equal(t, Kilogram, sum.Unit())
	assert.InDelta(t, 1.5, sum.Value(), 1e-12)

	assert.True(t, Kilograms(1).Equal(Grams(1000)))
	assert.InDelta(t, -2, Grams(2).Neg().Value(), 1e-12)
}

func TestParseMass(t *testing.T) {
	m, err := ParseMass("-10.5 kg")
	require.NoError(t, err)
	assert.Equal(t, Kilograms(-10.5), m)

	m, err = ParseMass("3 oz t")
	require.NoError(t, err)
	assert.Equal(t, TroyOunce, m.Unit())

	_, err = ParseMass("1 slug")
	require.Error(t, err)
}
