package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// offsetUnit is a throwaway affine unit: primary = value*2 + 10. It stands
// in for temperature-style scales whose conversion is not a plain factor.
type offsetUnit struct{}

func (offsetUnit) Symbol() string                    { return "off" }
func (offsetUnit) ConversionFactor() float64         { return 2.0 }
func (offsetUnit) ToPrimary(value float64) float64   { return value*2 + 10 }
func (offsetUnit) FromPrimary(value float64) float64 { return (value - 10) / 2 }

func TestUnitToPrimary(t *testing.T) {
	assert.InDelta(t, 3.0, UnitToPrimary(steps, 6), 1e-12)
	assert.InDelta(t, 6.0, UnitToPrimary(leaps, 2), 1e-12)
	assert.InDelta(t, 5.0, UnitToPrimary(paces, 5), 1e-12)
}

func TestUnitFromPrimary(t *testing.T) {
	assert.InDelta(t, 6.0, UnitFromPrimary(steps, 3), 1e-12)
	assert.InDelta(t, 2.0, UnitFromPrimary(leaps, 6), 1e-12)
}

func TestConvertBetween(t *testing.T) {
	assert.InDelta(t, 6.0, ConvertBetween(leaps, steps, 1), 1e-12)
	assert.InDelta(t, 0.5, ConvertBetween(steps, leaps, 3), 1e-12)
}

func TestOffsetUnitOverridesFactor(t *testing.T) {
	var u offsetUnit

	assert.InDelta(t, 14.0, UnitToPrimary(u, 2), 1e-12)
	assert.InDelta(t, 2.0, UnitFromPrimary(u, 14), 1e-12)

	// Round trip through an affine unit is exact in both directions.
	assert.InDelta(t, 7.5, UnitFromPrimary(u, UnitToPrimary(u, 7.5)), 1e-12)

	// The factor-only path would give 2*2 = 4, not 14.
	assert.InDelta(t, 2.0, ConvertBetween(u, u, 2), 1e-12)
}

func TestIsPrimary(t *testing.T) {
	assert.True(t, IsPrimary(paces))
	assert.False(t, IsPrimary(steps))
	assert.False(t, IsPrimary(leaps))
}

func TestIsSI(t *testing.T) {
	assert.True(t, IsSI(paces))
	assert.False(t, IsSI(steps))
	assert.False(t, IsSI(offsetUnit{}))
}

func TestPrefixConstants(t *testing.T) {
	assert.Equal(t, 1e3, Kilo)
	assert.Equal(t, 1e-3, Milli)
	assert.Equal(t, 1e30, Quetta)
	assert.Equal(t, 1e-30, Quecto)
	assert.Equal(t, 1048576.0, Mebi)
	assert.Equal(t, Kibi*Kibi*Kibi, Gibi)
}
