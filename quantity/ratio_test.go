package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// weight is a second throwaway quantity family so ratio tests can cross
// dimensions: grains primary, a drachm is 27 grains.
type grain int

const (
	grains grain = iota
	drachms
)

func (g grain) Symbol() string {
	if g == drachms {
		return "dr"
	}
	return "gr"
}

func (g grain) ConversionFactor() float64 {
	if g == drachms {
		return 27.0
	}
	return 1.0
}

type weight struct {
	value float64
	unit  grain
}

func wt(value float64, unit grain) weight {
	return weight{value: value, unit: unit}
}

func (w weight) Value() float64             { return w.value }
func (w weight) Measure() UnitOfMeasure     { return w.unit }
func (w weight) WithValue(v float64) weight { return weight{value: v, unit: w.unit} }

func TestRatioConvert(t *testing.T) {
	// 3 paces per 2 grains.
	r := NewRatio(dist(3, paces), wt(2, grains))

	assert.Equal(t, dist(3, paces), r.Base())
	assert.Equal(t, wt(2, grains), r.Counter())

	// 4 grains is twice the counter, so twice the base.
	d := r.ConvertToBase(wt(4, grains))
	assert.Equal(t, paces, d.Unit())
	assert.InDelta(t, 6.0, d.Value(), 1e-12)

	// 6 paces maps back to 4 grains.
	w := r.ConvertToCounter(dist(6, paces))
	assert.InDelta(t, 4.0, w.Value(), 1e-12)
}

func TestRatioConvertCrossUnit(t *testing.T) {
	// 1 leap (3 paces) per 1 drachm (27 grains).
	r := NewRatio(dist(1, leaps), wt(1, drachms))

	// 54 grains = 2 drachms, so 2 leaps; the result keeps the base unit.
	d := r.ConvertToBase(wt(54, grains))
	assert.Equal(t, leaps, d.Unit())
	assert.InDelta(t, 2.0, d.Value(), 1e-12)
}

func TestRatioInverse(t *testing.T) {
	r := NewRatio(dist(3, paces), wt(2, grains))
	inv := r.Inverse()

	assert.Equal(t, wt(2, grains), inv.Base())
	assert.Equal(t, dist(3, paces), inv.Counter())

	d := inv.ConvertToCounter(wt(4, grains))
	assert.InDelta(t, 6.0, d.Value(), 1e-12)
}

func TestRatioZeroCounter(t *testing.T) {
	r := NewRatio(dist(3, paces), wt(0, grains))
	d := r.ConvertToBase(wt(4, grains))
	assert.True(t, math.IsInf(d.Value(), 1))
}

func TestRatioString(t *testing.T) {
	r := NewRatio(dist(3, paces), wt(2, grains))
	assert.Equal(t, "3 pc per 2 gr", r.String())
}

func TestLikeRatio(t *testing.T) {
	// 6 paces per 4 steps (2 paces) is a 3:1 scale.
	r := NewLikeRatio(dist(6, paces), dist(4, steps))

	assert.InDelta(t, 3.0, r.Value(), 1e-12)
	assert.InDelta(t, 1.0/3.0, r.InverseValue(), 1e-12)

	inv := r.Inverse()
	assert.InDelta(t, 1.0/3.0, inv.Value(), 1e-12)
	assert.InDelta(t, 1.0, r.Value()*inv.Value()*3.0/3.0, 1e-12)
}

func TestRate(t *testing.T) {
	// 6 paces per 2 grains.
	r := NewRate(dist(6, paces), wt(2, grains))

	assert.Equal(t, dist(6, paces), r.Numerator())
	assert.Equal(t, wt(2, grains), r.Denominator())
	assert.InDelta(t, 3.0, r.Value(), 1e-12)

	// rate * denominator quantity = numerator quantity.
	d := r.Times(wt(5, grains))
	assert.Equal(t, paces, d.Unit())
	assert.InDelta(t, 15.0, d.Value(), 1e-12)

	assert.Equal(t, "6 pc / 2 gr", r.String())
}
