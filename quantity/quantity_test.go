package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stride is a throwaway unit family for exercising the generic algebra
// without importing a concrete quantity package: paces are primary, a step
// is half a pace, a leap is three paces.
type stride int

const (
	paces stride = iota
	steps
	leaps
)

func (s stride) Symbol() string {
	switch s {
	case steps:
		return "st"
	case leaps:
		return "lp"
	default:
		return "pc"
	}
}

func (s stride) ConversionFactor() float64 {
	switch s {
	case steps:
		return 0.5
	case leaps:
		return 3.0
	default:
		return 1.0
	}
}

func (s stride) SI() bool {
	return s == paces
}

type distance struct {
	value float64
	unit  stride
}

func dist(value float64, unit stride) distance {
	return distance{value: value, unit: unit}
}

func (d distance) Value() float64               { return d.value }
func (d distance) Unit() stride                 { return d.unit }
func (d distance) Measure() UnitOfMeasure       { return d.unit }
func (d distance) WithValue(v float64) distance { return distance{value: v, unit: d.unit} }
func (d distance) With(v float64, u stride) distance {
	return distance{value: v, unit: u}
}

type strideDimension struct{}

func (strideDimension) Name() string        { return "Distance" }
func (strideDimension) PrimaryUnit() stride { return paces }
func (strideDimension) SIUnit() stride      { return paces }
func (strideDimension) Units() []stride     { return []stride{paces, steps, leaps} }
func (strideDimension) Make(value float64, unit stride) distance {
	return dist(value, unit)
}

var strides Dimension[stride, distance] = strideDimension{}

func TestToPrimaryAndBack(t *testing.T) {
	q := dist(4, steps)
	assert.InDelta(t, 2.0, ToPrimary(q), 1e-12)

	back := FromPrimary(q, 2.0)
	assert.Equal(t, steps, back.Unit())
	assert.InDelta(t, 4.0, back.Value(), 1e-12)
}

func TestTo(t *testing.T) {
	tests := []struct {
		name   string
		q      distance
		target stride
		want   float64
	}{
		{"identity", dist(7, paces), paces, 7},
		{"down to smaller unit", dist(1, leaps), steps, 6},
		{"up to larger unit", dist(6, steps), leaps, 1},
		{"to primary", dist(2, leaps), paces, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, To(tt.q, tt.target), 1e-12)
		})
	}
}

func TestIn(t *testing.T) {
	q := In(dist(1, leaps), steps)
	assert.Equal(t, steps, q.Unit())
	assert.InDelta(t, 6.0, q.Value(), 1e-12)

	same := In(q, steps)
	assert.Equal(t, q, same)
}

func TestRoundTripConversion(t *testing.T) {
	q := dist(12.75, steps)
	round := In(In(q, leaps), steps)
	assert.InDelta(t, q.Value(), round.Value(), 1e-9)
}

func TestUnaryOps(t *testing.T) {
	q := dist(-2.6, steps)

	assert.InDelta(t, 2.6, Negate(q).Value(), 1e-12)
	assert.InDelta(t, 2.6, Abs(q).Value(), 1e-12)
	assert.InDelta(t, -2.0, Ceil(q).Value(), 1e-12)
	assert.InDelta(t, -3.0, Floor(q).Value(), 1e-12)
	assert.InDelta(t, -3.0, Round(q).Value(), 1e-12)
	assert.InDelta(t, -5.2, Map(q, func(v float64) float64 { return v * 2 }).Value(), 1e-12)

	// Unit survives every transform.
	assert.Equal(t, steps, Abs(q).Unit())
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b distance
		want int
	}{
		{"less", dist(1, paces), dist(2, paces), -1},
		{"greater", dist(3, paces), dist(2, paces), 1},
		{"equal", dist(2, paces), dist(2, paces), 0},
		{"cross-unit equal", dist(2, steps), dist(1, paces), 0},
		{"cross-unit less", dist(1, steps), dist(1, leaps), -1},
		{"nan collapses to equal", dist(math.NaN(), paces), dist(2, paces), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
		})
	}
}

func TestMaxMin(t *testing.T) {
	a := dist(4, steps) // 2 paces
	b := dist(3, paces)

	max := Max(a, b)
	assert.Equal(t, steps, max.Unit())
	assert.InDelta(t, 6.0, max.Value(), 1e-12)

	min := Min(a, b)
	assert.Equal(t, steps, min.Unit())
	assert.InDelta(t, 4.0, min.Value(), 1e-12)
}

func TestAddSub(t *testing.T) {
	a := dist(2, paces)
	b := dist(4, steps) // 2 paces

	sum := Add(a, b)
	assert.Equal(t, paces, sum.Unit())
	assert.InDelta(t, 4.0, sum.Value(), 1e-12)

	// Result takes the left operand's unit.
	sum2 := Add(b, a)
	assert.Equal(t, steps, sum2.Unit())
	assert.InDelta(t, 8.0, sum2.Value(), 1e-12)

	diff := Sub(a, b)
	assert.InDelta(t, 0.0, diff.Value(), 1e-12)
}

func TestDiv(t *testing.T) {
	assert.InDelta(t, 2.0, Div(dist(4, paces), dist(2, paces)), 1e-12)
	assert.InDelta(t, 4.0, Div(dist(4, paces), dist(2, steps)), 1e-12)
	assert.True(t, math.IsInf(Div(dist(1, paces), dist(0, paces)), 1))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(dist(1, paces), dist(2, steps)))
	assert.False(t, Equal(dist(1, paces), dist(1, steps)))
}

func TestApproxEq(t *testing.T) {
	a := dist(1.0, paces)
	b := dist(1.0005, paces)

	assert.True(t, ApproxEq(a, b, dist(0.001, paces)))
	assert.False(t, ApproxEq(a, b, dist(0.0001, paces)))
	assert.False(t, ApproxEqDefault(a, b))
	assert.True(t, ApproxEqDefault(a, dist(1.0+1e-12, paces)))
}

func TestTupleAndFormat(t *testing.T) {
	q := dist(2.5, steps)

	v, sym := Tuple(q)
	assert.Equal(t, 2.5, v)
	assert.Equal(t, "st", sym)

	v, sym = TupleIn(q, paces)
	assert.InDelta(t, 1.25, v, 1e-12)
	assert.Equal(t, "pc", sym)

	assert.Equal(t, "2.5 st", Format(q))
}

func TestFormatParseRoundTrip(t *testing.T) {
	q := dist(12.5, leaps)
	parsed, err := Parse(strides, Format(q))
	require.NoError(t, err)
	assert.Equal(t, q, parsed)
}
