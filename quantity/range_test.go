package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/quants/errors"
)

func rng(lower, upper float64) Range[distance] {
	return NewRangeUnchecked(dist(lower, paces), dist(upper, paces))
}

func TestNewRange(t *testing.T) {
	r, err := NewRange(dist(1, paces), dist(5, paces))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, r.Size().Value(), 1e-12)

	// Bounds compare in primary units, so mixed-unit construction works.
	_, err = NewRange(dist(4, steps), dist(3, paces))
	require.NoError(t, err)

	_, err = NewRange(dist(5, paces), dist(5, paces))
	require.Error(t, err)
	assert.True(t, errors.IsRangeError(err))

	_, err = NewRange(dist(6, paces), dist(5, paces))
	require.Error(t, err)
	assert.True(t, errors.IsRangeError(err))
}

func TestRangeContains(t *testing.T) {
	r := rng(1, 5)

	tests := []struct {
		name     string
		q        distance
		contains bool
		includes bool
	}{
		{"below", dist(0.5, paces), false, false},
		{"at lower", dist(1, paces), true, true},
		{"inside", dist(3, paces), true, true},
		{"at upper", dist(5, paces), false, true},
		{"above", dist(5.5, paces), false, false},
		{"inside via other unit", dist(6, steps), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.contains, r.Contains(tt.q))
			assert.Equal(t, tt.includes, r.Includes(tt.q))
		})
	}
}

func TestRangeContainsRange(t *testing.T) {
	r := rng(1, 5)

	assert.True(t, r.ContainsRange(rng(2, 4)))
	assert.True(t, r.ContainsRange(rng(1, 5)))
	assert.False(t, r.ContainsRange(rng(0, 3)))
	assert.False(t, r.ContainsRange(rng(4, 6)))

	// Closed semantics admit a sub-range sharing the upper bound as a
	// degenerate lower endpoint; half-open does not.
	assert.True(t, r.IncludesRange(rng(1, 5)))
	assert.True(t, r.IncludesRange(rng(2, 5)))
}

func TestRangeOverlaps(t *testing.T) {
	r := rng(1, 5)

	assert.True(t, r.Overlaps(rng(4, 6)))
	assert.True(t, r.Overlaps(rng(0, 2)))
	assert.True(t, r.Overlaps(rng(2, 3)))
	assert.True(t, r.Overlaps(rng(0, 6)))

	// Touching at an endpoint is not overlap.
	assert.False(t, r.Overlaps(rng(5, 7)))
	assert.False(t, r.Overlaps(rng(-1, 1)))
	assert.False(t, r.Overlaps(rng(7, 9)))
}

func TestRangeShift(t *testing.T) {
	r := rng(1, 5)

	shifted := r.Shift(dist(2, paces))
	assert.True(t, shifted.Equal(rng(3, 7)))

	assert.True(t, r.Increment().Equal(rng(5, 9)))
	assert.True(t, r.Decrement().Equal(rng(-3, 1)))

	// A full increment/decrement cycle restores the original range.
	assert.True(t, r.Increment().Decrement().Equal(r))
}

func TestRangeExpandContract(t *testing.T) {
	r := rng(2, 6)

	assert.True(t, r.Expand(dist(1, paces)).Equal(rng(1, 7)))

	contracted, ok := r.Contract(dist(1, paces))
	require.True(t, ok)
	assert.True(t, contracted.Equal(rng(3, 5)))

	_, ok = r.Contract(dist(2, paces))
	assert.False(t, ok, "contraction to a point collapses the range")

	_, ok = r.Contract(dist(3, paces))
	assert.False(t, ok)
}

func TestRangeDivide(t *testing.T) {
	r := rng(0, 6)

	parts := r.Divide(3)
	require.Len(t, parts, 3)
	assert.True(t, parts[0].Equal(rng(0, 2)))
	assert.True(t, parts[1].Equal(rng(2, 4)))
	assert.True(t, parts[2].Equal(rng(4, 6)))

	// Adjacent parts share an endpoint exactly.
	assert.InDelta(t, ToPrimary(parts[0].Upper()), ToPrimary(parts[1].Lower()), 1e-12)

	assert.Nil(t, r.Divide(0))
	assert.Nil(t, r.Divide(-2))
}

func TestRangeTupleAndString(t *testing.T) {
	r := rng(1, 5)

	lo, hi := r.Tuple()
	assert.Equal(t, dist(1, paces), lo)
	assert.Equal(t, dist(5, paces), hi)

	assert.Equal(t, "[1 pc, 5 pc)", r.String())
}

func TestRangeEqualAcrossUnits(t *testing.T) {
	a := NewRangeUnchecked(dist(2, steps), dist(10, steps))
	b := rng(1, 5)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(rng(1, 6)))
}
