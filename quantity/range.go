package quantity

import (
	"fmt"
	"math"

	"github.com/teranos/quants/errors"
)

// Range is a closed/half-open interval over any quantity type, measured on
// the primary-unit number line. The lower bound is strictly less than the
// upper bound; every transformation returns a new range and preserves the
// unit of the original bounds.
type Range[Q Quantity[Q]] struct {
	lower Q
	upper Q
}

// NewRange creates a quantity range. It fails with an ErrRange-marked
// error unless lower < upper in primary units.
func NewRange[Q Quantity[Q]](lower, upper Q) (Range[Q], error) {
	if ToPrimary(lower) >= ToPrimary(upper) {
		return Range[Q]{}, errors.Mark(
			errors.Newf("range upper bound must be strictly greater than the lower bound: %s >= %s",
				Format(lower), Format(upper)),
			errors.ErrRange)
	}
	return Range[Q]{lower: lower, upper: upper}, nil
}

// NewRangeUnchecked creates a range without validating the bounds. The
// caller must ensure lower < upper.
func NewRangeUnchecked[Q Quantity[Q]](lower, upper Q) Range[Q] {
	return Range[Q]{lower: lower, upper: upper}
}

// Lower returns the lower bound.
func (r Range[Q]) Lower() Q {
	return r.lower
}

// Upper returns the upper bound.
func (r Range[Q]) Upper() Q {
	return r.upper
}

// Size returns the width of the range (upper - lower) as a quantity in the
// lower bound's unit.
func (r Range[Q]) Size() Q {
	return FromPrimary(r.lower, ToPrimary(r.upper)-ToPrimary(r.lower))
}

// Contains reports whether q lies within the half-open interval
// [lower, upper).
func (r Range[Q]) Contains(q Q) bool {
	v := ToPrimary(q)
	return v >= ToPrimary(r.lower) && v < ToPrimary(r.upper)
}

// Includes reports whether q lies within the closed interval
// [lower, upper].
func (r Range[Q]) Includes(q Q) bool {
	v := ToPrimary(q)
	return v >= ToPrimary(r.lower) && v <= ToPrimary(r.upper)
}

// ContainsRange reports whether that is completely contained in r under
// half-open semantics: both of that's endpoints must satisfy the
// exclusive-upper policy.
func (r Range[Q]) ContainsRange(that Range[Q]) bool {
	lo, hi := ToPrimary(r.lower), ToPrimary(r.upper)
	tlo, thi := ToPrimary(that.lower), ToPrimary(that.upper)
	return tlo >= lo && tlo < hi && thi > lo && thi <= hi
}

// IncludesRange reports whether that is completely included in r under
// closed-interval semantics.
func (r Range[Q]) IncludesRange(that Range[Q]) bool {
	lo, hi := ToPrimary(r.lower), ToPrimary(r.upper)
	tlo, thi := ToPrimary(that.lower), ToPrimary(that.upper)
	return tlo >= lo && tlo <= hi && thi >= lo && thi <= hi
}

// Overlaps reports whether that intersects r. The test is strict: ranges
// that merely touch at an endpoint do not overlap.
func (r Range[Q]) Overlaps(that Range[Q]) bool {
	return ToPrimary(that.lower) < ToPrimary(r.upper) &&
		ToPrimary(that.upper) > ToPrimary(r.lower)
}

// Shift translates both bounds by the given amount.
func (r Range[Q]) Shift(amount Q) Range[Q] {
	delta := ToPrimary(amount)
	return Range[Q]{
		lower: FromPrimary(r.lower, ToPrimary(r.lower)+delta),
		upper: FromPrimary(r.upper, ToPrimary(r.upper)+delta),
	}
}

// Increment slides the range forward by its own width.
func (r Range[Q]) Increment() Range[Q] {
	return r.Shift(r.Size())
}

// Decrement slides the range backward by its own width.
func (r Range[Q]) Decrement() Range[Q] {
	return r.Shift(Negate(r.Size()))
}

// Expand moves both bounds outward by the given amount on each side.
func (r Range[Q]) Expand(amount Q) Range[Q] {
	delta := ToPrimary(amount)
	return Range[Q]{
		lower: FromPrimary(r.lower, ToPrimary(r.lower)-delta),
		upper: FromPrimary(r.upper, ToPrimary(r.upper)+delta),
	}
}

// Contract moves both bounds inward by the given amount on each side.
// ok is false when the contraction would make lower >= upper.
func (r Range[Q]) Contract(amount Q) (Range[Q], bool) {
	delta := ToPrimary(amount)
	lo := ToPrimary(r.lower) + delta
	hi := ToPrimary(r.upper) - delta
	if lo >= hi {
		return Range[Q]{}, false
	}
	return Range[Q]{
		lower: FromPrimary(r.lower, lo),
		upper: FromPrimary(r.upper, hi),
	}, true
}

// Divide partitions the range into n contiguous sub-ranges of equal
// primary-unit width. n == 0 yields an empty slice. Sub-range bounds keep
// the lower bound's unit.
func (r Range[Q]) Divide(n int) []Range[Q] {
	if n <= 0 {
		return nil
	}
	lo := ToPrimary(r.lower)
	step := (ToPrimary(r.upper) - lo) / float64(n)
	parts := make([]Range[Q], n)
	for i := 0; i < n; i++ {
		parts[i] = Range[Q]{
			lower: FromPrimary(r.lower, lo+step*float64(i)),
			upper: FromPrimary(r.lower, lo+step*float64(i+1)),
		}
	}
	return parts
}

// Tuple returns the range boundaries as a (lower, upper) pair.
func (r Range[Q]) Tuple() (Q, Q) {
	return r.lower, r.upper
}

// Equal reports whether both ranges have the same bounds on the
// primary-unit line, within machine epsilon.
func (r Range[Q]) Equal(that Range[Q]) bool {
	return math.Abs(ToPrimary(r.lower)-ToPrimary(that.lower)) < Epsilon &&
		math.Abs(ToPrimary(r.upper)-ToPrimary(that.upper)) < Epsilon
}

// String renders the range in half-open interval notation.
func (r Range[Q]) String() string {
	return fmt.Sprintf("[%s, %s)", Format(r.lower), Format(r.upper))
}
