package quantity

import (
	"fmt"
	"math"
)

// Quantity is the contract every measurable value type satisfies. It is
// self-referential: Q is the implementing type itself, so derived
// operations return concrete quantities rather than boxed interfaces.
//
// A quantity is an immutable (value, unit) pair. Implementations supply
// only these three accessors; the whole derived algebra (conversion,
// comparison, rounding, ranges, ratios) lives in this package.
type Quantity[Q any] interface {
	// Value returns the numeric magnitude in the quantity's own unit.
	Value() float64

	// Measure returns the quantity's unit metadata.
	Measure() UnitOfMeasure

	// WithValue returns a new quantity with the same unit and the given
	// magnitude.
	WithValue(value float64) Q
}

// EnumUnit constrains typed unit parameters: an enumerated, comparable
// unit value type.
type EnumUnit interface {
	comparable
	UnitOfMeasure
}

// Unitful extends Quantity with typed unit access for quantity types whose
// unit is an enumerated value type U. It powers the unit-targeted
// operations To, In and TupleIn.
type Unitful[Q any, U EnumUnit] interface {
	Quantity[Q]

	// Unit returns the quantity's unit.
	Unit() U

	// With returns a new quantity with the given magnitude and unit.
	With(value float64, unit U) Q
}

// ToPrimary returns q's magnitude converted to the primary unit.
func ToPrimary[Q Quantity[Q]](q Q) float64 {
	return UnitToPrimary(q.Measure(), q.Value())
}

// FromPrimary returns a quantity in q's unit whose magnitude equals the
// given primary-unit value.
func FromPrimary[Q Quantity[Q]](q Q, primary float64) Q {
	return q.WithValue(UnitFromPrimary(q.Measure(), primary))
}

// To converts q to a magnitude in the target unit.
func To[U EnumUnit, Q Unitful[Q, U]](q Q, target U) float64 {
	if q.Unit() == target {
		return q.Value()
	}
	return ConvertBetween(q.Unit(), target, q.Value())
}

// In returns q expressed in the target unit.
func In[U EnumUnit, Q Unitful[Q, U]](q Q, target U) Q {
	if q.Unit() == target {
		return q
	}
	return q.With(To(q, target), target)
}

// Negate returns q with its magnitude negated.
func Negate[Q Quantity[Q]](q Q) Q {
	return q.WithValue(-q.Value())
}

// Abs returns q with the absolute magnitude.
func Abs[Q Quantity[Q]](q Q) Q {
	return q.WithValue(math.Abs(q.Value()))
}

// Ceil returns q with the magnitude rounded up to an integer.
func Ceil[Q Quantity[Q]](q Q) Q {
	return q.WithValue(math.Ceil(q.Value()))
}

// Floor returns q with the magnitude rounded down to an integer.
func Floor[Q Quantity[Q]](q Q) Q {
	return q.WithValue(math.Floor(q.Value()))
}

// Round returns q with the magnitude rounded to the nearest integer.
func Round[Q Quantity[Q]](q Q) Q {
	return q.WithValue(math.Round(q.Value()))
}

// Map applies f to q's magnitude, unit unchanged.
func Map[Q Quantity[Q]](q Q, f func(float64) float64) Q {
	return q.WithValue(f(q.Value()))
}

// Compare orders two quantities by their primary-unit magnitudes. Returns
// -1, 0 or +1. Non-orderable float results (NaN on either side) collapse
// to 0 rather than erroring; callers needing stricter semantics must check
// for NaN beforehand.
func Compare[Q Quantity[Q]](a, b Q) int {
	pa, pb := ToPrimary(a), ToPrimary(b)
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		return 0
	}
}

// Max returns the larger of a and b, expressed in a's unit so chained
// arithmetic keeps a stable unit.
func Max[Q Quantity[Q]](a, b Q) Q {
	if Compare(a, b) > 0 {
		return a
	}
	return FromPrimary(a, ToPrimary(b))
}

// Min returns the smaller of a and b, expressed in a's unit.
func Min[Q Quantity[Q]](a, b Q) Q {
	if Compare(a, b) < 0 {
		return a
	}
	return FromPrimary(a, ToPrimary(b))
}

// Add returns a + b, expressed in a's unit.
func Add[Q Quantity[Q]](a, b Q) Q {
	return FromPrimary(a, ToPrimary(a)+ToPrimary(b))
}

// Sub returns a - b, expressed in a's unit.
func Sub[Q Quantity[Q]](a, b Q) Q {
	return FromPrimary(a, ToPrimary(a)-ToPrimary(b))
}

// Div returns the dimensionless ratio a / b computed in primary units.
// A zero-magnitude divisor yields ±Inf or NaN, propagated untouched.
func Div[Q Quantity[Q]](a, b Q) float64 {
	return ToPrimary(a) / ToPrimary(b)
}

// Equal reports whether a and b denote the same physical amount: equal
// primary-unit magnitudes within machine epsilon. Two representations of
// one amount in different units are equal.
func Equal[Q Quantity[Q]](a, b Q) bool {
	return math.Abs(ToPrimary(a)-ToPrimary(b)) < Epsilon
}

// ApproxEq reports whether a and b are within the given tolerance,
// all compared in primary units.
func ApproxEq[Q Quantity[Q]](a, b, tolerance Q) bool {
	return math.Abs(ToPrimary(a)-ToPrimary(b)) <= math.Abs(ToPrimary(tolerance))
}

// defaultTolerance is the absolute primary-unit tolerance used by
// ApproxEqDefault.
const defaultTolerance = 1e-10

// ApproxEqDefault reports whether a and b are within 1e-10 primary units.
func ApproxEqDefault[Q Quantity[Q]](a, b Q) bool {
	return math.Abs(ToPrimary(a)-ToPrimary(b)) <= defaultTolerance
}

// Tuple returns q as a (value, symbol) pair for display.
func Tuple[Q Quantity[Q]](q Q) (float64, string) {
	return q.Value(), q.Measure().Symbol()
}

// TupleIn returns q as a (value, symbol) pair in the target unit.
func TupleIn[U EnumUnit, Q Unitful[Q, U]](q Q, target U) (float64, string) {
	return To(q, target), target.Symbol()
}

// Format renders q as "<value> <symbol>", the textual form Parse accepts.
func Format[Q Quantity[Q]](q Q) string {
	return fmt.Sprintf("%v %s", q.Value(), q.Measure().Symbol())
}
