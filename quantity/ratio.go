package quantity

import "fmt"

// Ratio is a fixed base:counter relationship between two quantities of
// possibly different dimensions (e.g. $3.50 per gallon). It enables
// ratio-preserving conversion in both directions via primary-unit
// arithmetic. A zero-magnitude base or counter makes the corresponding
// conversion yield ±Inf/NaN, propagated rather than trapped.
type Ratio[A Quantity[A], B Quantity[B]] struct {
	base    A
	counter B
}

// NewRatio creates a ratio between two quantities.
func NewRatio[A Quantity[A], B Quantity[B]](base A, counter B) Ratio[A, B] {
	return Ratio[A, B]{base: base, counter: counter}
}

// Base returns the base quantity of the ratio.
func (r Ratio[A, B]) Base() A {
	return r.base
}

// Counter returns the counter quantity of the ratio.
func (r Ratio[A, B]) Counter() B {
	return r.counter
}

// ConvertToBase converts a counter-typed quantity to the base type: for a
// ratio a:b, q maps to (q/b)*a. The result keeps the base's unit.
func (r Ratio[A, B]) ConvertToBase(q B) A {
	fraction := ToPrimary(q) / ToPrimary(r.counter)
	return FromPrimary(r.base, ToPrimary(r.base)*fraction)
}

// ConvertToCounter converts a base-typed quantity to the counter type: for
// a ratio a:b, q maps to (q/a)*b. The result keeps the counter's unit.
func (r Ratio[A, B]) ConvertToCounter(q A) B {
	fraction := ToPrimary(q) / ToPrimary(r.base)
	return FromPrimary(r.counter, ToPrimary(r.counter)*fraction)
}

// Inverse returns the counter:base ratio.
func (r Ratio[A, B]) Inverse() Ratio[B, A] {
	return Ratio[B, A]{base: r.counter, counter: r.base}
}

// String renders the ratio as "base per counter".
func (r Ratio[A, B]) String() string {
	return fmt.Sprintf("%s per %s", Format(r.base), Format(r.counter))
}

// LikeRatio relates two quantities of the same dimension, which makes the
// ratio itself a plain dimensionless number (scale factors, efficiency
// comparisons).
type LikeRatio[A Quantity[A]] struct {
	Ratio[A, A]
}

// NewLikeRatio creates a ratio between two quantities of the same type.
func NewLikeRatio[A Quantity[A]](base, counter A) LikeRatio[A] {
	return LikeRatio[A]{Ratio[A, A]{base: base, counter: counter}}
}

// Value returns the dimensionless ratio base / counter.
func (r LikeRatio[A]) Value() float64 {
	return ToPrimary(r.base) / ToPrimary(r.counter)
}

// InverseValue returns the dimensionless ratio counter / base.
func (r LikeRatio[A]) InverseValue() float64 {
	return ToPrimary(r.counter) / ToPrimary(r.base)
}

// Inverse returns the counter:base like-ratio.
func (r LikeRatio[A]) Inverse() LikeRatio[A] {
	return LikeRatio[A]{Ratio[A, A]{base: r.counter, counter: r.base}}
}

// Rate is the "per" relationship used for derived quantities (velocity is
// length per time). It is a Ratio that emphasizes numerator/denominator
// composition over bidirectional conversion.
type Rate[N Quantity[N], D Quantity[D]] struct {
	numerator   N
	denominator D
}

// NewRate creates a rate of numerator per denominator.
func NewRate[N Quantity[N], D Quantity[D]](numerator N, denominator D) Rate[N, D] {
	return Rate[N, D]{numerator: numerator, denominator: denominator}
}

// Numerator returns the numerator quantity.
func (r Rate[N, D]) Numerator() N {
	return r.numerator
}

// Denominator returns the denominator quantity.
func (r Rate[N, D]) Denominator() D {
	return r.denominator
}

// Value returns the raw primary-unit ratio numerator / denominator.
func (r Rate[N, D]) Value() float64 {
	return ToPrimary(r.numerator) / ToPrimary(r.denominator)
}

// Times scales the numerator by d's fraction of the rate's denominator:
// (N/D) * D = N. The result keeps the numerator's unit.
func (r Rate[N, D]) Times(d D) N {
	fraction := ToPrimary(d) / ToPrimary(r.denominator)
	return FromPrimary(r.numerator, ToPrimary(r.numerator)*fraction)
}

// String renders the rate as "numerator / denominator".
func (r Rate[N, D]) String() string {
	return fmt.Sprintf("%s / %s", Format(r.numerator), Format(r.denominator))
}
