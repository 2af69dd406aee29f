package quantity

import "math"

// Epsilon is the float64 machine epsilon, the tolerance used when deciding
// whether a conversion factor is exactly 1.0.
const Epsilon = 2.220446049250313e-16

// UnitOfMeasure describes one unit within a dimension: its display symbol
// and the multiplicative factor that converts a magnitude expressed in this
// unit into the dimension's primary unit.
//
// Units are implemented as small comparable value types (typed constants
// with a detail table). Factors are compile-time data: finite, non-zero,
// with exactly one unit per dimension carrying factor 1.0.
type UnitOfMeasure interface {
	// Symbol returns the unit symbol (e.g. "m", "kg", "°C").
	Symbol() string

	// ConversionFactor returns the factor relative to the primary unit.
	// The primary unit has a conversion factor of 1.0.
	ConversionFactor() float64
}

// PrimaryConverter is implemented by units whose mapping to the primary
// unit is not a plain scale factor. Temperature scales are the one case:
// their zero points differ, so converting a reading to the primary (Kelvin)
// scale needs an offset, not just a factor. All generic helpers check for
// this upgrade before falling back to factor arithmetic.
type PrimaryConverter interface {
	// ToPrimary converts a magnitude in this unit to the primary unit.
	ToPrimary(value float64) float64

	// FromPrimary converts a magnitude in the primary unit to this unit.
	FromPrimary(value float64) float64
}

// siTagged is implemented by units that know whether they belong to the SI
// system. Units without the method report false.
type siTagged interface {
	SI() bool
}

// UnitToPrimary converts a magnitude expressed in u to the primary unit.
func UnitToPrimary(u UnitOfMeasure, value float64) float64 {
	if c, ok := u.(PrimaryConverter); ok {
		return c.ToPrimary(value)
	}
	return value * u.ConversionFactor()
}

// UnitFromPrimary converts a magnitude expressed in the primary unit to u.
func UnitFromPrimary(u UnitOfMeasure, value float64) float64 {
	if c, ok := u.(PrimaryConverter); ok {
		return c.FromPrimary(value)
	}
	return value / u.ConversionFactor()
}

// ConvertBetween converts a magnitude from one unit to another of the same
// dimension, pivoting through the primary unit.
func ConvertBetween(from, to UnitOfMeasure, value float64) float64 {
	return UnitFromPrimary(to, UnitToPrimary(from, value))
}

// IsPrimary reports whether u is the primary (reference) unit of its
// dimension, i.e. its conversion factor is 1.0.
func IsPrimary(u UnitOfMeasure) bool {
	return math.Abs(u.ConversionFactor()-1.0) < Epsilon
}

// IsSI reports whether u is tagged as an SI unit.
func IsSI(u UnitOfMeasure) bool {
	if t, ok := u.(siTagged); ok {
		return t.SI()
	}
	return false
}
