// Package motion provides kinematic quantities derived from space and
// chrono. Velocity is declared here rather than in either source package so
// the Length / Time = Velocity relationship has a single home.
package motion

import (
	"github.com/teranos/quants/chrono"
	"github.com/teranos/quants/quantity"
	"github.com/teranos/quants/space"
)

// VelocityUnit enumerates the units of velocity. MeterPerSecond is primary.
type VelocityUnit int

const (
	MeterPerSecond VelocityUnit = iota
	MillimeterPerSecond
	KilometerPerSecond
	KilometerPerHour
	FootPerSecond
	MilePerHour
	Knot
)

const (
	secondsPerHour = 3600.0
	footToMeters   = 0.3048
	milesToMeters  = 1609.344
	nmiToMeters    = 1852.0
)

type unitInfo struct {
	symbol string
	factor float64
	si     bool
}

var velocityUnits = [...]unitInfo{
	MeterPerSecond:      {"m/s", 1.0, true},
	MillimeterPerSecond: {"mm/s", quantity.Milli, true},
	KilometerPerSecond:  {"km/s", quantity.Kilo, true},
	KilometerPerHour:    {"km/h", quantity.Kilo / secondsPerHour, true},
	FootPerSecond:       {"ft/s", footToMeters, false},
	MilePerHour:         {"mph", milesToMeters / secondsPerHour, false},
	Knot:                {"kn", nmiToMeters / secondsPerHour, false},
}

func (u VelocityUnit) Symbol() string            { return velocityUnits[u].symbol }
func (u VelocityUnit) ConversionFactor() float64 { return velocityUnits[u].factor }
func (u VelocityUnit) SI() bool                  { return velocityUnits[u].si }
func (u VelocityUnit) String() string            { return velocityUnits[u].symbol }

// Velocity is a quantity of speed: length covered per unit of time.
type Velocity struct {
	value float64
	unit  VelocityUnit
}

// NewVelocity creates a velocity quantity.
func NewVelocity(value float64, unit VelocityUnit) Velocity {
	return Velocity{value: value, unit: unit}
}

// MetersPerSecond creates a velocity in meters per second.
func MetersPerSecond(value float64) Velocity { return NewVelocity(value, MeterPerSecond) }

// KilometersPerHour creates a velocity in kilometers per hour.
func KilometersPerHour(value float64) Velocity { return NewVelocity(value, KilometerPerHour) }

// MilesPerHour creates a velocity in miles per hour.
func MilesPerHour(value float64) Velocity { return NewVelocity(value, MilePerHour) }

// Knots creates a velocity in knots.
func Knots(value float64) Velocity { return NewVelocity(value, Knot) }

// Over returns the velocity of covering the given length in the given time.
func Over(distance space.Length, duration chrono.Time) Velocity {
	return MetersPerSecond(quantity.ToPrimary(distance) / quantity.ToPrimary(duration))
}

func (v Velocity) Value() float64                   { return v.value }
func (v Velocity) Unit() VelocityUnit               { return v.unit }
func (v Velocity) Measure() quantity.UnitOfMeasure  { return v.unit }
func (v Velocity) WithValue(value float64) Velocity { return Velocity{value: value, unit: v.unit} }
func (v Velocity) With(value float64, unit VelocityUnit) Velocity {
	return Velocity{value: value, unit: unit}
}

// To converts to a magnitude in the target unit.
func (v Velocity) To(target VelocityUnit) float64 { return quantity.To(v, target) }

// In returns the velocity expressed in the target unit.
func (v Velocity) In(target VelocityUnit) Velocity { return quantity.In(v, target) }

// Add returns v + that in v's unit.
func (v Velocity) Add(that Velocity) Velocity { return quantity.Add(v, that) }

// Sub returns v - that in v's unit.
func (v Velocity) Sub(that Velocity) Velocity { return quantity.Sub(v, that) }

// Mul scales the velocity by a dimensionless factor.
func (v Velocity) Mul(factor float64) Velocity { return v.WithValue(v.value * factor) }

// Div divides the velocity by a dimensionless factor.
func (v Velocity) Div(divisor float64) Velocity { return v.WithValue(v.value / divisor) }

// Neg returns the velocity with its magnitude negated.
func (v Velocity) Neg() Velocity { return quantity.Negate(v) }

// Equal reports whether both velocities denote the same speed.
func (v Velocity) Equal(that Velocity) bool { return quantity.Equal(v, that) }

// Times returns the length covered at this velocity over the given time.
func (v Velocity) Times(duration chrono.Time) space.Length {
	return space.Meters(quantity.ToPrimary(v) * quantity.ToPrimary(duration))
}

// TimeTo returns how long covering the given length takes at this velocity.
func (v Velocity) TimeTo(distance space.Length) chrono.Time {
	return chrono.Seconds(quantity.ToPrimary(distance) / quantity.ToPrimary(v))
}

func (v Velocity) String() string { return quantity.Format(v) }

type velocityDimension struct{}

func (velocityDimension) Name() string              { return "Velocity" }
func (velocityDimension) PrimaryUnit() VelocityUnit { return MeterPerSecond }
func (velocityDimension) SIUnit() VelocityUnit      { return MeterPerSecond }
func (velocityDimension) Units() []VelocityUnit {
	units := make([]VelocityUnit, len(velocityUnits))
	for i := range units {
		units[i] = VelocityUnit(i)
	}
	return units
}
func (velocityDimension) Make(value float64, unit VelocityUnit) Velocity {
	return NewVelocity(value, unit)
}

// Velocities is the Velocity dimension: unit lookup and parsing.
var Velocities quantity.Dimension[VelocityUnit, Velocity] = velocityDimension{}

// ParseVelocity reads a velocity from its textual form, e.g. "60 km/h".
func ParseVelocity(s string) (Velocity, error) { return quantity.Parse(Velocities, s) }
