package space

import (
	"github.com/teranos/quants/quantity"
)

// LengthUnit enumerates the units of length. Meter is primary.
type LengthUnit int

const (
	Angstrom LengthUnit = iota
	Nanometer
	Micrometer
	Millimeter
	Centimeter
	Decimeter
	Meter
	Hectometer
	Kilometer
	Inch
	Foot
	Yard
	Mile
	NauticalMile
	AstronomicalUnit
	LightYear
	Parsec
)

const (
	feetToMeters          = 0.3048
	yardsToMeters         = 0.9144
	milesToMeters         = 1609.344
	nauticalMilesToMeters = 1852.0
	auToMeters            = 1.495978707e11
	lightYearToMeters     = 9.4607304725808e15
	parsecToMeters        = 3.08567758149137e16
)

type unitInfo struct {
	symbol string
	factor float64
	si     bool
}

var lengthUnits = [...]unitInfo{
	Angstrom:         {"Å", 100 * quantity.Pico, false},
	Nanometer:        {"nm", quantity.Nano, true},
	Micrometer:       {"µm", quantity.Micro, true},
	Millimeter:       {"mm", quantity.Milli, true},
	Centimeter:       {"cm", quantity.Centi, true},
	Decimeter:        {"dm", quantity.Deci, true},
	Meter:            {"m", 1.0, true},
	Hectometer:       {"hm", quantity.Hecto, true},
	Kilometer:        {"km", quantity.Kilo, true},
	Inch:             {"in", feetToMeters / 12.0, false},
	Foot:             {"ft", feetToMeters, false},
	Yard:             {"yd", yardsToMeters, false},
	Mile:             {"mi", milesToMeters, false},
	NauticalMile:     {"nmi", nauticalMilesToMeters, false},
	AstronomicalUnit: {"au", auToMeters, false},
	LightYear:        {"ly", lightYearToMeters, false},
	Parsec:           {"pc", parsecToMeters, false},
}

func (u LengthUnit) Symbol() string            { return lengthUnits[u].symbol }
func (u LengthUnit) ConversionFactor() float64 { return lengthUnits[u].factor }
func (u LengthUnit) SI() bool                  { return lengthUnits[u].si }
func (u LengthUnit) String() string            { return lengthUnits[u].symbol }

// Length is a quantity of one-dimensional extent.
type Length struct {
	value float64
	unit  LengthUnit
}

// NewLength creates a length quantity.
func NewLength(value float64, unit LengthUnit) Length {
	return Length{value: value, unit: unit}
}

// Meters creates a length in meters.
func Meters(value float64) Length { return NewLength(value, Meter) }

// Kilometers creates a length in kilometers.
func Kilometers(value float64) Length { return NewLength(value, Kilometer) }

// Feet creates a length in feet.
func Feet(value float64) Length { return NewLength(value, Foot) }

// Miles creates a length in miles.
func Miles(value float64) Length { return NewLength(value, Mile) }

func (l Length) Value() float64                   { return l.value }
func (l Length) Unit() LengthUnit                 { return l.unit }
func (l Length) Measure() quantity.UnitOfMeasure  { return l.unit }
func (l Length) WithValue(value float64) Length   { return Length{value: value, unit: l.unit} }
func (l Length) With(value float64, unit LengthUnit) Length {
	return Length{value: value, unit: unit}
}

// To converts to a magnitude in the target unit.
func (l Length) To(target LengthUnit) float64 { return quantity.To(l, target) }

// In returns the length expressed in the target unit.
func (l Length) In(target LengthUnit) Length { return quantity.In(l, target) }

// Add returns l + that in l's unit.
func (l Length) Add(that Length) Length { return quantity.Add(l, that) }

// Sub returns l - that in l's unit.
func (l Length) Sub(that Length) Length { return quantity.Sub(l, that) }

// Mul scales the length by a dimensionless factor.
func (l Length) Mul(factor float64) Length { return l.WithValue(l.value * factor) }

// Div divides the length by a dimensionless factor.
func (l Length) Div(divisor float64) Length { return l.WithValue(l.value / divisor) }

// Neg returns the length with its magnitude negated.
func (l Length) Neg() Length { return quantity.Negate(l) }

// Equal reports whether both lengths denote the same extent.
func (l Length) Equal(that Length) bool { return quantity.Equal(l, that) }

// MulLength returns the rectangular area spanned by the two lengths.
func (l Length) MulLength(that Length) Area {
	return SquareMeters(quantity.ToPrimary(l) * quantity.ToPrimary(that))
}

// MulArea returns the prismatic volume of the length over the area.
func (l Length) MulArea(a Area) Volume {
	return CubicMeters(quantity.ToPrimary(l) * quantity.ToPrimary(a))
}

func (l Length) String() string { return quantity.Format(l) }

type lengthDimension struct{}

func (lengthDimension) Name() string            { return "Length" }
func (lengthDimension) PrimaryUnit() LengthUnit { return Meter }
func (lengthDimension) SIUnit() LengthUnit      { return Meter }
func (lengthDimension) Units() []LengthUnit {
	units := make([]LengthUnit, len(lengthUnits))
	for i := range units {
		units[i] = LengthUnit(i)
	}
	return units
}
func (lengthDimension) Make(value float64, unit LengthUnit) Length {
	return NewLength(value, unit)
}

// Lengths is the Length dimension: unit lookup and parsing.
var Lengths quantity.Dimension[LengthUnit, Length] = lengthDimension{}

// ParseLength reads a length from its textual form, e.g. "10 m" or "3.5km".
func ParseLength(s string) (Length, error) { return quantity.Parse(Lengths, s) }
