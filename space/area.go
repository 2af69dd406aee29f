package space

import (
	"github.com/teranos/quants/quantity"
)

// AreaUnit enumerates the units of area. SquareMeter is primary.
type AreaUnit int

const (
	SquareMillimeter AreaUnit = iota
	SquareCentimeter
	SquareMeter
	SquareKilometer
	Hectare
	SquareInch
	SquareFoot
	SquareYard
	SquareMile
	Acre
)

const (
	sqInchToSqMeter = 0.00064516
	sqFootToSqMeter = 0.09290304
	sqYardToSqMeter = 0.83612736
	sqMileToSqMeter = 2589988.110336
	acreToSqMeter   = 4046.8564224
)

var areaUnits = [...]unitInfo{
	SquareMillimeter: {"mm²", quantity.Milli * quantity.Milli, true},
	SquareCentimeter: {"cm²", quantity.Centi * quantity.Centi, true},
	SquareMeter:      {"m²", 1.0, true},
	SquareKilometer:  {"km²", quantity.Kilo * quantity.Kilo, true},
	Hectare:          {"ha", quantity.Hecto * quantity.Hecto, true},
	SquareInch:       {"in²", sqInchToSqMeter, false},
	SquareFoot:       {"ft²", sqFootToSqMeter, false},
	SquareYard:       {"yd²", sqYardToSqMeter, false},
	SquareMile:       {"mi²", sqMileToSqMeter, false},
	Acre:             {"ac", acreToSqMeter, false},
}

func (u AreaUnit) Symbol() string            { return areaUnits[u].symbol }
func (u AreaUnit) ConversionFactor() float64 { return areaUnits[u].factor }
func (u AreaUnit) SI() bool                  { return areaUnits[u].si }
func (u AreaUnit) String() string            { return areaUnits[u].symbol }

// Area is a quantity of two-dimensional extent, the product of two lengths.
type Area struct {
	value float64
	unit  AreaUnit
}

// NewArea creates an area quantity.
func NewArea(value float64, unit AreaUnit) Area {
	return Area{value: value, unit: unit}
}

// SquareMeters creates an area in square meters.
func SquareMeters(value float64) Area { return NewArea(value, SquareMeter) }

// Hectares creates an area in hectares.
func Hectares(value float64) Area { return NewArea(value, Hectare) }

// Acres creates an area in acres.
func Acres(value float64) Area { return NewArea(value, Acre) }

func (a Area) Value() float64                  { return a.value }
func (a Area) Unit() AreaUnit                  { return a.unit }
func (a Area) Measure() quantity.UnitOfMeasure { return a.unit }
func (a Area) WithValue(value float64) Area    { return Area{value: value, unit: a.unit} }
func (a Area) With(value float64, unit AreaUnit) Area {
	return Area{value: value, unit: unit}
}

// To converts to a magnitude in the target unit.
func (a Area) To(target AreaUnit) float64 { return quantity.To(a, target) }

// In returns the area expressed in the target unit.
func (a Area) In(target AreaUnit) Area { return quantity.In(a, target) }

// Add returns a + that in a's unit.
func (a Area) Add(that Area) Area { return quantity.Add(a, that) }

// Sub returns a - that in a's unit.
func (a Area) Sub(that Area) Area { return quantity.Sub(a, that) }

// Mul scales the area by a dimensionless factor.
func (a Area) Mul(factor float64) Area { return a.WithValue(a.value * factor) }

// Div divides the area by a dimensionless factor.
func (a Area) Div(divisor float64) Area { return a.WithValue(a.value / divisor) }

// Neg returns the area with its magnitude negated.
func (a Area) Neg() Area { return quantity.Negate(a) }

// Equal reports whether both areas denote the same extent.
func (a Area) Equal(that Area) bool { return quantity.Equal(a, that) }

// MulLength returns the prismatic volume of the area over the length.
func (a Area) MulLength(l Length) Volume {
	return CubicMeters(quantity.ToPrimary(a) * quantity.ToPrimary(l))
}

// DivLength returns the length that spans this area over the given length.
func (a Area) DivLength(l Length) Length {
	return Meters(quantity.ToPrimary(a) / quantity.ToPrimary(l))
}

func (a Area) String() string { return quantity.Format(a) }

type areaDimension struct{}

func (areaDimension) Name() string          { return "Area" }
func (areaDimension) PrimaryUnit() AreaUnit { return SquareMeter }
func (areaDimension) SIUnit() AreaUnit      { return SquareMeter }
func (areaDimension) Units() []AreaUnit {
	units := make([]AreaUnit, len(areaUnits))
	for i := range units {
		units[i] = AreaUnit(i)
	}
	return units
}
func (areaDimension) Make(value float64, unit AreaUnit) Area {
	return NewArea(value, unit)
}

// Areas is the Area dimension: unit lookup and parsing.
var Areas quantity.Dimension[AreaUnit, Area] = areaDimension{}

// ParseArea reads an area from its textual form, e.g. "100 m²".
func ParseArea(s string) (Area, error) { return quantity.Parse(Areas, s) }
