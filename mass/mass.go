// Package mass provides the Mass quantity with metric, avoirdupois and troy
// units. The gram is the primary unit, matching the historical CGS pivot;
// the SI unit is the kilogram.
package mass

import (
	"github.com/teranos/quants/quantity"
)

// MassUnit enumerates the units of mass. Gram is primary.
type MassUnit int

const (
	Nanogram MassUnit = iota
	Microgram
	Milligram
	Gram
	Kilogram
	Tonne
	Ounce
	Pound
	Kilopound
	Megapound
	Stone
	TroyGrain
	Pennyweight
	TroyOunce
	TroyPound
	Tola
	Carat
	SolarMass
	Dalton
)

const (
	poundToGram     = quantity.Kilo * 0.45359237
	ounceToGram     = poundToGram / 16.0
	troyGrainToGram = 0.06479891
	daltonToGram    = 1.66053906660e-24
)

type unitInfo struct {
	symbol string
	factor float64
	si     bool
}

var massUnits = [...]unitInfo{
	Nanogram:    {"ng", quantity.Nano, true},
	Microgram:   {"mcg", quantity.Micro, true},
	Milligram:   {"mg", quantity.Milli, true},
	Gram:        {"g", 1.0, true},
	Kilogram:    {"kg", quantity.Kilo, true},
	Tonne:       {"t", quantity.Mega, true},
	Ounce:       {"oz", ounceToGram, false},
	Pound:       {"lb", poundToGram, false},
	Kilopound:   {"klb", poundToGram * quantity.Kilo, false},
	Megapound:   {"Mlb", poundToGram * quantity.Mega, false},
	Stone:       {"st", poundToGram * 14.0, false},
	TroyGrain:   {"gr", troyGrainToGram, false},
	Pennyweight: {"dwt", troyGrainToGram * 24.0, false},
	TroyOunce:   {"oz t", troyGrainToGram * 480.0, false},
	TroyPound:   {"lb t", troyGrainToGram * 480.0 * 12.0, false},
	Tola:        {"tola", troyGrainToGram * 180.0, false},
	Carat:       {"ct", quantity.Milli * 200.0, false},
	SolarMass:   {"M☉", 1.98855e33, false},
	Dalton:      {"Da", daltonToGram, false},
}

func (u MassUnit) Symbol() string            { return massUnits[u].symbol }
func (u MassUnit) ConversionFactor() float64 { return massUnits[u].factor }
func (u MassUnit) SI() bool                  { return massUnits[u].si }
func (u MassUnit) String() string            { return massUnits[u].symbol }

// Mass is a quantity of matter.
type Mass struct {
	value float64
	unit  MassUnit
}

// NewMass creates a mass quantity.
func NewMass(value float64, unit MassUnit) Mass {
	return Mass{value: value, unit: unit}
}

// Grams creates a mass in grams.
func Grams(value float64) Mass { return NewMass(value, Gram) }

// Kilograms creates a mass in kilograms.
func Kilograms(value float64) Mass { return NewMass(value, Kilogram) }

// Tonnes creates a mass in metric tonnes.
func Tonnes(value float64) Mass { return NewMass(value, Tonne) }

// Pounds creates a mass in avoirdupois pounds.
func Pounds(value float64) Mass { return NewMass(value, Pound) }

func (m Mass) Value() float64                  { return m.value }
func (m Mass) Unit() MassUnit                  { return m.unit }
func (m Mass) Measure() quantity.UnitOfMeasure { return m.unit }
func (m Mass) WithValue(value float64) Mass    { return Mass{value: value, unit: m.unit} }
func (m Mass) With(value float64, unit MassUnit) Mass {
	return Mass{value: value, unit: unit}
}

// To converts to a magnitude in the target unit.
func (m Mass) To(target MassUnit) float64 { return quantity.To(m, target) }

// In returns the mass expressed in the target unit.
func (m Mass) In(target MassUnit) Mass { return quantity.In(m, target) }

// Add returns m + that in m's unit.
func (m Mass) Add(that Mass) Mass { return quantity.Add(m, that) }

// Sub returns m - that in m's unit.
func (m Mass) Sub(that Mass) Mass { return quantity.Sub(m, that) }

// Mul scales the mass by a dimensionless factor.
func (m Mass) Mul(factor float64) Mass { return m.WithValue(m.value * factor) }

// Div divides the mass by a dimensionless factor.
func (m Mass) Div(divisor float64) Mass { return m.WithValue(m.value / divisor) }

// Neg returns the mass with its magnitude negated.
func (m Mass) Neg() Mass { return quantity.Negate(m) }

// Equal reports whether both masses denote the same amount of matter.
func (m Mass) Equal(that Mass) bool { return quantity.Equal(m, that) }

func (m Mass) String() string { return quantity.Format(m) }

type massDimension struct{}

func (massDimension) Name() string          { return "Mass" }
func (massDimension) PrimaryUnit() MassUnit { return Gram }
func (massDimension) SIUnit() MassUnit      { return Kilogram }
func (massDimension) Units() []MassUnit {
	units := make([]MassUnit, len(massUnits))
	for i := range units {
		units[i] = MassUnit(i)
	}
	return units
}
func (massDimension) Make(value float64, unit MassUnit) Mass {
	return NewMass(value, unit)
}

// Masses is the Mass dimension: unit lookup and parsing.
var Masses quantity.Dimension[MassUnit, Mass] = massDimension{}

// ParseMass reads a mass from its textual form, e.g. "-10.5 kg".
func ParseMass(s string) (Mass, error) { return quantity.Parse(Masses, s) }
