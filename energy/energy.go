// Package energy provides the Energy quantity. The watt-hour is the primary
// unit, reflecting the library's grid-accounting lineage; the SI unit is the
// joule.
package energy

import (
	"github.com/teranos/quants/quantity"
)

// EnergyUnit enumerates the units of energy. WattHour is primary.
type EnergyUnit int

const (
	WattHour EnergyUnit = iota
	MilliwattHour
	KilowattHour
	MegawattHour
	GigawattHour
	Joule
	Millijoule
	Kilojoule
	Megajoule
	Gigajoule
	BritishThermalUnit
	Erg
	Calorie
	Kilocalorie
)

const (
	// Joules are watt-seconds, so 1 Wh = 3600 J.
	jouleToWh = 1.0 / 3600.0
	btuToWh   = 0.2930710701722222
	calToWh   = 4.184 * jouleToWh
)

type unitInfo struct {
	symbol string
	factor float64
	si     bool
}

var energyUnits = [...]unitInfo{
	WattHour:           {"Wh", 1.0, false},
	MilliwattHour:      {"mWh", quantity.Milli, false},
	KilowattHour:       {"kWh", quantity.Kilo, false},
	MegawattHour:       {"MWh", quantity.Mega, false},
	GigawattHour:       {"GWh", quantity.Giga, false},
	Joule:              {"J", jouleToWh, true},
	Millijoule:         {"mJ", jouleToWh * quantity.Milli, true},
	Kilojoule:          {"kJ", jouleToWh * quantity.Kilo, true},
	Megajoule:          {"MJ", jouleToWh * quantity.Mega, true},
	Gigajoule:          {"GJ", jouleToWh * quantity.Giga, true},
	BritishThermalUnit: {"BTU", btuToWh, false},
	Erg:                {"erg", jouleToWh * 1e-7, false},
	Calorie:            {"cal", calToWh, false},
	Kilocalorie:        {"kcal", calToWh * quantity.Kilo, false},
}

func (u EnergyUnit) Symbol() string            { return energyUnits[u].symbol }
func (u EnergyUnit) ConversionFactor() float64 { return energyUnits[u].factor }
func (u EnergyUnit) SI() bool                  { return energyUnits[u].si }
func (u EnergyUnit) String() string            { return energyUnits[u].symbol }

// Energy is a quantity of work or heat.
type Energy struct {
	value float64
	unit  EnergyUnit
}

// NewEnergy creates an energy quantity.
func NewEnergy(value float64, unit EnergyUnit) Energy {
	return Energy{value: value, unit: unit}
}

// WattHours creates an energy in watt-hours.
func WattHours(value float64) Energy { return NewEnergy(value, WattHour) }

// KilowattHours creates an energy in kilowatt-hours.
func KilowattHours(value float64) Energy { return NewEnergy(value, KilowattHour) }

// Joules creates an energy in joules.
func Joules(value float64) Energy { return NewEnergy(value, Joule) }

// Kilojoules creates an energy in kilojoules.
func Kilojoules(value float64) Energy { return NewEnergy(value, Kilojoule) }

func (e Energy) Value() float64                  { return e.value }
func (e Energy) Unit() EnergyUnit                { return e.unit }
func (e Energy) Measure() quantity.UnitOfMeasure { return e.unit }
func (e Energy) WithValue(value float64) Energy  { return Energy{value: value, unit: e.unit} }
func (e Energy) With(value float64, unit EnergyUnit) Energy {
	return Energy{value: value, unit: unit}
}

// To converts to a magnitude in the target unit.
func (e Energy) To(target EnergyUnit) float64 { return quantity.To(e, target) }

// In returns the energy expressed in the target unit.
func (e Energy) In(target EnergyUnit) Energy { return quantity.In(e, target) }

// ToJoules converts to a magnitude in joules.
func (e Energy) ToJoules() float64 { return e.To(Joule) }

// Add returns e + that in e's unit.
func (e Energy) Add(that Energy) Energy { return quantity.Add(e, that) }

// Sub returns e - that in e's unit.
func (e Energy) Sub(that Energy) Energy { return quantity.Sub(e, that) }

// Mul scales the energy by a dimensionless factor.
func (e Energy) Mul(factor float64) Energy { return e.WithValue(e.value * factor) }

// Div divides the energy by a dimensionless factor.
func (e Energy) Div(divisor float64) Energy { return e.WithValue(e.value / divisor) }

// Neg returns the energy with its magnitude negated.
func (e Energy) Neg() Energy { return quantity.Negate(e) }

// Equal reports whether both energies denote the same amount of work.
func (e Energy) Equal(that Energy) bool { return quantity.Equal(e, that) }

func (e Energy) String() string { return quantity.Format(e) }

type energyDimension struct{}

func (energyDimension) Name() string            { return "Energy" }
func (energyDimension) PrimaryUnit() EnergyUnit { return WattHour }
func (energyDimension) SIUnit() EnergyUnit      { return Joule }
func (energyDimension) Units() []EnergyUnit {
	units := make([]EnergyUnit, len(energyUnits))
	for i := range units {
		units[i] = EnergyUnit(i)
	}
	return units
}
func (energyDimension) Make(value float64, unit EnergyUnit) Energy {
	return NewEnergy(value, unit)
}

// Energies is the Energy dimension: unit lookup and parsing.
var Energies quantity.Dimension[EnergyUnit, Energy] = energyDimension{}

// ParseEnergy reads an energy from its textual form, e.g. "1.5 kWh".
func ParseEnergy(s string) (Energy, error) { return quantity.Parse(Energies, s) }
