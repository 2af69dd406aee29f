package thermal

import (
	"github.com/teranos/quants/energy"
	"github.com/teranos/quants/quantity"
)

// CapacityUnit enumerates the units of thermal capacity.
type CapacityUnit int

// JoulePerKelvin is the single thermal capacity unit, primary and SI.
const JoulePerKelvin CapacityUnit = 0

func (u CapacityUnit) Symbol() string            { return "J/K" }
func (u CapacityUnit) ConversionFactor() float64 { return 1.0 }
func (u CapacityUnit) SI() bool                  { return true }
func (u CapacityUnit) String() string            { return u.Symbol() }

// ThermalCapacity is the energy a substance stores per unit of temperature
// change; the same quantity serves as entropy.
type ThermalCapacity struct {
	value float64
	unit  CapacityUnit
}

// NewThermalCapacity creates a thermal capacity quantity.
func NewThermalCapacity(value float64, unit CapacityUnit) ThermalCapacity {
	return ThermalCapacity{value: value, unit: unit}
}

// JoulesPerKelvin creates a thermal capacity in joules per kelvin.
func JoulesPerKelvin(value float64) ThermalCapacity {
	return NewThermalCapacity(value, JoulePerKelvin)
}

func (c ThermalCapacity) Value() float64                  { return c.value }
func (c ThermalCapacity) Unit() CapacityUnit              { return c.unit }
func (c ThermalCapacity) Measure() quantity.UnitOfMeasure { return c.unit }
func (c ThermalCapacity) WithValue(value float64) ThermalCapacity {
	return ThermalCapacity{value: value, unit: c.unit}
}
func (c ThermalCapacity) With(value float64, unit CapacityUnit) ThermalCapacity {
	return ThermalCapacity{value: value, unit: unit}
}

// ToJoulesPerKelvin converts to a magnitude in joules per kelvin.
func (c ThermalCapacity) ToJoulesPerKelvin() float64 { return quantity.ToPrimary(c) }

// Add returns c + that in c's unit.
func (c ThermalCapacity) Add(that ThermalCapacity) ThermalCapacity { return quantity.Add(c, that) }

// Sub returns c - that in c's unit.
func (c ThermalCapacity) Sub(that ThermalCapacity) ThermalCapacity { return quantity.Sub(c, that) }

// Mul scales the capacity by a dimensionless factor.
func (c ThermalCapacity) Mul(factor float64) ThermalCapacity {
	return c.WithValue(c.value * factor)
}

// Div divides the capacity by a dimensionless factor.
func (c ThermalCapacity) Div(divisor float64) ThermalCapacity {
	return c.WithValue(c.value / divisor)
}

// Equal reports whether both capacities denote the same amount.
func (c ThermalCapacity) Equal(that ThermalCapacity) bool { return quantity.Equal(c, that) }

// MulTemperature returns the energy stored at the given temperature, using
// its Kelvin scale value.
func (c ThermalCapacity) MulTemperature(t Temperature) energy.Energy {
	return t.MulCapacity(c)
}

func (c ThermalCapacity) String() string { return quantity.Format(c) }

type capacityDimension struct{}

func (capacityDimension) Name() string              { return "ThermalCapacity" }
func (capacityDimension) PrimaryUnit() CapacityUnit { return JoulePerKelvin }
func (capacityDimension) SIUnit() CapacityUnit      { return JoulePerKelvin }
func (capacityDimension) Units() []CapacityUnit     { return []CapacityUnit{JoulePerKelvin} }
func (capacityDimension) Make(value float64, unit CapacityUnit) ThermalCapacity {
	return NewThermalCapacity(value, unit)
}

// ThermalCapacities is the ThermalCapacity dimension: unit lookup and
// parsing.
var ThermalCapacities quantity.Dimension[CapacityUnit, ThermalCapacity] = capacityDimension{}

// ParseThermalCapacity reads a thermal capacity from its textual form,
// e.g. "4186 J/K".
func ParseThermalCapacity(s string) (ThermalCapacity, error) {
	return quantity.Parse(ThermalCapacities, s)
}
