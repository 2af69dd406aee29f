package space

import (
	"github.com/teranos/quants/quantity"
)

// VolumeUnit enumerates the units of volume. CubicMeter is primary.
type VolumeUnit int

const (
	CubicMillimeter VolumeUnit = iota
	CubicCentimeter
	CubicMeter
	CubicKilometer
	Milliliter
	Liter
	CubicInch
	CubicFoot
	CubicYard
	UsFluidOunce
	UsCup
	UsPint
	UsQuart
	UsGallon
)

const (
	cubicInchToCubicMeter = 1.6387064e-5
	cubicFootToCubicMeter = 0.028316846592
	cubicYardToCubicMeter = 0.764554857984
	usGallonToCubicMeter  = 0.003785411784
)

var volumeUnits = [...]unitInfo{
	CubicMillimeter: {"mm³", quantity.Milli * quantity.Milli * quantity.Milli, true},
	CubicCentimeter: {"cm³", quantity.Centi * quantity.Centi * quantity.Centi, true},
	CubicMeter:      {"m³", 1.0, true},
	CubicKilometer:  {"km³", quantity.Kilo * quantity.Kilo * quantity.Kilo, true},
	// 1 mL = 1 cm³, 1 L = 1 dm³.
	Milliliter:   {"mL", quantity.Centi * quantity.Centi * quantity.Centi, true},
	Liter:        {"L", quantity.Deci * quantity.Deci * quantity.Deci, true},
	CubicInch:    {"in³", cubicInchToCubicMeter, false},
	CubicFoot:    {"ft³", cubicFootToCubicMeter, false},
	CubicYard:    {"yd³", cubicYardToCubicMeter, false},
	UsFluidOunce: {"fl oz", usGallonToCubicMeter / 128.0, false},
	UsCup:        {"cup", usGallonToCubicMeter / 16.0, false},
	UsPint:       {"pt", usGallonToCubicMeter / 8.0, false},
	UsQuart:      {"qt", usGallonToCubicMeter / 4.0, false},
	UsGallon:     {"gal", usGallonToCubicMeter, false},
}

func (u VolumeUnit) Symbol() string            { return volumeUnits[u].symbol }
func (u VolumeUnit) ConversionFactor() float64 { return volumeUnits[u].factor }
func (u VolumeUnit) SI() bool                  { return volumeUnits[u].si }
func (u VolumeUnit) String() string            { return volumeUnits[u].symbol }

// Volume is a quantity of three-dimensional extent, the product of three
// lengths.
type Volume struct {
	value float64
	unit  VolumeUnit
}

// NewVolume creates a volume quantity.
func NewVolume(value float64, unit VolumeUnit) Volume {
	return Volume{value: value, unit: unit}
}

// CubicMeters creates a volume in cubic meters.
func CubicMeters(value float64) Volume { return NewVolume(value, CubicMeter) }

// Liters creates a volume in liters.
func Liters(value float64) Volume { return NewVolume(value, Liter) }

// UsGallons creates a volume in US gallons.
func UsGallons(value float64) Volume { return NewVolume(value, UsGallon) }

func (v Volume) Value() float64                  { return v.value }
func (v Volume) Unit() VolumeUnit                { return v.unit }
func (v Volume) Measure() quantity.UnitOfMeasure { return v.unit }
func (v Volume) WithValue(value float64) Volume  { return Volume{value: value, unit: v.unit} }
func (v Volume) With(value float64, unit VolumeUnit) Volume {
	return Volume{value: value, unit: unit}
}

// To converts to a magnitude in the target unit.
func (v Volume) To(target VolumeUnit) float64 { return quantity.To(v, target) }

// In returns the volume expressed in the target unit.
func (v Volume) In(target VolumeUnit) Volume { return quantity.In(v, target) }

// Add returns v + that in v's unit.
func (v Volume) Add(that Volume) Volume { return quantity.Add(v, that) }

// Sub returns v - that in v's unit.
func (v Volume) Sub(that Volume) Volume { return quantity.Sub(v, that) }

// Mul scales the volume by a dimensionless factor.
func (v Volume) Mul(factor float64) Volume { return v.WithValue(v.value * factor) }

// Div divides the volume by a dimensionless factor.
func (v Volume) Div(divisor float64) Volume { return v.WithValue(v.value / divisor) }

// Neg returns the volume with its magnitude negated.
func (v Volume) Neg() Volume { return quantity.Negate(v) }

// Equal reports whether both volumes denote the same extent.
func (v Volume) Equal(that Volume) bool { return quantity.Equal(v, that) }

// DivArea returns the length of the prism with this volume over the area.
func (v Volume) DivArea(a Area) Length {
	return Meters(quantity.ToPrimary(v) / quantity.ToPrimary(a))
}

// DivLength returns the cross-sectional area of the prism with this volume
// over the length.
func (v Volume) DivLength(l Length) Area {
	return SquareMeters(quantity.ToPrimary(v) / quantity.ToPrimary(l))
}

func (v Volume) String() string { return quantity.Format(v) }

type volumeDimension struct{}

func (volumeDimension) Name() string            { return "Volume" }
func (volumeDimension) PrimaryUnit() VolumeUnit { return CubicMeter }
func (volumeDimension) SIUnit() VolumeUnit      { return CubicMeter }
func (volumeDimension) Units() []VolumeUnit {
	units := make([]VolumeUnit, len(volumeUnits))
	for i := range units {
		units[i] = VolumeUnit(i)
	}
	return units
}
func (volumeDimension) Make(value float64, unit VolumeUnit) Volume {
	return NewVolume(value, unit)
}

// Volumes is the Volume dimension: unit lookup and parsing.
var Volumes quantity.Dimension[VolumeUnit, Volume] = volumeDimension{}

// ParseVolume reads a volume from its textual form, e.g. "2 L".
func ParseVolume(s string) (Volume, error) { return quantity.Parse(Volumes, s) }
