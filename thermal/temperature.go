// Package thermal provides Temperature and ThermalCapacity.
//
// Temperature is the irregular quantity: its scales disagree on where zero
// sits, so a reading cannot be converted with a bare factor. Two conversion
// modes exist, selected per call:
//
//   - Scale conversion (ToScale, InScale): a thermometer reading, adjusted
//     for each scale's zero offset.
//   - Degree conversion (ToKelvinDegrees etc.): a temperature difference,
//     rescaled by degree size only.
//
// Addition and subtraction treat the right operand as a degree delta, so
// subtracting 5°C from 100°F means "drop by five Celsius-sized degrees",
// giving 91°F.
package thermal

import (
	"fmt"
	"math"

	"github.com/teranos/quants/energy"
	"github.com/teranos/quants/quantity"
)

// Scale enumerates the temperature scales. Kelvin is primary.
type Scale int

const (
	Kelvin Scale = iota
	Celsius
	Fahrenheit
	Rankine
)

type scaleInfo struct {
	symbol string
	// degreeSize is the size of one degree in kelvins; it doubles as the
	// conversion factor for degree (difference) arithmetic.
	degreeSize float64
	si         bool
}

var scales = [...]scaleInfo{
	Kelvin:     {"K", 1.0, true},
	Celsius:    {"°C", 1.0, false},
	Fahrenheit: {"°F", 5.0 / 9.0, false},
	Rankine:    {"°R", 5.0 / 9.0, false},
}

func (s Scale) Symbol() string            { return scales[s].symbol }
func (s Scale) ConversionFactor() float64 { return scales[s].degreeSize }
func (s Scale) SI() bool                  { return scales[s].si }
func (s Scale) String() string            { return scales[s].symbol }

// ToPrimary converts a reading on this scale to the Kelvin scale. Together
// with FromPrimary it makes Scale offset-aware wherever the generic
// machinery pivots through the primary unit, so ranges, ratios and ordering
// over Temperature stay correct.
func (s Scale) ToPrimary(value float64) float64 {
	return convertScale(value, s, Kelvin)
}

// FromPrimary converts a Kelvin-scale reading to this scale.
func (s Scale) FromPrimary(value float64) float64 {
	return convertScale(value, Kelvin, s)
}

type scalePair struct {
	from, to Scale
}

// scaleTable holds the twelve ordered-pair thermometer-reading formulas.
// Kelvin↔Rankine and the degree tables are pure factors; every pair
// touching Celsius or Fahrenheit also moves the zero point.
var scaleTable map[scalePair]func(float64) float64

// degreeTable holds the difference formulas: degree-size rescaling only.
var degreeTable map[scalePair]func(float64) float64

func init() {
	identity := func(v float64) float64 { return v }
	cToF := func(v float64) float64 { return v * 9.0 / 5.0 }
	fToC := func(v float64) float64 { return v * 5.0 / 9.0 }

	scaleTable = map[scalePair]func(float64) float64{
		{Celsius, Fahrenheit}: func(v float64) float64 { return v*9.0/5.0 + 32.0 },
		{Fahrenheit, Celsius}: func(v float64) float64 { return (v - 32.0) * 5.0 / 9.0 },
		{Celsius, Kelvin}:     func(v float64) float64 { return v + 273.15 },
		{Kelvin, Celsius}:     func(v float64) float64 { return v - 273.15 },
		{Fahrenheit, Kelvin}:  func(v float64) float64 { return (v + 459.67) * 5.0 / 9.0 },
		{Kelvin, Fahrenheit}:  func(v float64) float64 { return v*9.0/5.0 - 459.67 },
		{Kelvin, Rankine}:     cToF,
		{Rankine, Kelvin}:     fToC,
		{Celsius, Rankine}:    func(v float64) float64 { return (v + 273.15) * 9.0 / 5.0 },
		{Rankine, Celsius}:    func(v float64) float64 { return (v - 491.67) * 5.0 / 9.0 },
		{Fahrenheit, Rankine}: func(v float64) float64 { return v + 459.67 },
		{Rankine, Fahrenheit}: func(v float64) float64 { return v - 459.67 },
	}

	degreeTable = map[scalePair]func(float64) float64{
		{Celsius, Fahrenheit}: cToF,
		{Fahrenheit, Celsius}: fToC,
		{Celsius, Kelvin}:     identity,
		{Kelvin, Celsius}:     identity,
		{Fahrenheit, Kelvin}:  fToC,
		{Kelvin, Fahrenheit}:  cToF,
		{Kelvin, Rankine}:     cToF,
		{Rankine, Kelvin}:     fToC,
		{Celsius, Rankine}:    cToF,
		{Rankine, Celsius}:    fToC,
		{Fahrenheit, Rankine}: identity,
		{Rankine, Fahrenheit}: identity,
	}
}

func convertScale(value float64, from, to Scale) float64 {
	if from == to {
		return value
	}
	return scaleTable[scalePair{from, to}](value)
}

func convertDegrees(value float64, from, to Scale) float64 {
	if from == to {
		return value
	}
	return degreeTable[scalePair{from, to}](value)
}

// Temperature is a thermometer reading on one of the four scales.
type Temperature struct {
	value float64
	scale Scale
}

// NewTemperature creates a temperature reading on the given scale.
func NewTemperature(value float64, scale Scale) Temperature {
	return Temperature{value: value, scale: scale}
}

func (t Temperature) Value() float64                  { return t.value }
func (t Temperature) Scale() Scale                    { return t.scale }
func (t Temperature) Unit() Scale                     { return t.scale }
func (t Temperature) Measure() quantity.UnitOfMeasure { return t.scale }
func (t Temperature) WithValue(value float64) Temperature {
	return Temperature{value: value, scale: t.scale}
}
func (t Temperature) With(value float64, scale Scale) Temperature {
	return Temperature{value: value, scale: scale}
}

// ToScale converts the reading to the target scale, adjusting for zero
// offsets.
func (t Temperature) ToScale(target Scale) float64 {
	return convertScale(t.value, t.scale, target)
}

// InScale returns the reading expressed on the target scale.
func (t Temperature) InScale(target Scale) Temperature {
	return Temperature{value: t.ToScale(target), scale: target}
}

// ToKelvinScale converts the reading to the Kelvin scale.
func (t Temperature) ToKelvinScale() float64 { return t.ToScale(Kelvin) }

// ToCelsiusScale converts the reading to the Celsius scale.
func (t Temperature) ToCelsiusScale() float64 { return t.ToScale(Celsius) }

// ToFahrenheitScale converts the reading to the Fahrenheit scale.
func (t Temperature) ToFahrenheitScale() float64 { return t.ToScale(Fahrenheit) }

// ToRankineScale converts the reading to the Rankine scale.
func (t Temperature) ToRankineScale() float64 { return t.ToScale(Rankine) }

// InKelvin returns the reading expressed in Kelvin.
func (t Temperature) InKelvin() Temperature { return t.InScale(Kelvin) }

// InCelsius returns the reading expressed in Celsius.
func (t Temperature) InCelsius() Temperature { return t.InScale(Celsius) }

// InFahrenheit returns the reading expressed in Fahrenheit.
func (t Temperature) InFahrenheit() Temperature { return t.InScale(Fahrenheit) }

// InRankine returns the reading expressed in Rankine.
func (t Temperature) InRankine() Temperature { return t.InScale(Rankine) }

// ToKelvinDegrees converts the value as a temperature difference, ignoring
// zero offsets.
func (t Temperature) ToKelvinDegrees() float64 {
	return convertDegrees(t.value, t.scale, Kelvin)
}

// ToCelsiusDegrees converts the value as a temperature difference.
func (t Temperature) ToCelsiusDegrees() float64 {
	return convertDegrees(t.value, t.scale, Celsius)
}

// ToFahrenheitDegrees converts the value as a temperature difference.
func (t Temperature) ToFahrenheitDegrees() float64 {
	return convertDegrees(t.value, t.scale, Fahrenheit)
}

// ToRankineDegrees converts the value as a temperature difference.
func (t Temperature) ToRankineDegrees() float64 {
	return convertDegrees(t.value, t.scale, Rankine)
}

// ToDegrees converts the value to the target scale as a temperature
// difference, rescaling by degree size only.
func (t Temperature) ToDegrees(target Scale) float64 {
	return convertDegrees(t.value, t.scale, target)
}

// Add treats the right operand as a degree delta: it is converted with the
// degree table and added to t's raw value. The result keeps t's scale.
func (t Temperature) Add(delta Temperature) Temperature {
	return t.WithValue(t.value + convertDegrees(delta.value, delta.scale, t.scale))
}

// Sub treats the right operand as a degree delta, like Add.
func (t Temperature) Sub(delta Temperature) Temperature {
	return t.WithValue(t.value - convertDegrees(delta.value, delta.scale, t.scale))
}

// Mul scales the reading's raw value by a dimensionless factor.
func (t Temperature) Mul(factor float64) Temperature { return t.WithValue(t.value * factor) }

// Div divides the reading's raw value by a dimensionless factor.
func (t Temperature) Div(divisor float64) Temperature { return t.WithValue(t.value / divisor) }

// Neg returns the reading with its raw value negated.
func (t Temperature) Neg() Temperature { return t.WithValue(-t.value) }

// Equal compares both readings on the Kelvin scale with a relative
// tolerance, because scale round-trips add and subtract offsets and
// accumulate more error than plain factor conversions.
func (t Temperature) Equal(that Temperature) bool {
	a, b := t.ToKelvinScale(), that.ToKelvinScale()
	maxAbs := math.Max(math.Max(math.Abs(a), math.Abs(b)), 1.0)
	return math.Abs(a-b) < maxAbs*1e-12
}

// Compare orders two readings on the Kelvin scale. Returns -1, 0 or +1;
// NaN on either side collapses to 0.
func (t Temperature) Compare(that Temperature) int {
	a, b := t.ToKelvinScale(), that.ToKelvinScale()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MulCapacity returns the energy stored by the given thermal capacity at
// this temperature, using the Kelvin scale value.
func (t Temperature) MulCapacity(c ThermalCapacity) energy.Energy {
	return energy.Joules(t.ToKelvinScale() * c.ToJoulesPerKelvin())
}

// String renders Kelvin readings with a space ("300 K") and degree scales
// without one ("100°C").
func (t Temperature) String() string {
	if t.scale == Kelvin {
		return fmt.Sprintf("%v %s", t.value, t.scale.Symbol())
	}
	return fmt.Sprintf("%v%s", t.value, t.scale.Symbol())
}

type temperatureDimension struct{}

func (temperatureDimension) Name() string       { return "Temperature" }
func (temperatureDimension) PrimaryUnit() Scale { return Kelvin }
func (temperatureDimension) SIUnit() Scale      { return Kelvin }
func (temperatureDimension) Units() []Scale {
	return []Scale{Kelvin, Celsius, Fahrenheit, Rankine}
}
func (temperatureDimension) Make(value float64, scale Scale) Temperature {
	return NewTemperature(value, scale)
}

// Temperatures is the Temperature dimension: scale lookup and parsing.
var Temperatures quantity.Dimension[Scale, Temperature] = temperatureDimension{}

// ParseTemperature reads a temperature from its textual form, e.g. "300 K"
// or "100°C".
func ParseTemperature(s string) (Temperature, error) {
	return quantity.Parse(Temperatures, s)
}
