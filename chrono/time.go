// Package chrono provides the Time quantity: elapsed durations from
// nanoseconds to days, with conversion to and from the standard library's
// time.Duration.
package chrono

import (
	stdtime "time"

	"github.com/teranos/quants/quantity"
)

// TimeUnit enumerates the units of time. Second is primary.
type TimeUnit int

const (
	Nanosecond TimeUnit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
)

const (
	secondsPerMinute = 60.0
	secondsPerHour   = 3600.0
	secondsPerDay    = 86400.0
)

type unitInfo struct {
	symbol string
	factor float64
	si     bool
}

var timeUnits = [...]unitInfo{
	Nanosecond:  {"ns", quantity.Nano, true},
	Microsecond: {"µs", quantity.Micro, true},
	Millisecond: {"ms", quantity.Milli, true},
	Second:      {"s", 1.0, true},
	Minute:      {"min", secondsPerMinute, false},
	Hour:        {"h", secondsPerHour, false},
	Day:         {"d", secondsPerDay, false},
}

func (u TimeUnit) Symbol() string            { return timeUnits[u].symbol }
func (u TimeUnit) ConversionFactor() float64 { return timeUnits[u].factor }
func (u TimeUnit) SI() bool                  { return timeUnits[u].si }
func (u TimeUnit) String() string            { return timeUnits[u].symbol }

// Time is a quantity of elapsed time.
type Time struct {
	value float64
	unit  TimeUnit
}

// NewTime creates a time quantity.
func NewTime(value float64, unit TimeUnit) Time {
	return Time{value: value, unit: unit}
}

// Seconds creates a time in seconds.
func Seconds(value float64) Time { return NewTime(value, Second) }

// Minutes creates a time in minutes.
func Minutes(value float64) Time { return NewTime(value, Minute) }

// Hours creates a time in hours.
func Hours(value float64) Time { return NewTime(value, Hour) }

// Days creates a time in days.
func Days(value float64) Time { return NewTime(value, Day) }

// FromDuration converts a standard library duration to a Time in seconds.
func FromDuration(d stdtime.Duration) Time {
	return Seconds(d.Seconds())
}

func (t Time) Value() float64                  { return t.value }
func (t Time) Unit() TimeUnit                  { return t.unit }
func (t Time) Measure() quantity.UnitOfMeasure { return t.unit }
func (t Time) WithValue(value float64) Time    { return Time{value: value, unit: t.unit} }
func (t Time) With(value float64, unit TimeUnit) Time {
	return Time{value: value, unit: unit}
}

// To converts to a magnitude in the target unit.
func (t Time) To(target TimeUnit) float64 { return quantity.To(t, target) }

// In returns the time expressed in the target unit.
func (t Time) In(target TimeUnit) Time { return quantity.In(t, target) }

// Add returns t + that in t's unit.
func (t Time) Add(that Time) Time { return quantity.Add(t, that) }

// Sub returns t - that in t's unit.
func (t Time) Sub(that Time) Time { return quantity.Sub(t, that) }

// Mul scales the time by a dimensionless factor.
func (t Time) Mul(factor float64) Time { return t.WithValue(t.value * factor) }

// Div divides the time by a dimensionless factor.
func (t Time) Div(divisor float64) Time { return t.WithValue(t.value / divisor) }

// Neg returns the time with its magnitude negated.
func (t Time) Neg() Time { return quantity.Negate(t) }

// Equal reports whether both times denote the same duration.
func (t Time) Equal(that Time) bool { return quantity.Equal(t, that) }

// Duration converts to a standard library duration, truncated to nanosecond
// resolution. Durations beyond the int64 nanosecond range overflow.
func (t Time) Duration() stdtime.Duration {
	return stdtime.Duration(quantity.ToPrimary(t) * float64(stdtime.Second))
}

func (t Time) String() string { return quantity.Format(t) }

type timeDimension struct{}

func (timeDimension) Name() string          { return "Time" }
func (timeDimension) PrimaryUnit() TimeUnit { return Second }
func (timeDimension) SIUnit() TimeUnit      { return Second }
func (timeDimension) Units() []TimeUnit {
	units := make([]TimeUnit, len(timeUnits))
	for i := range units {
		units[i] = TimeUnit(i)
	}
	return units
}
func (timeDimension) Make(value float64, unit TimeUnit) Time {
	return NewTime(value, unit)
}

// Times is the Time dimension: unit lookup and parsing.
var Times quantity.Dimension[TimeUnit, Time] = timeDimension{}

// ParseTime reads a time from its textual form, e.g. "90 min".
func ParseTime(s string) (Time, error) { return quantity.Parse(Times, s) }
