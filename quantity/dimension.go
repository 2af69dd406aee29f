package quantity

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/teranos/quants/errors"
)

// Dimension is the metadata and factory surface for one quantity family
// (Length, Mass, Time, ...). It is stateless: implementations are empty
// struct singletons used only for unit lookup and parsing, never held as
// runtime state.
//
// Concrete packages expose their dimension as a package variable typed as
// this interface (e.g. space.Length's dimension), which lets UnitBySymbol
// and Parse infer their type parameters at the call site.
type Dimension[U EnumUnit, Q any] interface {
	// Name returns the dimension name (e.g. "Length", "Mass").
	Name() string

	// PrimaryUnit returns the reference unit with conversion factor 1.0.
	PrimaryUnit() U

	// SIUnit returns the SI unit for this dimension.
	SIUnit() U

	// Units returns the closed list of units in this dimension.
	Units() []U

	// Make constructs a quantity of this dimension.
	Make(value float64, unit U) Q
}

// UnitBySymbol finds a unit by its symbol. The scan is linear over the
// dimension's closed unit list; the first match wins. Symbols are matched
// verbatim, case-sensitively, including multi-byte symbols such as "µm"
// and "°C".
func UnitBySymbol[U EnumUnit, Q any](d Dimension[U, Q], symbol string) (U, bool) {
	for _, u := range d.Units() {
		if u.Symbol() == symbol {
			return u, true
		}
	}
	var zero U
	return zero, false
}

// ParseError describes a quantity string that could not be parsed. It is
// always marked with errors.ErrParse; retrieve it with errors.As for
// programmatic access to the dimension and original input.
type ParseError struct {
	Dimension string
	Input     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unable to parse %s: %q", e.Dimension, e.Input)
}

func newParseError(dimension, input string) error {
	return errors.Mark(&ParseError{Dimension: dimension, Input: input}, errors.ErrParse)
}

// Parse reads a quantity from its textual form "<number><optional
// space><unit symbol>". The number accepts an optional sign, digits, at
// most one decimal point and an optional e/E exponent; the remainder,
// trimmed, must match one of the dimension's unit symbols exactly.
//
// Accepted: "10 m", "10m", "-10.5 kg", "1.5e10 m", "1.5E-10 m".
// Rejected: "m" (no value), "10" (no unit), "" (empty).
func Parse[U EnumUnit, Q any](d Dimension[U, Q], s string) (Q, error) {
	var zero Q

	valueStr, unitStr, ok := splitValueAndUnit(s)
	if !ok {
		return zero, newParseError(d.Name(), s)
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return zero, newParseError(d.Name(), s)
	}

	unit, ok := UnitBySymbol(d, unitStr)
	if !ok {
		return zero, newParseError(d.Name(), s)
	}

	return d.Make(value, unit), nil
}

// MustParse is the panic-on-invalid-input convenience wrapper around Parse,
// intended for compile-time-constant inputs.
func MustParse[U EnumUnit, Q any](d Dimension[U, Q], s string) Q {
	q, err := Parse(d, s)
	if err != nil {
		panic(err)
	}
	return q
}

// splitValueAndUnit isolates the numeric prefix of s from the trailing
// unit symbol. This is a small hand-rolled lexer, not a general grammar:
// a leading optional sign, ASCII digits, at most one decimal point, and an
// optional exponent with its own optional sign.
func splitValueAndUnit(s string) (valueStr, unitStr string, ok bool) {
	s = strings.TrimSpace(s)

	end := 0
	hasDecimal := false
	hasExponent := false

	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}

	start := 0
scan:
	for end < len(s) {
		c := s[end]
		switch {
		case c >= '0' && c <= '9':
			end++
		case c == '.' && !hasDecimal && !hasExponent:
			hasDecimal = true
			end++
		case (c == 'e' || c == 'E') && !hasExponent:
			hasExponent = true
			end++
			if end < len(s) && (s[end] == '-' || s[end] == '+') {
				end++
			}
		default:
			break scan
		}
	}

	if end == start {
		return "", "", false
	}

	valueStr = s[start:end]
	unitStr = strings.TrimSpace(s[end:])
	if unitStr == "" {
		return "", "", false
	}

	return valueStr, unitStr, true
}
