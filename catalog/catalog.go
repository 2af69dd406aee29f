// Package catalog is the canonical registry of quantity dimensions. It
// wraps each generic dimension behind a uniform string-based surface so the
// CLI and other hosts can parse and convert without knowing concrete types.
package catalog

import (
	"github.com/teranos/quants/chrono"
	"github.com/teranos/quants/energy"
	"github.com/teranos/quants/errors"
	"github.com/teranos/quants/mass"
	"github.com/teranos/quants/motion"
	"github.com/teranos/quants/quantity"
	"github.com/teranos/quants/space"
	"github.com/teranos/quants/thermal"
)

// Unit describes one unit of a catalogued dimension.
type Unit struct {
	Symbol  string
	Factor  float64
	SI      bool
	Primary bool
}

// Value is a parsed or converted quantity in string-friendly form.
type Value struct {
	Value  float64 `json:"value"`
	Symbol string  `json:"symbol"`
	Text   string  `json:"text"`
}

// Entry is one dimension's string-based surface.
type Entry struct {
	// Name is the lookup key, e.g. "length".
	Name string
	// Dimension is the display name, e.g. "Length".
	Dimension string
	// Units lists the dimension's closed unit table.
	Units []Unit
	// Parse reads a quantity from its textual form.
	Parse func(s string) (Value, error)
	// Convert parses a quantity and re-expresses it in the target unit.
	Convert func(s, targetSymbol string) (Value, error)
}

func entryFor[U quantity.EnumUnit, Q quantity.Unitful[Q, U]](name string, d quantity.Dimension[U, Q]) Entry {
	units := make([]Unit, 0, len(d.Units()))
	for _, u := range d.Units() {
		units = append(units, Unit{
			Symbol:  u.Symbol(),
			Factor:  u.ConversionFactor(),
			SI:      quantity.IsSI(u),
			Primary: u == d.PrimaryUnit(),
		})
	}

	toValue := func(q Q) Value {
		value, symbol := quantity.Tuple(q)
		return Value{Value: value, Symbol: symbol, Text: quantity.Format(q)}
	}

	return Entry{
		Name:      name,
		Dimension: d.Name(),
		Units:     units,
		Parse: func(s string) (Value, error) {
			q, err := quantity.Parse(d, s)
			if err != nil {
				return Value{}, err
			}
			return toValue(q), nil
		},
		Convert: func(s, targetSymbol string) (Value, error) {
			q, err := quantity.Parse(d, s)
			if err != nil {
				return Value{}, err
			}
			target, ok := quantity.UnitBySymbol(d, targetSymbol)
			if !ok {
				return Value{}, errors.Mark(
					errors.Newf("unknown %s unit: %q", d.Name(), targetSymbol),
					errors.ErrParse)
			}
			return toValue(quantity.In(q, target)), nil
		},
	}
}

// registry is the canonical list of catalogued dimensions.
var registry = []Entry{
	entryFor("length", space.Lengths),
	entryFor("area", space.Areas),
	entryFor("volume", space.Volumes),
	entryFor("mass", mass.Masses),
	entryFor("time", chrono.Times),
	entryFor("velocity", motion.Velocities),
	entryFor("energy", energy.Energies),
	entryFor("temperature", thermal.Temperatures),
	entryFor("thermalcapacity", thermal.ThermalCapacities),
}

// Lookup tables built from the registry at init time.
var (
	byName   map[string]Entry
	bySymbol map[string][]string
)

func init() {
	byName = make(map[string]Entry, len(registry))
	bySymbol = make(map[string][]string)
	for _, e := range registry {
		byName[e.Name] = e
		for _, u := range e.Units {
			bySymbol[u.Symbol] = append(bySymbol[u.Symbol], e.Name)
		}
	}
}

// Entries returns all catalogued dimensions in registration order.
func Entries() []Entry {
	return registry
}

// Lookup finds a dimension by its catalog name.
func Lookup(name string) (Entry, bool) {
	e, ok := byName[name]
	return e, ok
}

// DimensionsForSymbol returns the names of dimensions that define the given
// unit symbol. Some symbols are ambiguous across dimensions ("gr" is a troy
// grain; "pc" is a parsec).
func DimensionsForSymbol(symbol string) []string {
	return bySymbol[symbol]
}

// ParseAny tries every catalogued dimension in registration order and
// returns the first successful parse along with the dimension name.
func ParseAny(s string) (Value, string, error) {
	for _, e := range registry {
		if v, err := e.Parse(s); err == nil {
			return v, e.Name, nil
		}
	}
	return Value{}, "", errors.Mark(
		errors.Newf("no dimension recognizes %q", s),
		errors.ErrParse)
}
