// Package quantity is the generic core of quants: the unit-of-measure
// contract, the self-referential quantity contract and its derived algebra,
// dimension metadata and parsing, quantity ranges, and ratios/rates.
//
// Concrete quantity packages (space, mass, chrono, ...) supply a unit table
// and a thin value type; everything else (conversion, comparison, rounding,
// ranges, ratio arithmetic) is derived once here so quantity families
// cannot diverge in semantics.
//
// All magnitudes are float64. Arithmetic never fails: division by a
// zero-magnitude quantity produces ±Inf/NaN per IEEE 754 and is propagated,
// not intercepted. Fallible constructors (parsing, range construction)
// return errors marked with the sentinels in the quants errors package.
package quantity
