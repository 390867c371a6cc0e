// Package units implements Laskin's fixed catalog of measurement units —
// length, mass, and time — along with conversion to and from each
// quantity's base unit. The catalog is deliberately closed, not an open
// registry, so every Number operation can reason about it exhaustively.
package units

import "fmt"

// Quantity is a physical dimension a Unit belongs to.
type Quantity int

const (
	Length Quantity = iota
	Mass
	Time
)

func (q Quantity) String() string {
	switch q {
	case Length:
		return "length"
	case Mass:
		return "mass"
	case Time:
		return "time"
	default:
		return "unknown"
	}
}

// Unit is one cataloged measurement unit: a quantity, a short symbol, and
// a multiplier. Multiplier > 0 means one of this unit equals Multiplier
// base units; Multiplier < 0 means |Multiplier| of this unit equal one
// base unit (i.e. the conversion factor is 1/|Multiplier|). The base unit
// of a quantity always has Multiplier == 1.
type Unit struct {
	Quantity   Quantity
	Symbol     string
	Multiplier int
}

// IsBase reports whether u is the base unit of its quantity.
func (u Unit) IsBase() bool {
	return u.Multiplier == 1
}

func (u Unit) String() string {
	return u.Symbol
}

// Catalog is the fixed, ordered-by-declaration set of known units. Order
// within a quantity is descending by multiplier, matching the order
// renormalization needs (see numeric.renormalize).
var Catalog = []Unit{
	{Length, "km", 1000},
	{Length, "m", 1},
	{Length, "cm", -100},
	{Length, "mm", -1000},

	{Mass, "kg", 1},
	{Mass, "g", -1000},
	{Mass, "mg", -1000000},

	{Time, "d", 86400},
	{Time, "h", 3600},
	{Time, "min", 60},
	{Time, "s", 1},
	{Time, "ms", -1000},
}

var bySymbol map[string]Unit

func init() {
	bySymbol = make(map[string]Unit, len(Catalog))
	for _, u := range Catalog {
		bySymbol[u.Symbol] = u
	}
}

// FindBySymbol looks up a unit by its exact symbol text.
func FindBySymbol(symbol string) (Unit, bool) {
	u, ok := bySymbol[symbol]
	return u, ok
}

// BaseOf returns the multiplier-1 unit of a quantity.
func BaseOf(q Quantity) Unit {
	for _, u := range Catalog {
		if u.Quantity == q && u.IsBase() {
			return u
		}
	}
	panic(fmt.Sprintf("units: quantity %s has no base unit in the catalog", q))
}

// AllOf returns every cataloged unit of a quantity, in descending order of
// multiplier (largest unit first). Used by renormalization after
// arithmetic: walk the list and pick the first unit whose multiplier is
// <= the result magnitude.
func AllOf(q Quantity) []Unit {
	var out []Unit
	for _, u := range Catalog {
		if u.Quantity == q {
			out = append(out, u)
		}
	}
	return out
}
