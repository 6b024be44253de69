// Package dialect implements LangMatrix: the closed set of C and C++
// dialects this engine understands, and the bitset operations used
// throughout the checker and renderers to decide what is legal where.
//
// The shape mirrors the teacher's language registry
// (internal/registry/registry.go in termfx/morfx): a small, static
// catalogue indexed by Dialect value, queried far more often than it
// is mutated. Name aliases are resolved by internal/config, not here.
package dialect

import "fmt"

// Dialect is one specific version of C or C++.
type Dialect uint8

// The closed set of dialects this engine recognizes, in chronological
// rank order within each family.
const (
	KnrC Dialect = iota
	C89
	C95
	C99
	C11
	C17
	C23
	Cpp98
	Cpp03
	Cpp11
	Cpp14
	Cpp17
	Cpp20
	Cpp23
	numDialects
)

// Family identifies whether a Dialect belongs to the C or C++ lineage.
type Family uint8

const (
	FamilyC Family = iota
	FamilyCpp
)

type dialectInfo struct {
	name   string
	family Family
	rank   int // chronological order within numDialects
}

var info = [numDialects]dialectInfo{
	KnrC:  {"K&R C", FamilyC, 0},
	C89:   {"C89", FamilyC, 1},
	C95:   {"C95", FamilyC, 2},
	C99:   {"C99", FamilyC, 3},
	C11:   {"C11", FamilyC, 4},
	C17:   {"C17", FamilyC, 5},
	C23:   {"C23", FamilyC, 6},
	Cpp98: {"C++98", FamilyCpp, 7},
	Cpp03: {"C++03", FamilyCpp, 8},
	Cpp11: {"C++11", FamilyCpp, 9},
	Cpp14: {"C++14", FamilyCpp, 10},
	Cpp17: {"C++17", FamilyCpp, 11},
	Cpp20: {"C++20", FamilyCpp, 12},
	Cpp23: {"C++23", FamilyCpp, 13},
}

// Name returns the canonical display name of d, e.g. "C99" or "C++11".
func Name(d Dialect) string {
	if d >= numDialects {
		return fmt.Sprintf("Dialect(%d)", d)
	}
	return info[d].name
}

// Rank returns d's chronological position; lower ranks are older dialects.
func Rank(d Dialect) int {
	if d >= numDialects {
		return -1
	}
	return info[d].rank
}

// RankOrder reports whether d1 is older (-1), the same (0), or newer (1)
// than d2.
func RankOrder(d1, d2 Dialect) int {
	r1, r2 := Rank(d1), Rank(d2)
	switch {
	case r1 < r2:
		return -1
	case r1 > r2:
		return 1
	default:
		return 0
	}
}

// FamilyOf returns d's language family.
func FamilyOf(d Dialect) Family {
	if d >= numDialects {
		return FamilyC
	}
	return info[d].family
}

// All returns every dialect this engine recognizes, in rank order.
func All() []Dialect {
	out := make([]Dialect, numDialects)
	for d := Dialect(0); d < numDialects; d++ {
		out[d] = d
	}
	return out
}

// current is the process-wide selected dialect (§5: "exactly one dialect
// is current at any moment"). Checker and renderer calls read it through
// Current/SetCurrent rather than touching this variable directly, so
// tests can swap dialects without reaching into package internals.
var current = C17

// Current returns the dialect currently selected.
func Current() Dialect { return current }

// SetCurrent selects d as current. Switching dialects is idempotent:
// setting the same dialect again is a no-op observable only by its
// return value.
func SetCurrent(d Dialect) (changed bool) {
	if d == current {
		return false
	}
	current = d
	return true
}
