// Package natinf implements a symbolic simplifier for numeric-type
// constraints over the extended natural numbers ℕ∞ = ℕ ∪ {∞}. It normalizes
// and partially decides propositions such as fin(x), x == y and x >= y where
// x and y are symbolic arithmetic expressions built from variables and the
// handful of size-indexed-type operators (+, -, *, ^^, div, mod, lg2, width,
// min, max, lenFromThen, lenFromThenTo).
//
// The package is deliberately total and pure: every entry point returns a
// value for every input, and no component holds mutable state. Callers that
// need a decision on a "strict" (proven-finite) comparison such as x :==: y
// or x :>: y are expected to hand that atom to an external finite-arithmetic
// decision procedure; this package only ever produces such atoms, it never
// decides them.
package natinf

import (
	"fmt"
	"strconv"
	"strings"
)

// Name is an opaque variable identifier. Names are supplied by the caller
// (this package never allocates fresh ones) and are compared only for
// equality.
type Name uint64

// String renders n using the canonical infinite stream a, b, ..., z, a1,
// b1, ..., z1, a2, ... This is the rendering used by the pretty printer
// (print.go) and is also what the parser (parse.go) accepts back.
func (n Name) String() string {
	i := uint64(n)
	letter := rune('a' + i%26)
	gen := i / 26
	if gen == 0 {
		return string(letter)
	}
	return string(letter) + strconv.FormatUint(gen, 10)
}

// ParseName parses the canonical name stream produced by Name.String. It is
// the inverse of String for every value String can produce.
func ParseName(s string) (Name, bool) {
	if s == "" {
		return 0, false
	}
	letter := rune(s[0])
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	rest := s[1:]
	var gen uint64
	if rest != "" {
		n, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return 0, false
		}
		gen = n
	}
	return Name(gen*26 + uint64(letter-'a')), true
}

// namesUsed is a tiny helper used by tests to render a readable
// list of names, e.g. for diagnostics. It is not part of the core algebra.
func namesUsed(names ...Name) string {
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n.String()
	}
	return strings.Join(parts, ", ")
}

// unreachable panics with a diagnostic identifying a closed sum type whose
// exhaustive type switch should never reach its default case. Every
// exhaustive switch over Expr, Prop or IfExpr in this package ends with a call to this
// function instead of silently falling through, so a missing case is a loud
// programmer error rather than a quiet miscompilation.
func unreachable(what string, v any) {
	panic(fmt.Sprintf("natinf: unreachable: %s: unexpected dynamic type %T (%v)", what, v, v))
}
