package natinf

import "math/big"

// Nat is the extended natural number domain ℕ∞ = ℕ ∪ {∞}: either a concrete
// arbitrary-precision natural number or the distinguished infinite value.
// Nat is an immutable value type; its zero value is the natural number 0.
type Nat struct {
	inf bool
	n   *big.Int // nil means 0; only meaningful when inf is false
}

// NatInf is the infinite extended natural.
var NatInf = Nat{inf: true}

// NatN constructs a finite extended natural from a non-negative big.Int. It
// panics if n is negative: ℕ∞ has no negative values.
func NatN(n *big.Int) Nat {
	if n.Sign() < 0 {
		panic("natinf: NatN: negative value has no representation in ℕ∞")
	}
	return Nat{n: new(big.Int).Set(n)}
}

// NatUint64 constructs a finite extended natural from a uint64.
func NatUint64(n uint64) Nat {
	return Nat{n: new(big.Int).SetUint64(n)}
}

// IsInf reports whether n is the infinite value.
func (n Nat) IsInf() bool { return n.inf }

// Int returns the finite value of n as a big.Int and true, or (nil, false)
// if n is infinite.
func (n Nat) Int() (*big.Int, bool) {
	if n.inf {
		return nil, false
	}
	if n.n == nil {
		return new(big.Int), true
	}
	return new(big.Int).Set(n.n), true
}

// bigOrZero returns the underlying big.Int, treating the zero value as 0.
// Only valid for finite n.
func (n Nat) bigOrZero() *big.Int {
	if n.n == nil {
		return new(big.Int)
	}
	return n.n
}

// Equal reports structural equality: Inf equals only Inf, and two finite
// values are equal iff their magnitudes are equal.
func (n Nat) Equal(o Nat) bool {
	if n.inf != o.inf {
		return false
	}
	if n.inf {
		return true
	}
	return n.bigOrZero().Cmp(o.bigOrZero()) == 0
}

// IsZero reports whether n is the finite value 0.
func (n Nat) IsZero() bool {
	return !n.inf && n.bigOrZero().Sign() == 0
}

// IsOne reports whether n is the finite value 1.
func (n Nat) IsOne() bool {
	return !n.inf && n.bigOrZero().Cmp(big.NewInt(1)) == 0
}

// Compare orders n against o with Inf strictly greater than every finite
// value: -1 if n<o, 0 if n==o, 1 if n>o.
func (n Nat) Compare(o Nat) int {
	switch {
	case n.inf && o.inf:
		return 0
	case n.inf:
		return 1
	case o.inf:
		return -1
	default:
		return n.bigOrZero().Cmp(o.bigOrZero())
	}
}

// String renders n as a decimal numeral, or "inf".
func (n Nat) String() string {
	if n.inf {
		return "inf"
	}
	return n.bigOrZero().String()
}
