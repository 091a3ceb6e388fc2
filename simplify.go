package natinf

import (
	"fmt"
	"iter"
)

// simpStep implements one leftmost-outermost simplification step (§4.D):
// try the operator-specific rule at the current node first; if it doesn't
// fire, recurse left, then right; if neither produces a change, report no
// step. The two strict predicates never produce a step — they are the
// fixed points handed to the external decision procedure.
func simpStep(p Prop) (Prop, bool) {
	switch n := p.(type) {
	case Fin:
		return isFin(n.E)

	case Eq:
		return isEq(n.X, n.Y)

	case Ge:
		// Deliberately no local rule: see the "On x :>= y" design note.
		// A bare :>= only ever disappears via the not-rule converting it
		// to :>, never by unwrapping itself.
		return p, false

	case Gt:
		return isGt(n.X, n.Y), true

	case StrictEq, StrictGt:
		return p, false

	case And:
		if r, ok := stepAnd(n); ok {
			return r, true
		}
		if l, ok := simpStep(n.L); ok {
			return And{L: l, R: n.R}, true
		}
		if r, ok := simpStep(n.R); ok {
			return And{L: n.L, R: r}, true
		}
		return p, false

	case Or:
		if r, ok := stepOr(n); ok {
			return r, true
		}
		if l, ok := simpStep(n.L); ok {
			return Or{L: l, R: n.R}, true
		}
		if r, ok := simpStep(n.R); ok {
			return Or{L: n.L, R: r}, true
		}
		return p, false

	case Not:
		if r, ok := stepNot(n); ok {
			return r, true
		}
		if inner, ok := simpStep(n.P); ok {
			return Not{P: inner}, true
		}
		return p, false

	case True, False:
		return p, false

	default:
		unreachable("simpStep", p)
		panic("unreachable")
	}
}

// propSize counts the Prop/Expr nodes in p, used only to size the
// step-count cap below.
func propSize(p Prop) int {
	switch n := p.(type) {
	case Fin:
		return 1 + exprSize(n.E)
	case Eq:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case Ge:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case Gt:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case StrictEq:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case StrictGt:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case And:
		return 1 + propSize(n.L) + propSize(n.R)
	case Or:
		return 1 + propSize(n.L) + propSize(n.R)
	case Not:
		return 1 + propSize(n.P)
	case True, False:
		return 1
	default:
		unreachable("propSize", p)
		panic("unreachable")
	}
}

func exprSize(e Expr) int {
	switch n := e.(type) {
	case K, Var:
		return 1
	case Add:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case Sub:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case Mul:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case Exp:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case DivE:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case ModE:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case Lg2:
		return 1 + exprSize(n.X)
	case Width:
		return 1 + exprSize(n.X)
	case Min:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case Max:
		return 1 + exprSize(n.X) + exprSize(n.Y)
	case LenFromThen:
		return 1 + exprSize(n.X) + exprSize(n.Y) + exprSize(n.W)
	case LenFromThenTo:
		return 1 + exprSize(n.X) + exprSize(n.Y) + exprSize(n.Z)
	default:
		unreachable("exprSize", e)
		panic("unreachable")
	}
}

// stepCap bounds the number of simpStep applications Simplify/SimpSteps
// will perform before treating non-termination as a programmer error
// rather than looping forever (§4.D, §7). It is quadratic in the input's
// syntactic size. Individual rules may grow the Prop (De Morgan, the
// isEq/isGt expansions), so the cap is a safety bound, not a proven one.
func stepCap(p Prop) int {
	n := propSize(p)
	return 64 + n*n*4
}

// Simplify returns the idempotent normal form of p (§6, entry point 1).
func Simplify(p Prop) Prop {
	cur := p
	cap := stepCap(p)
	for i := 0; ; i++ {
		if i >= cap {
			panic(fmt.Sprintf("natinf: Simplify: step cap (%d) exceeded, stuck at %s", cap, Sprint(cur)))
		}
		next, ok := simpStep(cur)
		if !ok {
			return cur
		}
		cur = next
	}
}

// SimpSteps yields the lazy finite sequence of intermediate forms produced
// by repeatedly applying simpStep to p, starting with p itself and ending
// with simplify(p) (§6, entry point 2). A consumer that only wants the
// first few diagnostic steps (e.g. the CLI's trace subcommand) never pays
// for the rest, since this is a true range-over-func iterator.
func SimpSteps(p Prop) iter.Seq[Prop] {
	return func(yield func(Prop) bool) {
		cur := p
		if !yield(cur) {
			return
		}
		cap := stepCap(p)
		for i := 0; i < cap; i++ {
			next, ok := simpStep(cur)
			if !ok {
				return
			}
			cur = next
			if !yield(cur) {
				return
			}
		}
		panic(fmt.Sprintf("natinf: SimpSteps: step cap (%d) exceeded, stuck at %s", cap, Sprint(cur)))
	}
}

// Defined is the well-definedness predicate (§6, entry point 3).
func Defined(e Expr) Prop { return defined(e) }

// IsEq rewrites x :== y, usable by callers constructing constraints
// directly in simplified form (§6, entry point 4).
func IsEq(x, y Expr) (Prop, bool) { return isEq(x, y) }

// IsGt rewrites x :> y (§6, entry point 4).
func IsGt(x, y Expr) Prop { return isGt(x, y) }
