package natinf

// IfExpr is the decision-tree intermediate form used by noInf (noinf.go) to
// lift ∞ literals out of an Expr before handing the result to the external
// finite-arithmetic decision procedure. It is a closed sum type with three
// cases:
//
//   - If(p, then, else): case-split on a Prop whose truth is decided once
//     the tree is folded by toProp.
//   - Return(a): a leaf carrying a value.
//   - Impossible: a leaf marking a branch that cannot arise (a subterm
//     promised finite would have to be ∞).
//
// IfExpr supports sequential composition (Bind) with Impossible absorbing,
// per §3/§9's "decision-tree monad" design note: this is implemented as an
// explicit combinator rather than folded into noInf's control flow, so the
// monad laws (documented on Bind) are checkable in isolation.
type IfExpr[A any] interface {
	ifExprNode()
}

// ifIf is the case-split node.
type ifIf[A any] struct {
	Cond Prop
	Then IfExpr[A]
	Else IfExpr[A]
}

// ifReturn wraps a concrete leaf value.
type ifReturn[A any] struct{ Val A }

// ifImpossible is the absorbing "this branch cannot happen" leaf.
type ifImpossible[A any] struct{}

func (ifIf[A]) ifExprNode()         {}
func (ifReturn[A]) ifExprNode()     {}
func (ifImpossible[A]) ifExprNode() {}

// If builds a case-split node.
func If[A any](cond Prop, then, els IfExpr[A]) IfExpr[A] {
	return ifIf[A]{Cond: cond, Then: then, Else: els}
}

// Return builds a leaf carrying a.
func Return[A any](a A) IfExpr[A] { return ifReturn[A]{Val: a} }

// Impossible is the absorbing excluded-branch leaf.
func Impossible[A any]() IfExpr[A] { return ifImpossible[A]{} }

// Bind sequences t with a continuation k, per the laws:
//
//	Impossible    >>= k  ==  Impossible
//	Return(a)     >>= k  ==  k(a)
//	If(p, t, e)   >>= k  ==  If(p, t >>= k, e >>= k)
//
// Go has no higher-kinded generics, so Bind changes the payload type via a
// free type parameter B rather than being a method on IfExpr[A].
func Bind[A, B any](t IfExpr[A], k func(A) IfExpr[B]) IfExpr[B] {
	switch n := t.(type) {
	case ifImpossible[A]:
		return Impossible[B]()
	case ifReturn[A]:
		return k(n.Val)
	case ifIf[A]:
		return If[B](n.Cond, Bind(n.Then, k), Bind(n.Else, k))
	default:
		unreachable("IfExpr.Bind", t)
		panic("unreachable")
	}
}

// Map applies f to every Return leaf, leaving If/Impossible structure
// untouched. It is Bind specialized to a continuation that never branches.
func Map[A, B any](t IfExpr[A], f func(A) B) IfExpr[B] {
	return Bind(t, func(a A) IfExpr[B] { return Return(f(a)) })
}

// toProp folds an IfExpr[Prop] into a single Prop by the equivalence
//
//	toProp(If(p, t, e)) = (p ∧ toProp(t)) ∨ (¬p ∧ toProp(e))
//	toProp(Return(p))   = p
//	toProp(Impossible)  = False
//
// This is the only place an IfExpr ever turns back into a Prop; it is what
// keeps ∞ from ever reaching the external decision procedure (§4.E).
func toProp(t IfExpr[Prop]) Prop {
	switch n := t.(type) {
	case ifImpossible[Prop]:
		return False{}
	case ifReturn[Prop]:
		return n.Val
	case ifIf[Prop]:
		return Or{
			L: And{L: n.Cond, R: toProp(n.Then)},
			R: And{L: Not{P: n.Cond}, R: toProp(n.Else)},
		}
	default:
		unreachable("toProp", t)
		panic("unreachable")
	}
}
