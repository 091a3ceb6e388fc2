package natinf

// Prop is the closed sum type of propositions decided or simplified by this
// package. As with Expr, it is a sealed interface plus one concrete struct
// per constructor.
type Prop interface {
	Equal(Prop) bool
	propNode()
}

// Fin is the proposition fin(E): E denotes a finite value.
type Fin struct{ E Expr }

// Eq is the non-strict equality X :== Y over ℕ∞.
type Eq struct{ X, Y Expr }

// Ge is the non-strict ordering X :>= Y over ℕ∞.
type Ge struct{ X, Y Expr }

// Gt is the non-strict ordering X :> Y over ℕ∞.
type Gt struct{ X, Y Expr }

// StrictEq is X :==: Y, equality over ℕ with both sides promised finite by
// the caller. This is one of the two atoms handed to the external
// finite-arithmetic decision procedure (see decide.go); this package never
// rewrites it.
type StrictEq struct{ X, Y Expr }

// StrictGt is X :>: Y, the strict-ordering counterpart of StrictEq.
type StrictGt struct{ X, Y Expr }

// And is the conjunction L ∧ R.
type And struct{ L, R Prop }

// Or is the disjunction L ∨ R.
type Or struct{ L, R Prop }

// Not is the negation ¬P.
type Not struct{ P Prop }

// True is the proposition that always holds.
type True struct{}

// False is the proposition that never holds.
type False struct{}

func (Fin) propNode()      {}
func (Eq) propNode()       {}
func (Ge) propNode()       {}
func (Gt) propNode()       {}
func (StrictEq) propNode() {}
func (StrictGt) propNode() {}
func (And) propNode()      {}
func (Or) propNode()       {}
func (Not) propNode()      {}
func (True) propNode()     {}
func (False) propNode()    {}

func (p Fin) Equal(o Prop) bool {
	t, ok := o.(Fin)
	return ok && p.E.Equal(t.E)
}

func (p Eq) Equal(o Prop) bool {
	t, ok := o.(Eq)
	return ok && p.X.Equal(t.X) && p.Y.Equal(t.Y)
}

func (p Ge) Equal(o Prop) bool {
	t, ok := o.(Ge)
	return ok && p.X.Equal(t.X) && p.Y.Equal(t.Y)
}

func (p Gt) Equal(o Prop) bool {
	t, ok := o.(Gt)
	return ok && p.X.Equal(t.X) && p.Y.Equal(t.Y)
}

func (p StrictEq) Equal(o Prop) bool {
	t, ok := o.(StrictEq)
	return ok && p.X.Equal(t.X) && p.Y.Equal(t.Y)
}

func (p StrictGt) Equal(o Prop) bool {
	t, ok := o.(StrictGt)
	return ok && p.X.Equal(t.X) && p.Y.Equal(t.Y)
}

func (p And) Equal(o Prop) bool {
	t, ok := o.(And)
	return ok && p.L.Equal(t.L) && p.R.Equal(t.R)
}

func (p Or) Equal(o Prop) bool {
	t, ok := o.(Or)
	return ok && p.L.Equal(t.L) && p.R.Equal(t.R)
}

func (p Not) Equal(o Prop) bool {
	t, ok := o.(Not)
	return ok && p.P.Equal(t.P)
}

func (True) Equal(o Prop) bool {
	_, ok := o.(True)
	return ok
}

func (False) Equal(o Prop) bool {
	_, ok := o.(False)
	return ok
}

// and3 and or3 build right-associated chains, matching the and-rule's
// "(p1 ∧ p2) ∧ q → p1 ∧ (p2 ∧ q)" normal form (rules_and_or.go) so call
// sites that assemble a fixed conjunction/disjunction don't have to rely on
// simplify to fix the associativity up afterwards.
func and3(p, q, r Prop) Prop { return And{L: p, R: And{L: q, R: r}} }

func or3(p, q, r Prop) Prop { return Or{L: p, R: Or{L: q, R: r}} }

// finVar is shorthand for the fin(Var x) atom that the and-rule's
// finiteness-propagation step (rules_and_or.go) singles out as special.
func finVar(n Name) Prop { return Fin{E: Var{Name: n}} }
