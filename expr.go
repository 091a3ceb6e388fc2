package natinf

// Expr is the closed sum type of symbolic arithmetic expressions over ℕ∞.
// It is implemented, in the teacher's own idiom, as an interface sealed to
// this package (via the unexported exprNode method) plus one concrete
// struct type per constructor, rather than a single tagged struct: every
// dispatcher in this package (defined, is0, isFin, noInf, the printer, ...)
// does an exhaustive type switch over these concrete types and panics via
// unreachable in its default case.
type Expr interface {
	// Equal reports structural equality.
	Equal(Expr) bool
	exprNode()
}

// K is a constant extended natural.
type K struct{ Val Nat }

// Var is a variable reference.
type Var struct{ Name Name }

// Add is x + y.
type Add struct{ X, Y Expr }

// Sub is x - y (truncated/underflow is guarded by defined, see defined.go).
type Sub struct{ X, Y Expr }

// Mul is x * y.
type Mul struct{ X, Y Expr }

// Exp is x ^^ y (exponentiation).
type Exp struct{ X, Y Expr }

// DivE is Div x y, integer division.
type DivE struct{ X, Y Expr }

// ModE is Mod x y.
type ModE struct{ X, Y Expr }

// Lg2 is the ceiling base-2 logarithm.
type Lg2 struct{ X Expr }

// Width is the number of bits needed to represent x.
type Width struct{ X Expr }

// Min is the minimum of x and y.
type Min struct{ X, Y Expr }

// Max is the maximum of x and y.
type Max struct{ X, Y Expr }

// LenFromThen is the length of the enumeration [x, y .. ] truncated to width
// w (Cryptol-style "from/then" sequence-length arithmetic).
type LenFromThen struct{ X, Y, W Expr }

// LenFromThenTo is the length of the enumeration [x, y .. z].
type LenFromThenTo struct{ X, Y, Z Expr }

func (K) exprNode()             {}
func (Var) exprNode()           {}
func (Add) exprNode()           {}
func (Sub) exprNode()           {}
func (Mul) exprNode()           {}
func (Exp) exprNode()           {}
func (DivE) exprNode()          {}
func (ModE) exprNode()          {}
func (Lg2) exprNode()           {}
func (Width) exprNode()         {}
func (Min) exprNode()           {}
func (Max) exprNode()           {}
func (LenFromThen) exprNode()   {}
func (LenFromThenTo) exprNode() {}

// zero, one and inf are the three constants §4.A asks every component to be
// able to reach without re-deriving them.
var (
	zero = K{Val: NatUint64(0)}
	one  = K{Val: NatUint64(1)}
	inf  = K{Val: NatInf}
)

// KUint64 is a convenience constructor for a finite constant.
func KUint64(n uint64) Expr { return K{Val: NatUint64(n)} }

// Equal implementations. Each one asserts that the other side has the same
// concrete type and then recurses structurally into the operands.
func (e K) Equal(o Expr) bool {
	t, ok := o.(K)
	return ok && e.Val.Equal(t.Val)
}

func (e Var) Equal(o Expr) bool {
	t, ok := o.(Var)
	return ok && e.Name == t.Name
}

func (e Add) Equal(o Expr) bool {
	t, ok := o.(Add)
	return ok && e.X.Equal(t.X) && e.Y.Equal(t.Y)
}

func (e Sub) Equal(o Expr) bool {
	t, ok := o.(Sub)
	return ok && e.X.Equal(t.X) && e.Y.Equal(t.Y)
}

func (e Mul) Equal(o Expr) bool {
	t, ok := o.(Mul)
	return ok && e.X.Equal(t.X) && e.Y.Equal(t.Y)
}

func (e Exp) Equal(o Expr) bool {
	t, ok := o.(Exp)
	return ok && e.X.Equal(t.X) && e.Y.Equal(t.Y)
}

func (e DivE) Equal(o Expr) bool {
	t, ok := o.(DivE)
	return ok && e.X.Equal(t.X) && e.Y.Equal(t.Y)
}

func (e ModE) Equal(o Expr) bool {
	t, ok := o.(ModE)
	return ok && e.X.Equal(t.X) && e.Y.Equal(t.Y)
}

func (e Lg2) Equal(o Expr) bool {
	t, ok := o.(Lg2)
	return ok && e.X.Equal(t.X)
}

func (e Width) Equal(o Expr) bool {
	t, ok := o.(Width)
	return ok && e.X.Equal(t.X)
}

func (e Min) Equal(o Expr) bool {
	t, ok := o.(Min)
	return ok && e.X.Equal(t.X) && e.Y.Equal(t.Y)
}

func (e Max) Equal(o Expr) bool {
	t, ok := o.(Max)
	return ok && e.X.Equal(t.X) && e.Y.Equal(t.Y)
}

func (e LenFromThen) Equal(o Expr) bool {
	t, ok := o.(LenFromThen)
	return ok && e.X.Equal(t.X) && e.Y.Equal(t.Y) && e.W.Equal(t.W)
}

func (e LenFromThenTo) Equal(o Expr) bool {
	t, ok := o.(LenFromThenTo)
	return ok && e.X.Equal(t.X) && e.Y.Equal(t.Y) && e.Z.Equal(t.Z)
}

// isInfLit reports whether e is, syntactically, the literal constant ∞.
// This is the only sense in which noInf (noinf.go) ever asks "is this
// Inf?": it is a structural check on the expression tree, not a semantic
// question about what value an opaque variable might take at runtime (that
// question belongs to the fin(Var _) atoms, not to noInf).
func isInfLit(e Expr) bool {
	k, ok := e.(K)
	return ok && k.Val.IsInf()
}

// isZeroLit reports whether e is syntactically the literal constant 0.
func isZeroLit(e Expr) bool {
	k, ok := e.(K)
	return ok && k.Val.IsZero()
}

// isOneLit reports whether e is syntactically the literal constant 1.
func isOneLit(e Expr) bool {
	k, ok := e.(K)
	return ok && k.Val.IsOne()
}

// deepCopy returns a structurally-equal, independently-owned copy of e.
// Because every Expr node is an immutable value (no pointers are mutated
// after construction) a shallow Go copy is already a deep copy in the
// semantic sense; this helper exists so call sites documenting "I need my
// own copy" read clearly, matching §3's "Lifecycles" note that ownership is
// exclusive but sharing is only ever logical.
func deepCopy(e Expr) Expr { return e }
