package natinf

// is0 decides or rewrites the proposition e :== 0, applying the shape
// table of §4.C. It assumes e is already well-defined; callers that need
// that guarantee hold it explicitly via defined (defined.go).
func is0(e Expr) (Prop, bool) {
	switch n := e.(type) {
	case K:
		if n.Val.IsInf() {
			return False{}, true
		}
		if n.Val.IsZero() {
			return True{}, true
		}
		return False{}, true
	case Var:
		return nil, false
	case Add:
		return And{L: Eq{X: n.X, Y: zero}, R: Eq{X: n.Y, Y: zero}}, true
	case Sub:
		return Eq{X: n.X, Y: n.Y}, true
	case Mul:
		return Or{L: Eq{X: n.X, Y: zero}, R: Eq{X: n.Y, Y: zero}}, true
	case DivE:
		return Gt{X: n.Y, Y: n.X}, true
	case ModE:
		return nil, false
	case Exp:
		return And{L: Eq{X: n.X, Y: zero}, R: Gt{X: n.Y, Y: zero}}, true
	case Min:
		return Or{L: Eq{X: n.X, Y: zero}, R: Eq{X: n.Y, Y: zero}}, true
	case Max:
		return And{L: Eq{X: n.X, Y: zero}, R: Eq{X: n.Y, Y: zero}}, true
	case Lg2:
		return Or{L: Eq{X: n.X, Y: zero}, R: Eq{X: n.X, Y: one}}, true
	case Width:
		return Eq{X: n.X, Y: zero}, true
	case LenFromThen:
		return Or{L: Eq{X: n.W, Y: zero}, R: Gt{X: n.X, Y: n.Y}}, true
	case LenFromThenTo:
		return Or{
			L: And{L: Gt{X: n.X, Y: n.Y}, R: Gt{X: n.Z, Y: n.X}},
			R: And{L: Gt{X: n.Y, Y: n.X}, R: Gt{X: n.X, Y: n.Z}},
		}, true
	default:
		unreachable("is0", e)
		panic("unreachable")
	}
}

// isFin decides or rewrites the proposition fin(e), applying the shape
// table of §4.C: these are the only points where ∞ interacts with finite
// arithmetic, so enumerating them statically eliminates ∞ from the
// residual goal passed downstream.
func isFin(e Expr) (Prop, bool) {
	switch n := e.(type) {
	case K:
		if n.Val.IsInf() {
			return False{}, true
		}
		return True{}, true
	case Var:
		return nil, false
	case Add:
		return And{L: Fin{E: n.X}, R: Fin{E: n.Y}}, true
	case Sub:
		return Fin{E: n.X}, true
	case Mul:
		return or3(
			And{L: Fin{E: n.X}, R: Fin{E: n.Y}},
			And{L: Eq{X: n.X, Y: zero}, R: Eq{X: n.Y, Y: inf}},
			And{L: Eq{X: n.Y, Y: zero}, R: Eq{X: n.X, Y: inf}},
		), true
	case DivE:
		return Fin{E: n.X}, true
	case ModE:
		return True{}, true
	case Exp:
		return or3(
			And{L: Fin{E: n.X}, R: Fin{E: n.Y}},
			And{L: Eq{X: n.X, Y: inf}, R: Eq{X: n.Y, Y: zero}},
			And{L: Eq{X: n.Y, Y: inf}, R: Or{L: Eq{X: n.X, Y: zero}, R: Eq{X: n.X, Y: one}}},
		), true
	case Min:
		return Or{L: Fin{E: n.X}, R: Fin{E: n.Y}}, true
	case Max:
		return And{L: Fin{E: n.X}, R: Fin{E: n.Y}}, true
	case Lg2:
		return Fin{E: n.X}, true
	case Width:
		return Fin{E: n.X}, true
	case LenFromThen, LenFromThenTo:
		return True{}, true
	default:
		unreachable("isFin", e)
		panic("unreachable")
	}
}

// isEq decides or rewrites the proposition x :== y over ℕ∞ (§4.C). It
// always produces a Prop for the cases §4.C enumerates — Var/Var and the
// "Otherwise" clause's general formula both fall out of the final branch
// below — the only time it reports no rule is the zero-delegation case
// when is0 itself has none (e.g. a bare variable, S1's `a == 0`). The bool
// result is kept for interface fidelity with §6's Option<Prop> signature;
// see DESIGN.md for why it is in practice never false except there.
func isEq(x, y Expr) (Prop, bool) {
	if kx, ok := x.(K); ok {
		if ky, ok := y.(K); ok {
			if kx.Val.Equal(ky.Val) {
				return True{}, true
			}
			return False{}, true
		}
	}
	if isZeroLit(x) {
		return is0(y)
	}
	if isZeroLit(y) {
		return is0(x)
	}
	if isInfLit(x) {
		return Not{P: Fin{E: y}}, true
	}
	if isInfLit(y) {
		return Not{P: Fin{E: x}}, true
	}
	return Or{
		L: And{L: Not{P: Fin{E: x}}, R: Not{P: Fin{E: y}}},
		R: And{L: Fin{E: x}, R: And{L: Fin{E: y}, R: natOp(x, y, func(a, b Expr) Prop { return StrictEq{X: a, Y: b} })}},
	}, true
}

// isGt rewrites the proposition x :> y over ℕ∞ (§4.C). Unlike isEq it
// always succeeds — there is no "no local rule" outcome — so it returns a
// bare Prop rather than a (Prop, bool) pair.
func isGt(x, y Expr) Prop {
	if kx, ok := x.(K); ok {
		if ky, ok := y.(K); ok {
			if kx.Val.Compare(ky.Val) > 0 {
				return True{}
			}
			return False{}
		}
	}
	if isZeroLit(y) {
		return Not{P: Eq{X: x, Y: zero}}
	}
	return And{
		L: Fin{E: y},
		R: Or{
			L: Eq{X: x, Y: inf},
			R: And{L: Fin{E: x}, R: natOp(x, y, func(a, b Expr) Prop { return StrictGt{X: a, Y: b} })},
		},
	}
}
