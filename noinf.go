package natinf

// noInf lifts every occurrence of the literal constant ∞ out of e,
// producing a decision tree whose Return leaves are ∞-free (except for the
// handful of rules below that deliberately fold straight to the literal
// inf leaf) and whose If predicates are strict comparisons on finite
// sub-expressions (§4.E).
//
// noInf only ever reacts to a *syntactically literal* K(Inf) node appearing
// in e (isInfLit, expr.go); it has no opinion about what value an opaque
// Var might take at runtime — that question belongs to the fin(Var _)
// atoms produced elsewhere in this package, never to noInf.
func noInf(e Expr) IfExpr[Expr] {
	switch n := e.(type) {
	case K, Var:
		return Return(e)

	case Add:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			return Bind(noInf(n.Y), func(y Expr) IfExpr[Expr] {
				if isInfLit(x) || isInfLit(y) {
					return Return[Expr](inf)
				}
				return Return[Expr](Add{X: x, Y: y})
			})
		})

	case Max:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			return Bind(noInf(n.Y), func(y Expr) IfExpr[Expr] {
				if isInfLit(x) || isInfLit(y) {
					return Return[Expr](inf)
				}
				return Return[Expr](Max{X: x, Y: y})
			})
		})

	case Sub:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			return Bind(noInf(n.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isInfLit(y):
					return Impossible[Expr]()
				case isInfLit(x):
					return Return[Expr](inf)
				default:
					return Return[Expr](Sub{X: x, Y: y})
				}
			})
		})

	case DivE:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			return Bind(noInf(n.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isInfLit(x):
					return Impossible[Expr]()
				case isInfLit(y):
					return Return[Expr](zero)
				default:
					return Return[Expr](DivE{X: x, Y: y})
				}
			})
		})

	case ModE:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			return Bind(noInf(n.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isInfLit(x):
					return Impossible[Expr]()
				case isInfLit(y):
					return Return[Expr](x)
				default:
					return Return[Expr](ModE{X: x, Y: y})
				}
			})
		})

	case Min:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			return Bind(noInf(n.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isInfLit(x):
					return Return[Expr](y)
				case isInfLit(y):
					return Return[Expr](x)
				default:
					return Return[Expr](Min{X: x, Y: y})
				}
			})
		})

	case Lg2:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			if isInfLit(x) {
				return Return[Expr](inf)
			}
			return Return[Expr](Lg2{X: x})
		})

	case Width:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			if isInfLit(x) {
				return Return[Expr](inf)
			}
			return Return[Expr](Width{X: x})
		})

	case Mul:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			return Bind(noInf(n.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isInfLit(x) && isInfLit(y):
					return Return[Expr](inf)
				case isInfLit(x):
					return If[Expr](StrictEq{X: y, Y: zero}, Return[Expr](zero), Return[Expr](inf))
				case isInfLit(y):
					return If[Expr](StrictEq{X: x, Y: zero}, Return[Expr](zero), Return[Expr](inf))
				default:
					return Return[Expr](Mul{X: x, Y: y})
				}
			})
		})

	case Exp:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			return Bind(noInf(n.Y), func(y Expr) IfExpr[Expr] {
				switch {
				case isInfLit(x) && isInfLit(y):
					return Return[Expr](inf)
				case isInfLit(x):
					return If[Expr](StrictEq{X: y, Y: zero}, Return[Expr](one), Return[Expr](inf))
				case isInfLit(y):
					return If[Expr](StrictEq{X: x, Y: zero}, Return[Expr](zero),
						If[Expr](StrictEq{X: x, Y: one}, Return[Expr](one), Return[Expr](inf)))
				default:
					return Return[Expr](Exp{X: x, Y: y})
				}
			})
		})

	case LenFromThen:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			return Bind(noInf(n.Y), func(y Expr) IfExpr[Expr] {
				return Bind(noInf(n.W), func(w Expr) IfExpr[Expr] {
					if isInfLit(x) || isInfLit(y) || isInfLit(w) {
						return Impossible[Expr]()
					}
					return Return[Expr](LenFromThen{X: x, Y: y, W: w})
				})
			})
		})

	case LenFromThenTo:
		return Bind(noInf(n.X), func(x Expr) IfExpr[Expr] {
			return Bind(noInf(n.Y), func(y Expr) IfExpr[Expr] {
				return Bind(noInf(n.Z), func(z Expr) IfExpr[Expr] {
					if isInfLit(x) || isInfLit(y) || isInfLit(z) {
						return Impossible[Expr]()
					}
					return Return[Expr](LenFromThenTo{X: x, Y: y, Z: z})
				})
			})
		})

	default:
		unreachable("noInf", e)
		panic("unreachable")
	}
}

// natOp is the bridge isEq/isGt use once their constant cases are handled
// (isEq also handles a top-level Inf literal first; isGt does not, and a
// top-level inf argument simply folds to False here): it lifts ∞ out of x
// and y via noInf, folds any branch where either side would still be ∞ to
// False (Impossible is absorbing and toProp(Impossible) = False), and
// builds the strict atom at every surviving leaf with atom.
//
// atom is StrictEq for isEq and StrictGt for isGt; natOp never folds a
// trivial atom like K(Nat 0) :==: K(Nat 0) itself (simpStep always leaves
// :==:/:>: as-is — deciding literal equalities is the external decision
// procedure's job, not this core's, §4.E).
func natOp(x, y Expr, atom func(x, y Expr) Prop) Prop {
	tree := Bind(noInf(x), func(xf Expr) IfExpr[Prop] {
		if isInfLit(xf) {
			return Impossible[Prop]()
		}
		return Bind(noInf(y), func(yf Expr) IfExpr[Prop] {
			if isInfLit(yf) {
				return Impossible[Prop]()
			}
			return Return[Prop](atom(xf, yf))
		})
	})
	return toProp(tree)
}
