package natinf

// defined conservatively encodes the partiality of e: the proposition it
// returns is a necessary condition for e to denote a value at all (§4.B).
// Every case is a conjunction of the subterms' own definedness plus any
// side condition listed below; simpStep is expected to fold the resulting
// And-chain, so defined does not bother simplifying it itself.
func defined(e Expr) Prop {
	switch n := e.(type) {
	case K, Var:
		return True{}

	case Add:
		return And{L: defined(n.X), R: defined(n.Y)}

	case Mul:
		return And{L: defined(n.X), R: defined(n.Y)}

	case Exp:
		return And{L: defined(n.X), R: defined(n.Y)}

	case Min:
		return And{L: defined(n.X), R: defined(n.Y)}

	case Max:
		return And{L: defined(n.X), R: defined(n.Y)}

	case Lg2:
		return defined(n.X)

	case Width:
		return defined(n.X)

	case Sub:
		// No negative results; ∞ - ∞ is undefined, so y must be finite and
		// x must be at least y.
		return and3(defined(n.X), defined(n.Y), And{L: Fin{E: n.Y}, R: Ge{X: n.X, Y: n.Y}})

	case DivE:
		// Div inf n is left undefined rather than inf; see the open
		// question this tracks in DESIGN.md.
		return and3(defined(n.X), defined(n.Y), And{L: Fin{E: n.X}, R: Not{P: Eq{X: n.Y, Y: zero}}})

	case ModE:
		return and3(defined(n.X), defined(n.Y), And{L: Fin{E: n.X}, R: Not{P: Eq{X: n.Y, Y: zero}}})

	case LenFromThen:
		return And{
			L: and3(defined(n.X), defined(n.Y), defined(n.W)),
			R: and3(Fin{E: n.X}, Fin{E: n.Y}, And{L: Fin{E: n.W}, R: Not{P: Eq{X: n.X, Y: n.Y}}}),
		}

	case LenFromThenTo:
		return And{
			L: and3(defined(n.X), defined(n.Y), defined(n.Z)),
			R: and3(Fin{E: n.X}, Fin{E: n.Y}, And{L: Fin{E: n.Z}, R: Not{P: Eq{X: n.X, Y: n.Y}}}),
		}

	default:
		unreachable("defined", e)
		panic("unreachable")
	}
}
