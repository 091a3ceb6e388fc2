package natinf

// stepNot applies the one-step not(p) rule (§4.C): push the negation
// inward one layer, or decide it outright when p is already a constant.
// The second return value reports whether a rewrite fired; simpStep falls
// through to congruence on p itself when it does not.
func stepNot(p Not) (Prop, bool) {
	switch inner := p.P.(type) {
	case True:
		return False{}, true
	case False:
		return True{}, true
	case Not:
		return inner.P, true
	case And:
		return Or{L: Not{P: inner.L}, R: Not{P: inner.R}}, true
	case Or:
		return And{L: Not{P: inner.L}, R: Not{P: inner.R}}, true
	case Ge:
		return Gt{X: inner.Y, Y: inner.X}, true
	case Gt:
		return Ge{X: inner.Y, Y: inner.X}, true
	case Eq:
		if isInfLit(inner.X) {
			return Fin{E: inner.Y}, true
		}
		if isInfLit(inner.Y) {
			return Fin{E: inner.X}, true
		}
		return p, false
	default:
		// not(fin _), not(x :== y) without an Inf literal, and not of the
		// two strict predicates are all left unchanged: there's no local
		// rule for any of them.
		return p, false
	}
}
