package natinf

// finAtom reports whether p is the boolean atom fin(Var n) (returning
// val=true) or its negation not(fin(Var n)) (val=false). Only these two
// shapes ever trigger the and-rule's finiteness-propagation step.
func finAtom(p Prop) (n Name, val bool, ok bool) {
	switch t := p.(type) {
	case Fin:
		if v, isVar := t.E.(Var); isVar {
			return v.Name, true, true
		}
	case Not:
		if f, isFin := t.P.(Fin); isFin {
			if v, isVar := f.E.(Var); isVar {
				return v.Name, false, true
			}
		}
	}
	return 0, false, false
}

// substFinVar rewrites every occurrence of the atom fin(Var n) inside p to
// True (val) or False (!val), descending through And/Or/Not — the only
// connectives a boolean fin-atom can be buried under. Any other node is
// returned unchanged: this is a substitution over Prop's boolean structure,
// not a substitution into the Expr arguments of Eq/Gt/etc.
func substFinVar(p Prop, n Name, val bool) Prop {
	switch t := p.(type) {
	case Fin:
		if v, isVar := t.E.(Var); isVar && v.Name == n {
			if val {
				return True{}
			}
			return False{}
		}
		return p
	case And:
		return And{L: substFinVar(t.L, n, val), R: substFinVar(t.R, n, val)}
	case Or:
		return Or{L: substFinVar(t.L, n, val), R: substFinVar(t.R, n, val)}
	case Not:
		return Not{P: substFinVar(t.P, n, val)}
	default:
		return p
	}
}

// stepAnd applies the one-step and(p,q) rule (§4.C): the True/False
// constant folds, the right-associating normal form for conjunction
// chains, and finiteness propagation when one conjunct is a boolean
// fin-atom on a variable.
func stepAnd(p And) (Prop, bool) {
	if _, ok := p.L.(True); ok {
		return p.R, true
	}
	if _, ok := p.L.(False); ok {
		return False{}, true
	}
	if lp, ok := p.L.(And); ok {
		return And{L: lp.L, R: And{L: lp.R, R: p.R}}, true
	}
	if n, val, ok := finAtom(p.L); ok {
		if newR := substFinVar(p.R, n, val); !newR.Equal(p.R) {
			return And{L: p.L, R: newR}, true
		}
	}
	if n, val, ok := finAtom(p.R); ok {
		if newL := substFinVar(p.L, n, val); !newL.Equal(p.L) {
			return And{L: newL, R: p.R}, true
		}
	}
	return p, false
}

// stepOr applies the one-step or(p,q) rule (§4.C): duals of the and-rule's
// constant folds and right-associating normal form, with no propagation.
func stepOr(p Or) (Prop, bool) {
	if _, ok := p.L.(True); ok {
		return True{}, true
	}
	if _, ok := p.L.(False); ok {
		return p.R, true
	}
	if lp, ok := p.L.(Or); ok {
		return Or{L: lp.L, R: Or{L: lp.R, R: p.R}}, true
	}
	return p, false
}
