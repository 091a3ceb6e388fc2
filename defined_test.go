package natinf

import "testing"

func TestDefinedConstAndVar(t *testing.T) {
	if !defined(K{Val: NatUint64(3)}).Equal(True{}) {
		t.Errorf("defined(K) should be True")
	}
	if !defined(va(0)).Equal(True{}) {
		t.Errorf("defined(Var) should be True")
	}
}

// TestDefinedDiv is the S7 scenario: defined(Div x y) = defined x &&
// defined y && fin x && not (y == 0), then further simplified (definedness
// of a Var is already True, so this collapses).
func TestDefinedDiv(t *testing.T) {
	x, y := va(0), va(1)
	got := Simplify(defined(DivE{X: x, Y: y}))
	want := Simplify(And{
		L: And{L: defined(x), R: defined(y)},
		R: And{L: Fin{E: x}, R: Not{P: Eq{X: y, Y: zero}}},
	})
	if !got.Equal(want) {
		t.Errorf("defined(Div x y) simplified = %s, want %s", Sprint(got), Sprint(want))
	}
}

func TestDefinedSubRequiresFiniteSubtrahendAndGe(t *testing.T) {
	x, y := va(0), va(1)
	d := defined(Sub{X: x, Y: y})
	and, ok := d.(And)
	if !ok {
		t.Fatalf("defined(x - y) should be an And, got %#v", d)
	}
	// The side condition (fin(y) && x >= y) should appear somewhere in the
	// conjunction.
	found := false
	var walk func(Prop)
	walk = func(p Prop) {
		if a, ok := p.(And); ok {
			if f, ok := a.L.(Fin); ok {
				if v, ok := f.E.(Var); ok && v.Name == Name(1) {
					if ge, ok := a.R.(Ge); ok && ge.X.Equal(x) && ge.Y.Equal(y) {
						found = true
					}
				}
			}
			walk(a.L)
			walk(a.R)
		}
	}
	walk(and)
	if !found {
		t.Errorf("defined(x - y) = %s, expected fin(y) && x >= y as a conjunct", Sprint(d))
	}
}

func TestDefinedLenFromThenRequiresDistinctFiniteEndpoints(t *testing.T) {
	x, y, w := va(0), va(1), va(2)
	d := Simplify(defined(LenFromThen{X: x, Y: y, W: w}))
	// Must entail not(x == y) and fin on all three — spot check via a
	// fresh simplify of the conjunction against an equivalent formula.
	want := Simplify(And{
		L: And{L: defined(x), R: And{L: defined(y), R: defined(w)}},
		R: And{L: Fin{E: x}, R: And{L: Fin{E: y}, R: And{L: Fin{E: w}, R: Not{P: Eq{X: x, Y: y}}}}},
	})
	if !d.Equal(want) {
		t.Errorf("defined(LenFromThen x y w) simplified = %s, want %s", Sprint(d), Sprint(want))
	}
}
