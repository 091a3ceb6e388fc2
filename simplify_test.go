package natinf

import "testing"

// S1: a == 0 has no variable rule; (a+b) == 0 does.
func TestScenarioS1(t *testing.T) {
	a := va(0)
	if got := Simplify(Eq{X: a, Y: zero}); !got.Equal(Eq{X: a, Y: zero}) {
		t.Errorf("S1: simplify(a == 0) = %s, want a == 0 unchanged", Sprint(got))
	}

	b := va(1)
	got := Simplify(Eq{X: Add{X: a, Y: b}, Y: zero})
	want := And{L: Eq{X: a, Y: zero}, R: Eq{X: b, Y: zero}}
	if !got.Equal(want) {
		t.Errorf("S1: simplify((a+b) == 0) = %s, want %s", Sprint(got), Sprint(want))
	}
}

// S2: fin (a + b) -> fin a && fin b.
func TestScenarioS2(t *testing.T) {
	a, b := va(0), va(1)
	got := Simplify(Fin{E: Add{X: a, Y: b}})
	want := And{L: Fin{E: a}, R: Fin{E: b}}
	if !got.Equal(want) {
		t.Errorf("S2: simplify(fin(a+b)) = %s, want %s", Sprint(got), Sprint(want))
	}
}

// S3: (a*b) == inf unfolded from Min(a*b, inf*(inf*(c+d))) == (a*b) via
// natOp must simplify to a Prop with no inf subterms anywhere.
func TestScenarioS3(t *testing.T) {
	a, b, c, d := va(0), va(1), va(2), va(3)
	ab := Mul{X: a, Y: b}
	lhs := Min{X: ab, Y: Mul{X: inf, Y: Mul{X: inf, Y: Add{X: c, Y: d}}}}
	got := Simplify(Eq{X: lhs, Y: ab})

	var walk func(Prop)
	walk = func(p Prop) {
		switch n := p.(type) {
		case Fin:
			if containsInfLit(n.E) {
				t.Errorf("S3: fin(%s) still contains inf", SprintExpr(n.E))
			}
		case Eq:
			if containsInfLit(n.X) || containsInfLit(n.Y) {
				t.Errorf("S3: Eq(%s, %s) still contains inf", SprintExpr(n.X), SprintExpr(n.Y))
			}
		case Ge:
			if containsInfLit(n.X) || containsInfLit(n.Y) {
				t.Errorf("S3: Ge still contains inf")
			}
		case Gt:
			if containsInfLit(n.X) || containsInfLit(n.Y) {
				t.Errorf("S3: Gt still contains inf")
			}
		case StrictEq:
			if containsInfLit(n.X) || containsInfLit(n.Y) {
				t.Errorf("S3: StrictEq still contains inf")
			}
		case StrictGt:
			if containsInfLit(n.X) || containsInfLit(n.Y) {
				t.Errorf("S3: StrictGt still contains inf")
			}
		case And:
			walk(n.L)
			walk(n.R)
		case Or:
			walk(n.L)
			walk(n.R)
		case Not:
			walk(n.P)
		case True, False:
		default:
			t.Fatalf("S3: unexpected Prop node %#v", p)
		}
	}
	walk(got)
}

// S4: not (x == inf) -> fin x.
func TestScenarioS4(t *testing.T) {
	x := va(0)
	got := Simplify(Not{P: Eq{X: x, Y: inf}})
	if !got.Equal(Fin{E: x}) {
		t.Errorf("S4: simplify(not(x == inf)) = %s, want fin(x)", Sprint(got))
	}
}

// S5: not (x >= y) -> y > x, expanded by the :> rule to
// fin x && (y == inf || fin y && y :>: x), with the y == inf atom itself
// further reduced by the :== rule to not(fin y).
func TestScenarioS5(t *testing.T) {
	x, y := va(0), va(1)
	got := Simplify(Not{P: Ge{X: x, Y: y}})
	want := And{
		L: Fin{E: x},
		R: Or{
			L: Not{P: Fin{E: y}},
			R: And{L: Fin{E: y}, R: StrictGt{X: y, Y: x}},
		},
	}
	if !got.Equal(want) {
		t.Errorf("S5: simplify(not(x >= y)) = %s, want %s", Sprint(got), Sprint(want))
	}
}

// S6: fin(Var a) && fin(a + b) -> fin(Var a) && fin b.
func TestScenarioS6(t *testing.T) {
	aName := Name(0)
	a, b := Var{Name: aName}, va(1)
	got := Simplify(And{L: Fin{E: a}, R: Fin{E: Add{X: a, Y: b}}})
	want := And{L: Fin{E: a}, R: Fin{E: b}}
	if !got.Equal(want) {
		t.Errorf("S6: simplify(fin(a) && fin(a+b)) = %s, want %s", Sprint(got), Sprint(want))
	}
}

// S7: defined(Div x y) simplifies away the trivially-True definedness of
// the two variables, leaving fin x && not(y == 0).
func TestScenarioS7(t *testing.T) {
	x, y := va(0), va(1)
	got := Simplify(defined(DivE{X: x, Y: y}))
	want := And{L: Fin{E: x}, R: Not{P: Eq{X: y, Y: zero}}}
	if !got.Equal(want) {
		t.Errorf("S7: simplify(defined(Div x y)) = %s, want %s", Sprint(got), Sprint(want))
	}
}

func TestSimplifyIdempotent(t *testing.T) {
	a, b := va(0), va(1)
	inputs := []Prop{
		Eq{X: Add{X: a, Y: b}, Y: zero},
		Fin{E: Add{X: a, Y: b}},
		Not{P: Ge{X: a, Y: b}},
		And{L: Fin{E: a}, R: Fin{E: Add{X: a, Y: b}}},
		Eq{X: Mul{X: a, Y: b}, Y: inf},
		defined(LenFromThenTo{X: a, Y: b, Z: va(2)}),
	}
	for _, p := range inputs {
		once := Simplify(p)
		twice := Simplify(once)
		if !once.Equal(twice) {
			t.Errorf("Simplify not idempotent on %s: once=%s twice=%s", Sprint(p), Sprint(once), Sprint(twice))
		}
		if _, ok := simpStep(once); ok {
			t.Errorf("simpStep(Simplify(%s)) should report no further step", Sprint(p))
		}
	}
}

func TestSimpStepsStartsWithInputAndEndsAtFixpoint(t *testing.T) {
	a, b := va(0), va(1)
	p := Eq{X: Add{X: a, Y: b}, Y: zero}

	var steps []Prop
	for s := range SimpSteps(p) {
		steps = append(steps, s)
	}
	if len(steps) == 0 {
		t.Fatal("SimpSteps produced no steps")
	}
	if !steps[0].Equal(p) {
		t.Errorf("first SimpSteps element = %s, want the input %s", Sprint(steps[0]), Sprint(p))
	}
	last := steps[len(steps)-1]
	if !last.Equal(Simplify(p)) {
		t.Errorf("last SimpSteps element = %s, want Simplify(p) = %s", Sprint(last), Sprint(Simplify(p)))
	}
	if _, ok := simpStep(last); ok {
		t.Errorf("last SimpSteps element should be a fixpoint")
	}
}

func TestSimpStepsEarlyBreakDoesNotPanic(t *testing.T) {
	a, b := va(0), va(1)
	p := Eq{X: Add{X: a, Y: b}, Y: zero}
	count := 0
	for range SimpSteps(p) {
		count++
		if count == 1 {
			break
		}
	}
	if count != 1 {
		t.Errorf("expected to stop after exactly one step, got %d", count)
	}
}
