package natinf

import (
	"math/big"
	"testing"
)

func TestNatEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Nat
		want bool
	}{
		{"inf equals inf", NatInf, NatInf, true},
		{"inf not equal finite", NatInf, NatUint64(0), false},
		{"finite not equal inf", NatUint64(5), NatInf, false},
		{"equal finite", NatUint64(5), NatUint64(5), true},
		{"unequal finite", NatUint64(5), NatUint64(6), false},
		{"zero value equals zero", Nat{}, NatUint64(0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNatCompare(t *testing.T) {
	if NatInf.Compare(NatUint64(1000)) <= 0 {
		t.Errorf("Inf should compare greater than any finite value")
	}
	if NatUint64(1000).Compare(NatInf) >= 0 {
		t.Errorf("a finite value should compare less than Inf")
	}
	if NatInf.Compare(NatInf) != 0 {
		t.Errorf("Inf should compare equal to itself")
	}
	if NatUint64(3).Compare(NatUint64(5)) >= 0 {
		t.Errorf("3 should compare less than 5")
	}
}

func TestNatIsZeroIsOne(t *testing.T) {
	if !NatUint64(0).IsZero() {
		t.Errorf("NatUint64(0).IsZero() = false, want true")
	}
	if NatInf.IsZero() {
		t.Errorf("NatInf.IsZero() = true, want false")
	}
	if !NatUint64(1).IsOne() {
		t.Errorf("NatUint64(1).IsOne() = false, want true")
	}
	if NatUint64(0).IsOne() {
		t.Errorf("NatUint64(0).IsOne() = true, want false")
	}
}

func TestNatNPanicsOnNegative(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("NatN(-1) should panic, did not")
		}
	}()
	NatN(big.NewInt(-1))
}

func TestNatString(t *testing.T) {
	if NatInf.String() != "inf" {
		t.Errorf("NatInf.String() = %q, want %q", NatInf.String(), "inf")
	}
	if NatUint64(42).String() != "42" {
		t.Errorf("NatUint64(42).String() = %q, want %q", NatUint64(42).String(), "42")
	}
}
