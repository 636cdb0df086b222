package unit

import (
	"testing"

	"github.com/vantara-labs/units/commodity"
	"github.com/vantara-labs/units/dims"
)

func meter() Precise {
	d, _ := dims.New(1, 0, 0, 0, 0, 0, 0, 0, 0, 0, false, false, false, false)
	return Precise{Dims: d, Multiplier: 1}
}

func second() Precise {
	d, _ := dims.New(0, 1, 0, 0, 0, 0, 0, 0, 0, 0, false, false, false, false)
	return Precise{Dims: d, Multiplier: 1}
}

func TestMulCommutative(t *testing.T) {
	m, s := meter(), second()
	if !Mul(m, s).Equal(Mul(s, m)) {
		t.Error("Mul should be commutative under tolerance equality")
	}
}

func TestMulAssociative(t *testing.T) {
	m, s := meter(), second()
	kg, _ := dims.New(0, 0, 1, 0, 0, 0, 0, 0, 0, 0, false, false, false, false)
	kgU := Precise{Dims: kg, Multiplier: 1}

	left := Mul(Mul(m, s), kgU)
	right := Mul(m, Mul(s, kgU))
	if !left.Equal(right) {
		t.Error("Mul should be associative under tolerance equality")
	}
}

func TestDivUndoesMul(t *testing.T) {
	m, s := meter(), second()
	product := Mul(m, s)
	back := Div(product, s)
	if !back.Equal(m) {
		t.Errorf("(m*s)/s should equal m, got %+v", back)
	}
}

func TestInvInvolution(t *testing.T) {
	m := meter()
	if !Inv(Inv(m)).Equal(m) {
		t.Error("Inv(Inv(a)) should equal a")
	}
}

func TestPowZero(t *testing.T) {
	m := meter()
	got := Pow(m, 0)
	if !got.Equal(One) {
		t.Errorf("pow(a, 0) should equal the dimensionless one, got %+v", got)
	}
}

func TestRootUndoesPow(t *testing.T) {
	m := meter()
	cubed := Pow(m, 3)
	back := Root(cubed, 3)
	if !back.Equal(m) {
		t.Errorf("root(pow(a,3),3) should equal a, got %+v", back)
	}
}

func TestRootOfNegativeMultiplierEvenRootIsError(t *testing.T) {
	m := meter()
	m.Multiplier = -4
	got := Root(m, 2)
	if !got.IsError() {
		t.Error("an even root of a negative-multiplier unit should be the error sentinel")
	}
}

func TestPowOverflowProducesError(t *testing.T) {
	m := meter()
	got := Pow(m, 8) // meter exponent field is 4 bits signed, max 7
	if !got.IsError() {
		t.Error("pow(m, 8) should overflow the 32-bit meter field")
	}
}

func TestCommodityInheritedOnMultiply(t *testing.T) {
	reg := commodity.NewRegistry()
	gold, _ := reg.Get("gold")
	kg, _ := dims.New(0, 0, 1, 0, 0, 0, 0, 0, 0, 0, false, false, false, false)
	kgGold := Precise{Dims: kg, Multiplier: 1, Commodity: gold}
	s := second()

	got := Mul(kgGold, s)
	if got.Commodity != gold {
		t.Errorf("multiplying by a commodity-free unit should inherit the commodity, got %d", got.Commodity)
	}
}

func TestInvertZeroCommodityIsZero(t *testing.T) {
	m := meter()
	if Inv(m).Commodity != commodity.None {
		t.Error("inverting a unit with no commodity should yield no commodity")
	}
}

func TestToFastDropsCommodity(t *testing.T) {
	reg := commodity.NewRegistry()
	gold, _ := reg.Get("gold")
	p := Precise{Dims: meter().Dims, Multiplier: 2.5, Commodity: gold}
	f := p.ToFast()
	if f.Multiplier != 2.5 {
		t.Errorf("ToFast should preserve the multiplier value, got %v", f.Multiplier)
	}
}

func TestInvalidVsErrorSentinels(t *testing.T) {
	if !ErrorUnit().IsError() {
		t.Error("ErrorUnit() should report IsError()")
	}
	if ErrorUnit().IsInvalid() {
		t.Error("ErrorUnit() should not report IsInvalid()")
	}
	if !InvalidUnit().IsInvalid() {
		t.Error("InvalidUnit() should report IsInvalid()")
	}
	if InvalidUnit().IsError() {
		t.Error("InvalidUnit() should not report IsError()")
	}
}
