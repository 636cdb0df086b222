package custom

import "testing"

func TestEncodeDecodeUnitRoundTrip(t *testing.T) {
	for _, n := range []uint16{0, 1, 17, 255, 512, 777, 1023} {
		tup, err := EncodeUnit(n)
		if err != nil {
			t.Fatalf("EncodeUnit(%d): %v", n, err)
		}
		if !IsUnit(tup) {
			t.Fatalf("EncodeUnit(%d) should produce a recognizable custom unit", n)
		}
		got, ok := DecodeUnit(tup)
		if !ok || got != n {
			t.Errorf("round trip for %d: got %d, ok=%v", n, got, ok)
		}
	}
}

func TestEncodeUnitRejectsOutOfRange(t *testing.T) {
	if _, err := EncodeUnit(1024); err == nil {
		t.Error("expected an error for index 1024 (max is 1023)")
	}
}

func TestDecodeUnitRejectsNonCustomTuple(t *testing.T) {
	tup, _ := EncodeCountUnit(3)
	if _, ok := DecodeUnit(tup); ok {
		t.Error("a custom count unit tuple should not decode as a custom unit")
	}
}

func TestEncodeDecodeCountUnitRoundTrip(t *testing.T) {
	for n := uint8(0); n <= 15; n++ {
		tup, err := EncodeCountUnit(n)
		if err != nil {
			t.Fatalf("EncodeCountUnit(%d): %v", n, err)
		}
		if !IsCountUnit(tup) {
			t.Fatalf("EncodeCountUnit(%d) should produce a recognizable custom count unit", n)
		}
		got, ok := DecodeCountUnit(tup)
		if !ok || got != n {
			t.Errorf("round trip for %d: got %d, ok=%v", n, got, ok)
		}
	}
}

func TestEncodeCountUnitRejectsOutOfRange(t *testing.T) {
	if _, err := EncodeCountUnit(16); err == nil {
		t.Error("expected an error for index 16 (max is 15)")
	}
}

func TestCustomUnitAndCountUnitSentinelsDoNotOverlap(t *testing.T) {
	u, _ := EncodeUnit(42)
	c, _ := EncodeCountUnit(7)
	if IsCountUnit(u) {
		t.Error("a custom unit should not be mistaken for a custom count unit")
	}
	if IsUnit(c) {
		t.Error("a custom count unit should not be mistaken for a custom unit")
	}
}
