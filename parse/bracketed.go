package parse

import (
	"hash/fnv"
	"strconv"
	"strings"

	"github.com/vantara-labs/units/custom"
	"github.com/vantara-labs/units/equation"
	"github.com/vantara-labs/units/unit"
)

// parseCustomCode implements phase 16: the numeric custom-index
// decoders "CXUN[n]", "CXCUN[n]", "EQXUN[n]".
func parseCustomCode(s string) (unit.Precise, bool) {
	switch {
	case strings.HasPrefix(s, "CXUN[") && strings.HasSuffix(s, "]"):
		n, err := strconv.ParseUint(s[len("CXUN[") : len(s)-1], 10, 16)
		if err != nil {
			return unit.Precise{}, false
		}
		d, err := custom.EncodeUnit(uint16(n))
		if err != nil {
			return unit.Precise{}, false
		}
		return unit.Precise{Dims: d, Multiplier: 1}, true
	case strings.HasPrefix(s, "CXCUN[") && strings.HasSuffix(s, "]"):
		n, err := strconv.ParseUint(s[len("CXCUN[") : len(s)-1], 10, 8)
		if err != nil {
			return unit.Precise{}, false
		}
		d, err := custom.EncodeCountUnit(uint8(n))
		if err != nil {
			return unit.Precise{}, false
		}
		return unit.Precise{Dims: d, Multiplier: 1}, true
	case strings.HasPrefix(s, "EQXUN[") && strings.HasSuffix(s, "]"):
		n, err := strconv.ParseUint(s[len("EQXUN[") : len(s)-1], 10, 8)
		if err != nil {
			return unit.Precise{}, false
		}
		d, err := equation.EncodeTuple(equation.Type(n), false)
		if err != nil {
			return unit.Precise{}, false
		}
		return unit.Precise{Dims: d, Multiplier: 1}, true
	}
	return unit.Precise{}, false
}

// parseBracketedCustom implements phase 11: "[name]" and
// "[name'u]" denote an opaque custom unit, "{name}" and "{name index}" an
// opaque custom count unit; the name (whatever it is) is hashed into the
// fixed-size custom slot space (1024 units, 16 count units). Round-trip
// fidelity is over the resulting unit value, not the original spelling —
// serialize emits "CXUN[n]"/"CXCUN[n]" for these, per step 6.
func parseBracketedCustom(s string) (unit.Precise, bool) {
	if len(s) < 3 {
		return unit.Precise{}, false
	}
	switch {
	case s[0] == '[' && s[len(s)-1] == ']':
		name := strings.TrimSuffix(s[1:len(s)-1], "'u")
		n := hashSlot(name, 1024)
		d, err := custom.EncodeUnit(uint16(n))
		if err != nil {
			return unit.Precise{}, false
		}
		return unit.Precise{Dims: d, Multiplier: 1}, true
	case s[0] == '{' && s[len(s)-1] == '}':
		name := s[1 : len(s)-1]
		if idx := strings.IndexByte(name, ' '); idx >= 0 {
			name = name[:idx]
		}
		name = strings.TrimSuffix(name, "'u")
		n := hashSlot(name, 16)
		d, err := custom.EncodeCountUnit(uint8(n))
		if err != nil {
			return unit.Precise{}, false
		}
		return unit.Precise{Dims: d, Multiplier: 1}, true
	}
	return unit.Precise{}, false
}

func hashSlot(name string, modulus uint32) uint32 {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	return h.Sum32() % modulus
}
