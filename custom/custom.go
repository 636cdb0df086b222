// Package custom implements component J: up to 1024 opaque user-domain
// units and 16 opaque count units, encoded as reserved exponent-tuple
// patterns. The mole/ampere fields act as sentinels marking a tuple as a
// custom unit (kelvin/ampere for a custom count unit); the remaining bits
// carry the opaque index.
package custom

import (
	"errors"

	"github.com/vantara-labs/units/dims"
)

// ErrIndexOutOfRange is returned when an index exceeds the custom (count)
// unit space: 1024 opaque units, or 16 opaque count units.
var ErrIndexOutOfRange = errors.New("custom: index out of range")

const (
	unitMoleSentinel    = -2
	unitAmpereSentinel  = -3
	countKelvinSentinel = -3
	countAmpereSentinel = 3
)

func signExtend(raw uint32, width uint) int32 {
	signBit := uint32(1) << (width - 1)
	if raw&signBit != 0 {
		return int32(raw) - int32(signBit<<1)
	}
	return int32(raw)
}

func truncate(v int32, width uint) uint32 {
	return uint32(v) & ((1 << width) - 1)
}

// EncodeUnit builds the dims.Tuple for custom unit n (0..1023). The
// index's 10 bits are spread across the per-unit/i/e flags (3 bits) and
// the candela, currency, and kelvin fields (2+2+3 bits); mole and ampere
// carry fixed sentinel values that mark the tuple as a custom unit.
func EncodeUnit(n uint16) (dims.Tuple, error) {
	if n > 1023 {
		return dims.Tuple{}, ErrIndexOutOfRange
	}
	v := uint32(n)

	flags := v & 0x7
	candelaRaw := (v >> 3) & 0x3
	currencyRaw := (v >> 5) & 0x3
	kelvinRaw := (v >> 7) & 0x7

	perUnit := flags&0x1 != 0
	iFlag := flags&0x2 != 0
	eFlag := flags&0x4 != 0

	return dims.New(
		0, 0, 0,
		unitAmpereSentinel,
		signExtend(candelaRaw, 2),
		signExtend(kelvinRaw, 3),
		unitMoleSentinel,
		0,
		signExtend(currencyRaw, 2),
		0,
		perUnit, iFlag, eFlag, false,
	)
}

// IsUnit reports whether tup carries the custom-unit sentinel pattern.
func IsUnit(tup dims.Tuple) bool {
	return tup.Mole() == unitMoleSentinel && tup.Ampere() == unitAmpereSentinel
}

// DecodeUnit reverses EncodeUnit. ok is false if tup is not a custom unit.
func DecodeUnit(tup dims.Tuple) (n uint16, ok bool) {
	if !IsUnit(tup) {
		return 0, false
	}
	var flags uint32
	if tup.PerUnit() {
		flags |= 0x1
	}
	if tup.IFlag() {
		flags |= 0x2
	}
	if tup.EFlag() {
		flags |= 0x4
	}
	candelaRaw := truncate(tup.Candela(), 2)
	currencyRaw := truncate(tup.Currency(), 2)
	kelvinRaw := truncate(tup.Kelvin(), 3)

	v := flags | (candelaRaw << 3) | (currencyRaw << 5) | (kelvinRaw << 7)
	return uint16(v), true
}

// EncodeCountUnit builds the dims.Tuple for custom count unit n (0..15).
func EncodeCountUnit(n uint8) (dims.Tuple, error) {
	if n > 15 {
		return dims.Tuple{}, ErrIndexOutOfRange
	}
	v := uint32(n)
	flags := v & 0x7
	candelaBit := (v >> 3) & 0x1

	perUnit := flags&0x1 != 0
	iFlag := flags&0x2 != 0
	eFlag := flags&0x4 != 0

	candela := int32(0)
	if candelaBit != 0 {
		candela = 1
	}

	return dims.New(
		0, 0, 0,
		countAmpereSentinel,
		candela,
		countKelvinSentinel,
		0, 0, 0, 0,
		perUnit, iFlag, eFlag, false,
	)
}

// IsCountUnit reports whether tup carries the custom-count-unit sentinel
// pattern.
func IsCountUnit(tup dims.Tuple) bool {
	return tup.Kelvin() == countKelvinSentinel && tup.Ampere() == countAmpereSentinel
}

// DecodeCountUnit reverses EncodeCountUnit.
func DecodeCountUnit(tup dims.Tuple) (n uint8, ok bool) {
	if !IsCountUnit(tup) {
		return 0, false
	}
	var flags uint32
	if tup.PerUnit() {
		flags |= 0x1
	}
	if tup.IFlag() {
		flags |= 0x2
	}
	if tup.EFlag() {
		flags |= 0x4
	}
	if tup.Candela() != 0 {
		flags |= 0x8
	}
	return uint8(flags), true
}
