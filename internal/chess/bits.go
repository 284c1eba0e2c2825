package chess

import "math/bits"

// Uint128 is a 128-bit unsigned integer held as two 64-bit halves.
// Bit 0 is the least significant bit of Lo; bit 127 is the most
// significant bit of Hi.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// IsZero reports whether no bit is set.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Field returns the 2-bit field starting at bit shift. shift must be even
// and below 128, so a field never straddles the two halves.
func (u Uint128) Field(shift uint) uint64 {
	if shift < 64 {
		return (u.Lo >> shift) & 0b11
	}
	return (u.Hi >> (shift - 64)) & 0b11
}

// SetField returns u with the 2-bit field at bit shift replaced by v.
func (u Uint128) SetField(shift uint, v uint64) Uint128 {
	v &= 0b11
	if shift < 64 {
		u.Lo = u.Lo&^(0b11<<shift) | v<<shift
	} else {
		u.Hi = u.Hi&^(0b11<<(shift-64)) | v<<(shift-64)
	}
	return u
}

// Reverse returns u with all 128 bits in reverse order: bit i moves to bit
// 127-i. The halves are reversed individually and swapped.
func (u Uint128) Reverse() Uint128 {
	return Uint128{
		Hi: bits.Reverse64(u.Lo),
		Lo: bits.Reverse64(u.Hi),
	}
}

// OnesCount returns the number of set bits.
func (u Uint128) OnesCount() int {
	return bits.OnesCount64(u.Hi) + bits.OnesCount64(u.Lo)
}
