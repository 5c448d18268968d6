package wideint

import (
	"encoding/binary"
	"math/big"
)

// Pow performs iterated squaring: h is squared (mod 2^512) n times in a row,
// giving h^(2^n). This is NOT exponentiation by n (that would be h^n); it is the
// specific repeated-squaring primitive the structural hash mixing function
// needs, named to match that use rather than general-purpose exponentiation.
func Pow(h U512, n uint) U512 {
	for i := uint(0); i < n; i++ {
		h = Mul(h, h)
	}
	return h
}

// RotL512 rotates v left by s bits within the full 512-bit word; s is taken
// modulo 512 first.
func RotL512(v U512, s uint) U512 {
	s %= MaxBits
	if s == 0 {
		return v
	}
	return Or(Lsh(v, s), Rsh(v, MaxBits-s))
}

// ModularSignExtend reinterprets the low `size` bits of e as a signed
// integer and sign-extends it into a full-width S512: if the top bit (at
// position size-1) is set, the result is e with all bits above size-1 set
// to one; otherwise it is e unchanged (zero-extended).
func ModularSignExtend(e U512, size uint32) S512 {
	masked := MaskTo(e, size)
	if size == 0 || !IsNegativeAt(masked, size) {
		return S512(masked)
	}
	highBits := Xor(MaskLow(size), AllOnes) // ^((1<<size)-1)
	return S512(Or(masked, highBits))
}

// U512 reinterprets s with its native bit pattern as an unsigned value.
func (s S512) U512() U512 {
	return U512(s)
}

// IsNegative reports whether s is negative when interpreted at the full
// 512-bit width (i.e. its top bit is set).
func (s S512) IsNegative() bool {
	return IsNegativeAt(U512(s), MaxBits)
}

// Cmp compares x and y as 512-bit two's-complement signed integers.
func (x S512) Cmp(y S512) int {
	xNeg, yNeg := x.IsNegative(), y.IsNegative()
	if xNeg != yNeg {
		if xNeg {
			return -1
		}
		return 1
	}
	return Cmp(U512(x), U512(y))
}

// Neg returns -s mod 2^512.
func (s S512) Neg() S512 {
	return S512(Neg(U512(s)))
}

// DivMod returns the truncating (round-towards-zero) signed quotient and
// remainder of x/y, matching the C-family "sign follows dividend" rule that
// bvsrem relies on. Panics on y == 0; callers special-case the zero divisor.
func (x S512) DivMod(y S512) (q, r S512) {
	xNeg, yNeg := x.IsNegative(), y.IsNegative()
	ux, uy := U512(x), U512(y)
	if xNeg {
		ux = Neg(ux)
	}
	if yNeg {
		uy = Neg(uy)
	}
	uq, ur := DivMod(ux, uy)
	q, r = S512(uq), S512(ur)
	if xNeg != yNeg {
		q = q.Neg()
	}
	if xNeg {
		r = r.Neg()
	}
	return q, r
}

// FromBigInt converts a non-negative big.Int of at most 512 bits into a
// U512. It panics outside that range, which is appropriate since this is
// only used to materialize test fixtures and constants, not to process
// untrusted input.
func FromBigInt(x *big.Int) U512 {
	if x.Sign() < 0 {
		panic("wideint: FromBigInt: negative value")
	}
	if x.BitLen() > MaxBits {
		panic("wideint: FromBigInt: value does not fit in 512 bits")
	}
	var be [MaxBits / 8]byte
	x.FillBytes(be[:])
	var u U512
	for i := 0; i < numLimbs; i++ {
		// be is big-endian; limb 0 is the least significant 64 bits, i.e.
		// the last 8 bytes of be.
		off := len(be) - (i+1)*8
		u[i] = binary.BigEndian.Uint64(be[off : off+8])
	}
	return u
}

// BigInt converts u to a big.Int, treating it as unsigned.
func (u U512) BigInt() *big.Int {
	var be [MaxBits / 8]byte
	for i := 0; i < numLimbs; i++ {
		off := len(be) - (i+1)*8
		binary.BigEndian.PutUint64(be[off:off+8], u[i])
	}
	return new(big.Int).SetBytes(be[:])
}
