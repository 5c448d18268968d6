package wideint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRotL512(t *testing.T) {
	v := FromUint64(1)
	rotated := RotL512(v, 1)
	require.Equal(t, FromUint64(2), rotated)

	// rotating by 512 is a no-op
	require.Equal(t, v, RotL512(v, 512))
}

func TestPowIsRepeatedSquaringNotExponentiation(t *testing.T) {
	h := FromUint64(2)
	// squaring twice: 2 -> 4 -> 16 = 2^(2^2), not 2^2 = 4 as exponent-by-n would give.
	got := Pow(h, 2)
	require.Equal(t, FromUint64(16), got)
}

func TestModularSignExtendPositive(t *testing.T) {
	e := FromUint64(0x7F) // top bit of an 8-bit field clear
	s := ModularSignExtend(e, 8)
	require.False(t, s.IsNegative())
	require.Equal(t, FromUint64(0x7F), s.U512())
}

func TestModularSignExtendNegative(t *testing.T) {
	e := FromUint64(0x80) // top bit of an 8-bit field set -> -128
	s := ModularSignExtend(e, 8)
	require.True(t, s.IsNegative())
}

func TestSignedDivModSignFollowsDividend(t *testing.T) {
	// -7 rem 3 == -1 (sign follows dividend), matching bvsrem semantics.
	negSeven := S512(FromUint64(7)).Neg()
	three := S512(FromUint64(3))
	_, r := negSeven.DivMod(three)
	require.True(t, r.IsNegative())
}
