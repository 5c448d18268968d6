package asterrors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewAndIs(t *testing.T) {
	err := New(WidthError, "operand widths differ", "left", uint32(8), "right", uint32(16))
	require.True(t, Is(err, WidthError))
	require.False(t, Is(err, ArityError))

	left, ok := GetParameter(err, "left")
	require.True(t, ok)
	require.Equal(t, uint32(8), left)

	_, ok = GetParameter(err, "missing")
	require.False(t, ok)
}

func TestWrapUnwraps(t *testing.T) {
	cause := errors.New("solver timed out")
	err := Wrap(SolverError, cause, "solver bridge failed")
	require.True(t, Is(err, SolverError))
	require.ErrorIs(t, err, cause)
}

func TestOddKeyValuePanics(t *testing.T) {
	require.Panics(t, func() {
		New(RangeError, "bad size", "size")
	})
}

func TestNonAstErrorIsReturnsFalse(t *testing.T) {
	require.False(t, Is(errors.New("plain"), RangeError))
	_, ok := GetParameter(errors.New("plain"), "x")
	require.False(t, ok)
}
