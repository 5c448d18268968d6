package stack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	type S = Stack[int] // shortcut

	var s S = MakeStack[int]()
	require.True(t, s.Len() == 0)
	require.Panics(t, func() { s.Pop() })
	require.Panics(t, func() { s.Top() })
	require.True(t, s.IsEmpty())

	s.Push(10)
	x := 20
	s.PushPtr(&x)
	require.True(t, s.Len() == 2)
	top := s.Top()
	require.True(t, *top == 20)
	require.True(t, top != &x)
	*top = 19
	require.True(t, s.Pop() == 19)
	require.True(t, s.Pop() == 10)
	require.True(t, s.IsEmpty())
}
