package utils

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncomparability(t *testing.T) {
	type dummyType struct {
		_ [4]uint64
	}

	type dummyTypeIncomparable struct {
		MakeIncomparable
		_ [4]uint64
	}

	comparable := reflect.TypeOf(dummyType{})
	incomparable := reflect.TypeOf(dummyTypeIncomparable{})

	require.True(t, comparable.Comparable())
	require.False(t, incomparable.Comparable())
	require.Equal(t, comparable.Size(), incomparable.Size(), "MakeIncomparable must not change memory layout size")
}
