package solver_test

import (
	"testing"

	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/astnodes"
	"github.com/kschiffer/bvast/solver"
	"github.com/kschiffer/bvast/wideint"
	"github.com/stretchr/testify/require"
)

func bv(t *testing.T, value uint64, size uint32) *astnodes.Node {
	t.Helper()
	n, err := astnodes.NewBV(astnodes.NewDecimal(wideint.FromUint64(value)), astnodes.NewDecimal(wideint.FromUint64(uint64(size))))
	require.NoError(t, err)
	return n
}

func TestNullBridgeSimplifyClones(t *testing.T) {
	root, err := astnodes.NewBVAdd(bv(t, 1, 8), bv(t, 2, 8))
	require.NoError(t, err)

	var bridge solver.Bridge = solver.NullBridge{}
	got, err := bridge.Simplify(root)
	require.NoError(t, err)
	require.NotSame(t, root, got)
	require.True(t, root.EqualTo(got))
}

func TestNullBridgeEvaluateReadsCache(t *testing.T) {
	root, err := astnodes.NewBVAdd(bv(t, 1, 8), bv(t, 2, 8))
	require.NoError(t, err)

	bridge := solver.NullBridge{}
	got, err := bridge.Evaluate(root)
	require.NoError(t, err)
	require.Equal(t, root.Evaluate(), got)
}

func TestNullBridgeModelSearchUnsupported(t *testing.T) {
	constraint, err := astnodes.NewEqual(bv(t, 1, 8), bv(t, 1, 8))
	require.NoError(t, err)

	bridge := solver.NullBridge{}
	_, err = bridge.GetModel(constraint)
	require.Error(t, err)
	require.True(t, asterrors.Is(err, asterrors.SolverError))

	_, err = bridge.GetModels(constraint, 5)
	require.Error(t, err)
	require.True(t, asterrors.Is(err, asterrors.SolverError))
}

func TestModelCarriesRoot(t *testing.T) {
	root := bv(t, 1, 8)
	m := solver.Model{ID: 1, Kind: "sat", Comment: "test", Origin: "unit", Root: root}
	require.Same(t, root, m.Root)
}
