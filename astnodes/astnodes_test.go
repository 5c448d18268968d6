package astnodes

import (
	"testing"

	"github.com/kschiffer/bvast/wideint"
	"github.com/stretchr/testify/require"
)

func mustBV(t *testing.T, value uint64, size uint32) *Node {
	t.Helper()
	n, err := NewBV(NewDecimal(wideint.FromUint64(value)), NewDecimal(wideint.FromUint64(uint64(size))))
	require.NoError(t, err)
	return n
}

func dec(v uint64) *Node { return NewDecimal(wideint.FromUint64(v)) }

// --- Concrete bit-exact scenarios ---

func TestScenario01BVAdd(t *testing.T) {
	n, err := NewBVAdd(mustBV(t, 0xFF, 8), mustBV(t, 0x02, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0x01), n.Evaluate().Uint64())
	require.EqualValues(t, 8, n.GetBitvectorSize())
}

func TestScenario02BVSub(t *testing.T) {
	n, err := NewBVSub(mustBV(t, 0x00, 8), mustBV(t, 0x01, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0xFF), n.Evaluate().Uint64())
}

func TestScenario03BVAshr(t *testing.T) {
	n, err := NewBVAshr(mustBV(t, 0x80, 8), mustBV(t, 0x01, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0xC0), n.Evaluate().Uint64())
}

func TestScenario04BVLshr(t *testing.T) {
	n, err := NewBVLshr(mustBV(t, 0x80, 8), mustBV(t, 0x01, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0x40), n.Evaluate().Uint64())
}

func TestScenario05BVSdivByZero(t *testing.T) {
	n, err := NewBVSdiv(mustBV(t, 0xFF, 8), mustBV(t, 0x00, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0x01), n.Evaluate().Uint64())
}

func TestScenario06BVUdivByZero(t *testing.T) {
	n, err := NewBVUdiv(mustBV(t, 0x10, 8), mustBV(t, 0x00, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0xFF), n.Evaluate().Uint64())
}

func TestScenario07BVSmod(t *testing.T) {
	n, err := NewBVSmod(mustBV(t, 0xF9, 8), mustBV(t, 0x03, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0x02), n.Evaluate().Uint64())
}

func TestScenario08BVSrem(t *testing.T) {
	n, err := NewBVSrem(mustBV(t, 0xF9, 8), mustBV(t, 0x03, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0xFF), n.Evaluate().Uint64())
}

func TestScenario09Concat(t *testing.T) {
	n, err := NewConcat(mustBV(t, 0xAB, 8), mustBV(t, 0xCD, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0xABCD), n.Evaluate().Uint64())
	require.EqualValues(t, 16, n.GetBitvectorSize())
}

func TestScenario10Extract(t *testing.T) {
	n, err := NewExtract(dec(11), dec(4), mustBV(t, 0xABCD, 16))
	require.NoError(t, err)
	require.Equal(t, uint64(0xBC), n.Evaluate().Uint64())
	require.EqualValues(t, 8, n.GetBitvectorSize())
}

func TestScenario11SX(t *testing.T) {
	n, err := NewSX(dec(8), mustBV(t, 0x80, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0xFF80), n.Evaluate().Uint64())
	require.EqualValues(t, 16, n.GetBitvectorSize())
}

func TestScenario12ZX(t *testing.T) {
	n, err := NewZX(dec(8), mustBV(t, 0x80, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0x0080), n.Evaluate().Uint64())
	require.EqualValues(t, 16, n.GetBitvectorSize())
}

func TestScenario13ITEWithBVTrue(t *testing.T) {
	bvtrue := mustBV(t, 1, 1)
	n, err := NewITE(bvtrue, mustBV(t, 1, 8), mustBV(t, 2, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(1), n.Evaluate().Uint64())
}

func TestScenario14BVRol(t *testing.T) {
	n, err := NewBVRol(dec(4), mustBV(t, 0xA5, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(0x5A), n.Evaluate().Uint64())
}

// --- Propagation ---

func TestVariablePropagation(t *testing.T) {
	x, err := NewVariable(nil, "x", 8)
	require.NoError(t, err)
	require.Equal(t, uint64(0), x.Evaluate().Uint64())

	e, err := NewBVAdd(x, mustBV(t, 1, 8))
	require.NoError(t, err)
	require.Equal(t, uint64(1), e.Evaluate().Uint64())

	// Simulate astcontext.UpdateVariable: mutate the shared node in place
	// by giving it an environment whose lookup reflects the new value, then
	// re-run init directly on that same node.
	env := &fakeEnv{value: wideint.FromUint64(0x10)}
	x.env = env
	require.NoError(t, x.Reinit())
	require.Equal(t, uint64(0x11), e.Evaluate().Uint64())
}

type fakeEnv struct{ value wideint.U512 }

func (f *fakeEnv) LookupVariable(name string) (wideint.U512, bool) { return f.value, true }

// --- Universal invariants ---

func TestInvariantEvalMaskedToSize(t *testing.T) {
	n, err := NewBVAdd(mustBV(t, 0xF0, 8), mustBV(t, 0x20, 8))
	require.NoError(t, err)
	require.Equal(t, n.Evaluate(), wideint.MaskTo(n.Evaluate(), n.GetBitvectorSize()))
}

func TestInvariantSymbolizedPropagates(t *testing.T) {
	x, err := NewVariable(nil, "y", 8)
	require.NoError(t, err)
	require.True(t, x.IsSymbolized())

	e, err := NewBVAdd(x, mustBV(t, 1, 8))
	require.NoError(t, err)
	require.True(t, e.IsSymbolized())

	pureConst, err := NewBVAdd(mustBV(t, 1, 8), mustBV(t, 2, 8))
	require.NoError(t, err)
	require.False(t, pureConst.IsSymbolized())
}

func TestInvariantParentChildBackEdges(t *testing.T) {
	a := mustBV(t, 1, 8)
	b := mustBV(t, 2, 8)
	e, err := NewBVAdd(a, b)
	require.NoError(t, err)

	require.Contains(t, e.GetChildren(), a)
	parents := a.GetParents()
	require.Len(t, parents, 1)
	require.Same(t, e, parents[0])
}

func TestInvariantAcyclicAfterFailedConstruction(t *testing.T) {
	a := mustBV(t, 1, 8)
	b := mustBV(t, 2, 16)
	_, err := NewBVAdd(a, b)
	require.Error(t, err)
	// a failed construction must leave no back-edge on its children.
	require.Empty(t, a.GetParents())
	require.Empty(t, b.GetParents())
}

// --- Algebraic identities on eval (commutativity / position-sensitivity) ---

func TestCommutativeEval(t *testing.T) {
	a := mustBV(t, 0x12, 8)
	b := mustBV(t, 0x34, 8)
	ab, err := NewBVAdd(a, b)
	require.NoError(t, err)
	ba, err := NewBVAdd(b, a)
	require.NoError(t, err)
	require.Equal(t, ab.Evaluate(), ba.Evaluate())
	require.Equal(t, ab.Hash(1), ba.Hash(1))
}

func TestPositionSensitiveHash(t *testing.T) {
	a := mustBV(t, 0x12, 8)
	b := mustBV(t, 0x34, 8)
	ab, err := NewBVSub(a, b)
	require.NoError(t, err)
	ba, err := NewBVSub(b, a)
	require.NoError(t, err)
	require.NotEqual(t, ab.Hash(1), ba.Hash(1))
}

// --- Error taxonomy sanity ---

func TestArityErrorOnWrongChildCount(t *testing.T) {
	_, err := NewLand(mustBV(t, 1, 1))
	require.Error(t, err)
}

func TestWidthErrorOnMismatchedOperands(t *testing.T) {
	_, err := NewBVAnd(mustBV(t, 1, 8), mustBV(t, 1, 16))
	require.Error(t, err)
}

func TestRangeErrorOnZeroSizeVariable(t *testing.T) {
	_, err := NewVariable(nil, "z", 0)
	require.Error(t, err)
}

func TestPostOrderVisitsSharedNodeOnce(t *testing.T) {
	shared := mustBV(t, 1, 8)
	left, err := NewBVAdd(shared, mustBV(t, 2, 8))
	require.NoError(t, err)
	root, err := NewBVAdd(left, shared)
	require.NoError(t, err)

	order := PostOrder(root)
	require.Equal(t, root, order[len(order)-1])

	count := 0
	for _, n := range order {
		if n == shared {
			count++
		}
	}
	require.Equal(t, 1, count)
}

func TestEqualToUsesSizeEvalAndHash(t *testing.T) {
	a, err := NewBVAdd(mustBV(t, 1, 8), mustBV(t, 2, 8))
	require.NoError(t, err)
	b, err := NewBVAdd(mustBV(t, 2, 8), mustBV(t, 1, 8))
	require.NoError(t, err)
	require.True(t, a.EqualTo(b))
}
