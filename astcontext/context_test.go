package astcontext_test

import (
	"testing"

	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/astcontext"
	"github.com/kschiffer/bvast/printer"
	"github.com/kschiffer/bvast/wideint"
	"github.com/stretchr/testify/require"
)

func TestBuilderAddAndEvaluate(t *testing.T) {
	ctx := astcontext.NewContext()
	a, err := ctx.BV(wideint.FromUint64(0xFF), 8)
	require.NoError(t, err)
	b, err := ctx.BV(wideint.FromUint64(0x02), 8)
	require.NoError(t, err)
	sum, err := ctx.BVAdd(a, b)
	require.NoError(t, err)
	require.Equal(t, uint64(0x01), sum.Evaluate().Uint64())
}

func TestBVTrueBVFalse(t *testing.T) {
	ctx := astcontext.NewContext()
	tru, err := ctx.BVTrue()
	require.NoError(t, err)
	require.Equal(t, uint64(1), tru.Evaluate().Uint64())
	require.EqualValues(t, 1, tru.GetBitvectorSize())

	fls, err := ctx.BVFalse()
	require.NoError(t, err)
	require.Equal(t, uint64(0), fls.Evaluate().Uint64())
}

func TestVariableLifecycle(t *testing.T) {
	ctx := astcontext.NewContext()
	x, err := ctx.Variable("x", 8)
	require.NoError(t, err)
	require.Equal(t, uint64(0), x.Evaluate().Uint64())

	v, err := ctx.GetValueForVariable("x")
	require.NoError(t, err)
	require.True(t, v.IsZero())

	// asking for the same name/size again returns the same node, not a copy.
	again, err := ctx.Variable("x", 8)
	require.NoError(t, err)
	require.Same(t, x, again)
}

func TestVariableSizeMismatchErrors(t *testing.T) {
	ctx := astcontext.NewContext()
	_, err := ctx.Variable("x", 8)
	require.NoError(t, err)

	_, err = ctx.Variable("x", 16)
	require.Error(t, err)
	require.True(t, asterrors.Is(err, asterrors.VariableError))
}

func TestInitVariableRejectsDuplicateName(t *testing.T) {
	ctx := astcontext.NewContext()
	_, err := ctx.InitVariable("x", 8, wideint.Zero)
	require.NoError(t, err)

	_, err = ctx.InitVariable("x", 8, wideint.Zero)
	require.Error(t, err)
	require.True(t, asterrors.Is(err, asterrors.VariableError))
}

func TestGetValueForVariableMissingErrors(t *testing.T) {
	ctx := astcontext.NewContext()
	_, err := ctx.GetValueForVariable("nope")
	require.Error(t, err)
	require.True(t, asterrors.Is(err, asterrors.VariableError))
}

func TestUpdateVariablePropagatesWithoutRebuild(t *testing.T) {
	ctx := astcontext.NewContext()
	x, err := ctx.Variable("x", 8)
	require.NoError(t, err)
	one, err := ctx.BV(wideint.FromUint64(1), 8)
	require.NoError(t, err)
	e, err := ctx.BVAdd(x, one)
	require.NoError(t, err)
	require.Equal(t, uint64(1), e.Evaluate().Uint64())

	require.NoError(t, ctx.UpdateVariable("x", wideint.FromUint64(0x10)))
	require.Equal(t, uint64(0x11), e.Evaluate().Uint64())
}

func TestUpdateVariableMissingErrors(t *testing.T) {
	ctx := astcontext.NewContext()
	err := ctx.UpdateVariable("nope", wideint.FromUint64(1))
	require.Error(t, err)
	require.True(t, asterrors.Is(err, asterrors.VariableError))
}

func TestExtractWholeWidthShortcut(t *testing.T) {
	ctx := astcontext.NewContext()
	e, err := ctx.BV(wideint.FromUint64(0xAB), 8)
	require.NoError(t, err)
	h := ctx.Decimal(wideint.FromUint64(7))
	l := ctx.Decimal(wideint.Zero)
	got, err := ctx.Extract(h, l, e)
	require.NoError(t, err)
	require.Same(t, e, got)
}

func TestExtractPartialWidthBuildsNewNode(t *testing.T) {
	ctx := astcontext.NewContext()
	e, err := ctx.BV(wideint.FromUint64(0xABCD), 16)
	require.NoError(t, err)
	h := ctx.Decimal(wideint.FromUint64(11))
	l := ctx.Decimal(wideint.FromUint64(4))
	got, err := ctx.Extract(h, l, e)
	require.NoError(t, err)
	require.NotSame(t, e, got)
	require.Equal(t, uint64(0xBC), got.Evaluate().Uint64())
}

func TestSXZXZeroShortcut(t *testing.T) {
	ctx := astcontext.NewContext()
	e, err := ctx.BV(wideint.FromUint64(0x80), 8)
	require.NoError(t, err)
	zero := ctx.Decimal(wideint.Zero)

	sx, err := ctx.SX(zero, e)
	require.NoError(t, err)
	require.Same(t, e, sx)

	zx, err := ctx.ZX(zero, e)
	require.NoError(t, err)
	require.Same(t, e, zx)
}

func TestSXNonzeroBuildsNewNode(t *testing.T) {
	ctx := astcontext.NewContext()
	e, err := ctx.BV(wideint.FromUint64(0x80), 8)
	require.NoError(t, err)
	k := ctx.Decimal(wideint.FromUint64(8))

	sx, err := ctx.SX(k, e)
	require.NoError(t, err)
	require.NotSame(t, e, sx)
	require.Equal(t, uint64(0xFF80), sx.Evaluate().Uint64())
}

func TestRepresentationModeSwitch(t *testing.T) {
	ctx := astcontext.NewContext()
	a, err := ctx.BV(wideint.FromUint64(1), 8)
	require.NoError(t, err)
	b, err := ctx.BV(wideint.FromUint64(2), 8)
	require.NoError(t, err)
	sum, err := ctx.BVAdd(a, b)
	require.NoError(t, err)

	smt, err := ctx.Print(sum)
	require.NoError(t, err)
	require.Equal(t, "(bvadd (_ bv1 8) (_ bv2 8))", smt)

	require.NoError(t, ctx.SetRepresentationMode(printer.Python))
	py, err := ctx.Print(sum)
	require.NoError(t, err)
	require.Contains(t, py, "+")
}

func TestSetRepresentationModeUnknownErrors(t *testing.T) {
	ctx := astcontext.NewContext()
	err := ctx.SetRepresentationMode(printer.Mode(99))
	require.Error(t, err)
	require.True(t, asterrors.Is(err, asterrors.RepresentationError))
}

func TestWithRepresentationModeOption(t *testing.T) {
	ctx := astcontext.NewContext(astcontext.WithRepresentationMode(printer.Python))
	a, err := ctx.BV(wideint.FromUint64(1), 8)
	require.NoError(t, err)
	got, err := ctx.Print(a)
	require.NoError(t, err)
	require.Equal(t, "1", got)
}

func TestDiagnosticsOffByDefaultDoesNotPanic(t *testing.T) {
	ctx := astcontext.NewContext()
	_, err := ctx.BV(wideint.FromUint64(1), 8)
	require.NoError(t, err)
}

func TestNodesEnumeratesSubtree(t *testing.T) {
	ctx := astcontext.NewContext()
	a, err := ctx.BV(wideint.FromUint64(1), 8)
	require.NoError(t, err)
	b, err := ctx.BV(wideint.FromUint64(2), 8)
	require.NoError(t, err)
	sum, err := ctx.BVAdd(a, b)
	require.NoError(t, err)

	// sum, the two bv literals, and each literal's value and width decimals.
	nodes := ctx.Nodes(sum)
	require.Len(t, nodes, 7)
	require.Same(t, sum, nodes[len(nodes)-1])
}

func TestDiagnosticsEnabledDoesNotPanic(t *testing.T) {
	ctx := astcontext.NewContext(astcontext.WithDiagnostics(true))
	a, err := ctx.BV(wideint.FromUint64(1), 8)
	require.NoError(t, err)
	b, err := ctx.BV(wideint.FromUint64(2), 8)
	require.NoError(t, err)
	_, err = ctx.BVAdd(a, b)
	require.NoError(t, err)
}
