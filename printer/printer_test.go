package printer_test

import (
	"testing"

	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/astnodes"
	"github.com/kschiffer/bvast/printer"
	"github.com/kschiffer/bvast/wideint"
	"github.com/stretchr/testify/require"
)

func bv(t *testing.T, value uint64, size uint32) *astnodes.Node {
	t.Helper()
	n, err := astnodes.NewBV(astnodes.NewDecimal(wideint.FromUint64(value)), astnodes.NewDecimal(wideint.FromUint64(uint64(size))))
	require.NoError(t, err)
	return n
}

func TestPrintSMTBVAdd(t *testing.T) {
	n, err := astnodes.NewBVAdd(bv(t, 1, 8), bv(t, 2, 8))
	require.NoError(t, err)
	got, err := printer.Print(n, printer.SMT)
	require.NoError(t, err)
	require.Equal(t, "(bvadd (_ bv1 8) (_ bv2 8))", got)
}

func TestPrintSMTExtract(t *testing.T) {
	n, err := astnodes.NewExtract(astnodes.NewDecimal(wideint.FromUint64(11)), astnodes.NewDecimal(wideint.FromUint64(4)), bv(t, 0xABCD, 16))
	require.NoError(t, err)
	got, err := printer.Print(n, printer.SMT)
	require.NoError(t, err)
	require.Equal(t, "((_ extract 11 4) (_ bv43981 16))", got)
}

func TestPrintSMTReference(t *testing.T) {
	ast := bv(t, 1, 8)
	ref, err := astnodes.NewReference(ast, 7)
	require.NoError(t, err)
	got, err := printer.Print(ref, printer.SMT)
	require.NoError(t, err)
	require.Equal(t, "ref!7", got)
}

func TestPrintSMTRotate(t *testing.T) {
	n, err := astnodes.NewBVRol(astnodes.NewDecimal(wideint.FromUint64(4)), bv(t, 0xA5, 8))
	require.NoError(t, err)
	got, err := printer.Print(n, printer.SMT)
	require.NoError(t, err)
	require.Equal(t, "((_ rotate_left 4) (_ bv165 8))", got)
}

func TestPrintPythonBVAdd(t *testing.T) {
	n, err := astnodes.NewBVAdd(bv(t, 1, 8), bv(t, 2, 8))
	require.NoError(t, err)
	got, err := printer.Print(n, printer.Python)
	require.NoError(t, err)
	require.Contains(t, got, "+")
	require.Contains(t, got, "0xff")
}

func TestPrintPythonReference(t *testing.T) {
	ast := bv(t, 1, 8)
	ref, err := astnodes.NewReference(ast, 3)
	require.NoError(t, err)
	got, err := printer.Print(ref, printer.Python)
	require.NoError(t, err)
	require.Equal(t, "ref_3", got)
}

func TestPrintUnknownModeErrors(t *testing.T) {
	n := bv(t, 1, 8)
	_, err := printer.Print(n, printer.Mode(99))
	require.Error(t, err)
	require.True(t, asterrors.Is(err, asterrors.RepresentationError))
}

func TestCommentPrefixPerMode(t *testing.T) {
	require.Equal(t, ";", printer.CommentPrefix(printer.SMT))
	require.Equal(t, "#", printer.CommentPrefix(printer.Python))
	require.Equal(t, "# hi", printer.Comment(printer.Python, "hi"))
}
