package astnodes

import (
	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/wideint"
)

// construct is the shared construction protocol every operator factory in
// this package funnels through: allocate the node in its default state,
// attach children in canonical (argument) order, run init() to compute
// size/eval/symbolized (and validate operand types/widths/ranges along the
// way), and only then hand back an owning handle. If init fails, the
// children's back-edges to the half-built node are torn down so no trace of
// it survives the failed call.
func construct(kind Kind, children ...*Node) (*Node, error) {
	n := &Node{kind: kind, parents: newParentSet()}
	if len(children) > 0 {
		n.children = make([]*Node, len(children))
		copy(n.children, children)
		for _, c := range children {
			c.SetParent(n)
		}
	}
	if err := n.init(); err != nil {
		for _, c := range children {
			c.RemoveParent(n)
		}
		return nil, err
	}
	return n, nil
}

// init recomputes size, eval and symbolized from the node's current
// children, dispatching on kind, then propagates the change to any already
// existing parents. It is re-run (via setChild or a variable update) on
// already-live nodes, so every per-kind handler must be idempotent given
// unchanged children.
func (n *Node) init() error {
	var err error
	switch n.kind {
	case KindBVAdd, KindBVSub, KindBVMul:
		err = n.initArith()
	case KindBVAnd, KindBVOr, KindBVXor, KindBVNand, KindBVNor, KindBVXnor:
		err = n.initBitwise()
	case KindBVNeg, KindBVNot:
		err = n.initUnary()
	case KindBVShl, KindBVLshr, KindBVAshr:
		err = n.initShift()
	case KindBVRol, KindBVRor:
		err = n.initRotate()
	case KindBVUdiv, KindBVUrem:
		err = n.initUnsignedDivRem()
	case KindBVSdiv, KindBVSrem, KindBVSmod:
		err = n.initSignedDivRem()
	case KindBVUge, KindBVUgt, KindBVUle, KindBVUlt:
		err = n.initUnsignedCompare()
	case KindBVSge, KindBVSgt, KindBVSle, KindBVSlt:
		err = n.initSignedCompare()
	case KindEqual, KindDistinct:
		err = n.initEqDistinct()
	case KindLand, KindLor:
		err = n.initBoolNary()
	case KindLNot:
		err = n.initLNot()
	case KindBV:
		err = n.initBVLiteral()
	case KindConcat:
		err = n.initConcat()
	case KindExtract:
		err = n.initExtract()
	case KindSX, KindZX:
		err = n.initExtend()
	case KindITE:
		err = n.initITE()
	case KindLet:
		err = n.initLet()
	case KindReference:
		err = n.initReference()
	case KindDecimal, KindString:
		// Leaves with no children; size/eval are fixed to 0 at construction
		// and there is nothing to recompute.
	case KindVariable:
		err = n.initVariable()
	default:
		err = asterrors.New(asterrors.KindError, "init: unhandled kind", "kind", int(n.kind))
	}
	if err != nil {
		return err
	}
	return n.updateParents()
}

// Reinit re-runs init() on an already-constructed node and propagates the
// result to its parents. It exists for astcontext.UpdateVariable: rebinding
// a variable's value in the context does nothing on its own until the
// variable node itself is told to recompute, which is what makes the
// rebind visible to every ancestor that depends on it.
func (n *Node) Reinit() error {
	return n.init()
}

// symbolizedFromChildren implements invariant 3: a non-leaf node is
// symbolized iff at least one child is. Used by every kind except
// KindVariable (symbolized by construction), the childless leaves, the bv
// literal (never symbolized) and KindReference (which copies its referent's
// flag).
func (n *Node) symbolizedFromChildren() bool {
	for _, c := range n.children {
		if c.symbolized {
			return true
		}
	}
	return false
}

func checkArity(n *Node, want int) error {
	if len(n.children) != want {
		return asterrors.New(asterrors.ArityError, "wrong number of children", "kind", n.kind.String(), "want", want, "got", len(n.children))
	}
	return nil
}

func checkArityAtLeast(n *Node, min int) error {
	if len(n.children) < min {
		return asterrors.New(asterrors.ArityError, "too few children", "kind", n.kind.String(), "min", min, "got", len(n.children))
	}
	return nil
}

func checkWidthsEqual(a, b *Node) error {
	if a.size != b.size {
		return asterrors.New(asterrors.WidthError, "operand widths differ", "left", a.size, "right", b.size)
	}
	return nil
}

func checkIsDecimal(n *Node, label string) error {
	if n.kind != KindDecimal {
		return asterrors.New(asterrors.KindError, "expected a decimal literal operand", "label", label, "gotKind", n.kind.String())
	}
	return nil
}

// checkIsLogical accepts both a kind-logical node (comparison, equality,
// boolean connective) and any single-bit node, since bvtrue()/bvfalse() are
// built as bv(1,1)/bv(0,1) literals and are the idiomatic way to hand a
// constant condition to ite without going through a trivial comparison.
func checkIsLogical(n *Node, label string) error {
	if !n.IsLogical() && n.size != 1 {
		return asterrors.New(asterrors.KindError, "expected a logical operand", "label", label, "gotKind", n.kind.String())
	}
	return nil
}

func checkSizeInRange(size uint32) error {
	if size == 0 || size > wideint.MaxBits {
		return asterrors.New(asterrors.RangeError, "bit-vector size out of range", "size", size, "maxBits", wideint.MaxBits)
	}
	return nil
}
