package astnodes

import "github.com/kschiffer/bvast/wideint"

// NewBVAdd builds an addition node: (a+b) mod 2^size.
func NewBVAdd(a, b *Node) (*Node, error) { return construct(KindBVAdd, a, b) }

// NewBVSub builds a subtraction node: (a-b) mod 2^size.
func NewBVSub(a, b *Node) (*Node, error) { return construct(KindBVSub, a, b) }

// NewBVMul builds a multiplication node: (a*b) mod 2^size.
func NewBVMul(a, b *Node) (*Node, error) { return construct(KindBVMul, a, b) }

func (n *Node) initArith() error {
	if err := checkArity(n, 2); err != nil {
		return err
	}
	a, b := n.children[0], n.children[1]
	if err := checkWidthsEqual(a, b); err != nil {
		return err
	}
	n.size = a.size
	switch n.kind {
	case KindBVAdd:
		n.eval = wideint.MaskTo(wideint.Add(a.eval, b.eval), n.size)
	case KindBVSub:
		n.eval = wideint.MaskTo(wideint.Sub(a.eval, b.eval), n.size)
	case KindBVMul:
		n.eval = wideint.MaskTo(wideint.Mul(a.eval, b.eval), n.size)
	}
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// NewBVNeg builds a two's-complement negation node.
func NewBVNeg(a *Node) (*Node, error) { return construct(KindBVNeg, a) }

// NewBVNot builds a bitwise-complement node.
func NewBVNot(a *Node) (*Node, error) { return construct(KindBVNot, a) }

func (n *Node) initUnary() error {
	if err := checkArity(n, 1); err != nil {
		return err
	}
	a := n.children[0]
	n.size = a.size
	switch n.kind {
	case KindBVNeg:
		n.eval = wideint.MaskTo(wideint.Neg(a.eval), n.size)
	case KindBVNot:
		n.eval = wideint.MaskTo(wideint.Not(a.eval), n.size)
	}
	n.symbolized = n.symbolizedFromChildren()
	return nil
}
