package astnodes

import "github.com/kschiffer/bvast/wideint"

// NewBVAnd builds a pointwise bitwise-AND node.
func NewBVAnd(a, b *Node) (*Node, error) { return construct(KindBVAnd, a, b) }

// NewBVOr builds a pointwise bitwise-OR node.
func NewBVOr(a, b *Node) (*Node, error) { return construct(KindBVOr, a, b) }

// NewBVXor builds a pointwise bitwise-XOR node.
func NewBVXor(a, b *Node) (*Node, error) { return construct(KindBVXor, a, b) }

// NewBVNand builds a bitwise NAND node (negation of bvand).
func NewBVNand(a, b *Node) (*Node, error) { return construct(KindBVNand, a, b) }

// NewBVNor builds a bitwise NOR node (negation of bvor).
func NewBVNor(a, b *Node) (*Node, error) { return construct(KindBVNor, a, b) }

// NewBVXnor builds a bitwise XNOR node (negation of bvxor).
func NewBVXnor(a, b *Node) (*Node, error) { return construct(KindBVXnor, a, b) }

func (n *Node) initBitwise() error {
	if err := checkArity(n, 2); err != nil {
		return err
	}
	a, b := n.children[0], n.children[1]
	if err := checkWidthsEqual(a, b); err != nil {
		return err
	}
	n.size = a.size
	switch n.kind {
	case KindBVAnd:
		n.eval = wideint.MaskTo(wideint.And(a.eval, b.eval), n.size)
	case KindBVOr:
		n.eval = wideint.MaskTo(wideint.Or(a.eval, b.eval), n.size)
	case KindBVXor:
		n.eval = wideint.MaskTo(wideint.Xor(a.eval, b.eval), n.size)
	case KindBVNand:
		n.eval = wideint.MaskTo(wideint.Not(wideint.And(a.eval, b.eval)), n.size)
	case KindBVNor:
		n.eval = wideint.MaskTo(wideint.Not(wideint.Or(a.eval, b.eval)), n.size)
	case KindBVXnor:
		n.eval = wideint.MaskTo(wideint.Not(wideint.Xor(a.eval, b.eval)), n.size)
	}
	n.symbolized = n.symbolizedFromChildren()
	return nil
}
