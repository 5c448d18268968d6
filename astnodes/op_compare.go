package astnodes

import "github.com/kschiffer/bvast/wideint"

// NewBVUge builds an unsigned >= comparison node (result is a single bit).
func NewBVUge(a, b *Node) (*Node, error) { return construct(KindBVUge, a, b) }

// NewBVUgt builds an unsigned > comparison node.
func NewBVUgt(a, b *Node) (*Node, error) { return construct(KindBVUgt, a, b) }

// NewBVUle builds an unsigned <= comparison node.
func NewBVUle(a, b *Node) (*Node, error) { return construct(KindBVUle, a, b) }

// NewBVUlt builds an unsigned < comparison node.
func NewBVUlt(a, b *Node) (*Node, error) { return construct(KindBVUlt, a, b) }

func (n *Node) initUnsignedCompare() error {
	if err := checkArity(n, 2); err != nil {
		return err
	}
	a, b := n.children[0], n.children[1]
	if err := checkWidthsEqual(a, b); err != nil {
		return err
	}
	n.size = 1
	var result bool
	switch n.kind {
	case KindBVUge:
		result = wideint.Gte(a.eval, b.eval)
	case KindBVUgt:
		result = wideint.Gt(a.eval, b.eval)
	case KindBVUle:
		result = wideint.Lte(a.eval, b.eval)
	case KindBVUlt:
		result = wideint.Lt(a.eval, b.eval)
	}
	n.eval = boolToEval(result)
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// NewBVSge builds a signed >= comparison node.
func NewBVSge(a, b *Node) (*Node, error) { return construct(KindBVSge, a, b) }

// NewBVSgt builds a signed > comparison node.
func NewBVSgt(a, b *Node) (*Node, error) { return construct(KindBVSgt, a, b) }

// NewBVSle builds a signed <= comparison node.
func NewBVSle(a, b *Node) (*Node, error) { return construct(KindBVSle, a, b) }

// NewBVSlt builds a signed < comparison node.
func NewBVSlt(a, b *Node) (*Node, error) { return construct(KindBVSlt, a, b) }

func (n *Node) initSignedCompare() error {
	if err := checkArity(n, 2); err != nil {
		return err
	}
	a, b := n.children[0], n.children[1]
	if err := checkWidthsEqual(a, b); err != nil {
		return err
	}
	n.size = 1
	sa := wideint.ModularSignExtend(a.eval, a.size)
	sb := wideint.ModularSignExtend(b.eval, b.size)
	cmp := sa.Cmp(sb)
	var result bool
	switch n.kind {
	case KindBVSge:
		result = cmp >= 0
	case KindBVSgt:
		result = cmp > 0
	case KindBVSle:
		result = cmp <= 0
	case KindBVSlt:
		result = cmp < 0
	}
	n.eval = boolToEval(result)
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// NewEqual builds an equality node comparing two nodes' concrete evaluations.
func NewEqual(a, b *Node) (*Node, error) { return construct(KindEqual, a, b) }

// NewDistinct builds an inequality node.
func NewDistinct(a, b *Node) (*Node, error) { return construct(KindDistinct, a, b) }

func (n *Node) initEqDistinct() error {
	if err := checkArity(n, 2); err != nil {
		return err
	}
	a, b := n.children[0], n.children[1]
	n.size = 1
	eq := wideint.Eq(a.eval, b.eval)
	if n.kind == KindDistinct {
		eq = !eq
	}
	n.eval = boolToEval(eq)
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

func boolToEval(b bool) wideint.U512 {
	if b {
		return wideint.One
	}
	return wideint.Zero
}
