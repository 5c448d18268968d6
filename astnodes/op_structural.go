package astnodes

import (
	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/wideint"
)

// NewBV builds a bv(value, size) literal: value and size are themselves
// decimal-literal children, evaluating to value masked to size.
func NewBV(value, size *Node) (*Node, error) { return construct(KindBV, value, size) }

func (n *Node) initBVLiteral() error {
	if err := checkArity(n, 2); err != nil {
		return err
	}
	value, size := n.children[0], n.children[1]
	if err := checkIsDecimal(value, "value"); err != nil {
		return err
	}
	if err := checkIsDecimal(size, "size"); err != nil {
		return err
	}
	width := uint32(size.decimalValue.Uint64())
	if err := checkSizeInRange(width); err != nil {
		return err
	}
	n.size = width
	n.eval = wideint.MaskTo(value.decimalValue, width)
	n.symbolized = false
	return nil
}

// NewConcat builds a concatenation node of two or more operands, most
// significant first.
func NewConcat(operands ...*Node) (*Node, error) { return construct(KindConcat, operands...) }

func (n *Node) initConcat() error {
	if err := checkArityAtLeast(n, 2); err != nil {
		return err
	}
	var total uint32
	for _, c := range n.children {
		total += c.size
	}
	if total == 0 || total > wideint.MaxBits {
		return asterrors.New(asterrors.RangeError, "concat: combined width exceeds MAX_BITS", "width", total)
	}
	n.size = total
	eval := n.children[0].eval
	for _, c := range n.children[1:] {
		eval = wideint.Or(wideint.Lsh(eval, uint(c.size)), c.eval)
	}
	n.eval = wideint.MaskTo(eval, total)
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// NewExtract builds an extract(h, l, e) node selecting bits [l, h] of e,
// inclusive. h and l must be decimal literals.
func NewExtract(h, l, e *Node) (*Node, error) { return construct(KindExtract, h, l, e) }

func (n *Node) initExtract() error {
	if err := checkArity(n, 3); err != nil {
		return err
	}
	hNode, lNode, e := n.children[0], n.children[1], n.children[2]
	if err := checkIsDecimal(hNode, "h"); err != nil {
		return err
	}
	if err := checkIsDecimal(lNode, "l"); err != nil {
		return err
	}
	h := uint32(hNode.decimalValue.Uint64())
	l := uint32(lNode.decimalValue.Uint64())
	if l > h || h >= e.size {
		return asterrors.New(asterrors.RangeError, "extract: bounds out of range", "h", h, "l", l, "eSize", e.size)
	}
	n.size = h - l + 1
	n.eval = wideint.MaskTo(wideint.Rsh(e.eval, uint(l)), n.size)
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// NewSX builds a sign-extend node, widening e by k bits while replicating
// its sign bit. k must be a decimal literal.
func NewSX(k, e *Node) (*Node, error) { return construct(KindSX, k, e) }

// NewZX builds a zero-extend node, widening e by k bits with zero fill.
func NewZX(k, e *Node) (*Node, error) { return construct(KindZX, k, e) }

func (n *Node) initExtend() error {
	if err := checkArity(n, 2); err != nil {
		return err
	}
	kNode, e := n.children[0], n.children[1]
	if err := checkIsDecimal(kNode, "k"); err != nil {
		return err
	}
	k := uint32(kNode.decimalValue.Uint64())
	newSize := k + e.size
	if newSize == 0 || newSize > wideint.MaxBits {
		return asterrors.New(asterrors.RangeError, "extend: result width exceeds MAX_BITS", "width", newSize)
	}
	n.size = newSize
	switch n.kind {
	case KindZX:
		n.eval = wideint.MaskTo(e.eval, newSize)
	case KindSX:
		if !wideint.IsNegativeAt(e.eval, e.size) {
			n.eval = wideint.MaskTo(e.eval, newSize)
		} else {
			highBits := wideint.Not(wideint.MaskLow(e.size))
			n.eval = wideint.MaskTo(wideint.Or(e.eval, highBits), newSize)
		}
	}
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// NewITE builds an if-then-else node: c must be a logical (or single-bit)
// node, t and f must share a width.
func NewITE(c, t, f *Node) (*Node, error) { return construct(KindITE, c, t, f) }

func (n *Node) initITE() error {
	if err := checkArity(n, 3); err != nil {
		return err
	}
	c, t, f := n.children[0], n.children[1], n.children[2]
	if err := checkIsLogical(c, "condition"); err != nil {
		return err
	}
	if err := checkWidthsEqual(t, f); err != nil {
		return err
	}
	n.size = t.size
	if !c.eval.IsZero() {
		n.eval = t.eval
	} else {
		n.eval = f.eval
	}
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// NewLet builds a let(name, bound, body) node. name must be a string
// literal; the node's size and evaluation mirror body's.
func NewLet(name, bound, body *Node) (*Node, error) { return construct(KindLet, name, bound, body) }

func (n *Node) initLet() error {
	if err := checkArity(n, 3); err != nil {
		return err
	}
	name, body := n.children[0], n.children[2]
	if name.kind != KindString {
		return asterrors.New(asterrors.KindError, "let: first child must be a string", "gotKind", name.kind.String())
	}
	n.size = body.size
	n.eval = body.eval
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// NewReference builds a reference(ast, id) node: a stable handle onto ast
// (modeled as its single child, so ownership/propagation reuse the same
// child machinery as everywhere else) whose size, eval and symbolized always
// mirror ast's.
func NewReference(ast *Node, id uint64) (*Node, error) {
	n := &Node{kind: KindReference, parents: newParentSet(), refID: id}
	if ast == nil {
		return nil, asterrors.New(asterrors.NullChildError, "reference: ast must not be nil")
	}
	n.children = []*Node{ast}
	ast.SetParent(n)
	if err := n.init(); err != nil {
		ast.RemoveParent(n)
		return nil, err
	}
	return n, nil
}

func (n *Node) initReference() error {
	if err := checkArity(n, 1); err != nil {
		return err
	}
	ast := n.children[0]
	n.size = ast.size
	n.eval = ast.eval
	n.symbolized = ast.symbolized
	return nil
}
