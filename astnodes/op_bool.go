package astnodes

import (
	"strconv"
)

// NewLand builds an n-ary logical AND node, n >= 2.
func NewLand(operands ...*Node) (*Node, error) { return construct(KindLand, operands...) }

// NewLor builds an n-ary logical OR node, n >= 2.
func NewLor(operands ...*Node) (*Node, error) { return construct(KindLor, operands...) }

func (n *Node) initBoolNary() error {
	if err := checkArityAtLeast(n, 2); err != nil {
		return err
	}
	for i, c := range n.children {
		if err := checkIsLogical(c, operandLabel(i)); err != nil {
			return err
		}
	}
	n.size = 1
	switch n.kind {
	case KindLand:
		result := true
		for _, c := range n.children {
			if c.eval.IsZero() {
				result = false
				break
			}
		}
		n.eval = boolToEval(result)
	case KindLor:
		result := false
		for _, c := range n.children {
			if !c.eval.IsZero() {
				result = true
				break
			}
		}
		n.eval = boolToEval(result)
	}
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// NewLNot builds a logical negation node.
func NewLNot(a *Node) (*Node, error) { return construct(KindLNot, a) }

func (n *Node) initLNot() error {
	if err := checkArity(n, 1); err != nil {
		return err
	}
	a := n.children[0]
	if err := checkIsLogical(a, "operand"); err != nil {
		return err
	}
	n.size = 1
	n.eval = boolToEval(a.eval.IsZero())
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

func operandLabel(i int) string {
	return "operand[" + strconv.Itoa(i) + "]"
}
