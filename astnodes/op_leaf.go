package astnodes

import (
	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/wideint"
)

// NewDecimal builds a decimal literal leaf. Decimals carry no bit-width of
// their own (size stays 0); they exist to parameterize other nodes (rotate
// counts, extract bounds, sx/zx widths, bv's value and width) and to compare
// for equality against each other.
func NewDecimal(value wideint.U512) *Node {
	return &Node{kind: KindDecimal, parents: newParentSet(), decimalValue: value}
}

// NewString builds a string literal leaf, used as the bound-name child of
// `let`.
func NewString(value string) *Node {
	return &Node{kind: KindString, parents: newParentSet(), stringValue: value}
}

// NewVariable builds a free variable leaf of the given name and width,
// bound to env for later value lookups. Width must be positive.
func NewVariable(env Environment, name string, size uint32) (*Node, error) {
	n := &Node{kind: KindVariable, parents: newParentSet(), env: env, stringValue: name, size: size}
	if err := n.init(); err != nil {
		return nil, err
	}
	return n, nil
}

func (n *Node) initVariable() error {
	if n.size == 0 {
		return asterrors.New(asterrors.RangeError, "variable: size must be positive", "name", n.stringValue)
	}
	n.symbolized = true
	if n.env == nil {
		n.eval = wideint.Zero
		return nil
	}
	v, _ := n.env.LookupVariable(n.stringValue)
	n.eval = wideint.MaskTo(v, n.size)
	return nil
}
