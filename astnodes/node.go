package astnodes

import (
	"github.com/kschiffer/bvast/internal/utils"
	"github.com/kschiffer/bvast/wideint"
)

// Node is the universal AST element. A single concrete type represents
// every Kind; which fields are meaningful depends on Kind (see the
// payload fields below, each commented with the kinds that use it).
//
// Children are owning: a Node keeps its children alive. Parents are
// tracked as weak back-edges in parents (see graph.go) so that sharing a
// subexpression among many parents never creates a reference cycle that
// would need a collector.
type Node struct {
	// Embedding this makes Node struct values incomparable with ==, so an
	// accidental field-by-field value comparison (rather than EqualTo) fails
	// to compile. *Node pointers still compare by identity. It costs no
	// memory.
	_ utils.MakeIncomparable

	kind       Kind
	size       uint32
	eval       wideint.U512
	symbolized bool
	children   []*Node
	parents    *parentSet
	env        Environment // non-owning; nil until attached to a context

	// Leaf / kind-specific payload. Exactly one group below is meaningful
	// for any given kind; the rest are zero.
	decimalValue wideint.U512 // KindDecimal
	stringValue  string       // KindString, and the variable name for KindVariable
	refID        uint64       // KindReference
}

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind {
	return n.kind
}

// GetBitvectorSize returns the node's bit-width. It is 0 for decimal and
// string nodes, which carry no bit-vector value.
func (n *Node) GetBitvectorSize() uint32 {
	return n.size
}

// GetBitvectorMask returns (1<<size)-1.
func (n *Node) GetBitvectorMask() wideint.U512 {
	return wideint.MaskLow(n.size)
}

// IsSigned reports whether the node's cached evaluation has its top bit (at
// position size-1) set, i.e. whether it would be read as negative under a
// signed interpretation.
func (n *Node) IsSigned() bool {
	return wideint.IsNegativeAt(n.eval, n.size)
}

// IsSymbolized reports whether any reachable descendant is a free variable.
func (n *Node) IsSymbolized() bool {
	return n.symbolized
}

// IsLogical reports whether the node's kind is a comparison, equality, or
// boolean connective (always evaluates to a single bit).
func (n *Node) IsLogical() bool {
	return IsLogical(n.kind)
}

// Evaluate returns the node's cached concrete evaluation, masked to its
// bit-width for bit-vector nodes, 0 or 1 for logical nodes, 0 for
// decimal/string nodes.
func (n *Node) Evaluate() wideint.U512 {
	return n.eval
}

// EqualTo reports structural equality: equal size, equal concrete
// evaluation, and equal structural hash. Hash alone is not sufficient (it
// is a compression over a 2^512 ring and is not guaranteed injective); size
// and eval catch the overwhelming majority of accidental collisions cheaply
// before the (relatively) expensive hash comparison is even needed.
func (n *Node) EqualTo(other *Node) bool {
	if other == nil {
		return false
	}
	if n.size != other.size || n.eval != other.eval {
		return false
	}
	return n.Hash(1) == other.Hash(1)
}

// GetChildren returns the node's ordered children. The returned slice is
// owned by the node; callers must not mutate it in place.
func (n *Node) GetChildren() []*Node {
	return n.children
}

// Name returns the variable name (KindVariable) or string literal contents
// (KindString). It is meaningless for any other kind.
func (n *Node) Name() string {
	return n.stringValue
}

// DecimalValue returns the literal value of a KindDecimal node. It is
// meaningless for any other kind.
func (n *Node) DecimalValue() wideint.U512 {
	return n.decimalValue
}

// ReferenceID returns the stable id of a KindReference node. It is
// meaningless for any other kind.
func (n *Node) ReferenceID() uint64 {
	return n.refID
}
