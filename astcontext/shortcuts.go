package astcontext

import (
	"github.com/kschiffer/bvast/astnodes"
	"github.com/kschiffer/bvast/wideint"
)

// Extract builds extract(h, l, e), except that extracting the entire width
// of e (h == size(e)-1 and l == 0) is a no-op identity and returns e itself
// rather than a new node. Together with the zero-count SX/ZX shortcuts
// below, this is the only rewriting the context performs; it is always safe because the two handles are, by construction, already
// structurally and semantically identical.
func (c *Context) Extract(h, l, e *astnodes.Node) (*astnodes.Node, error) {
	if isWholeWidthExtract(h, l, e) {
		return e, nil
	}
	n, err := astnodes.NewExtract(h, l, e)
	if err == nil {
		c.countConstruction(astnodes.KindExtract)
	}
	return n, err
}

func isWholeWidthExtract(h, l, e *astnodes.Node) bool {
	if h.Kind() != astnodes.KindDecimal || l.Kind() != astnodes.KindDecimal {
		return false
	}
	if !l.DecimalValue().IsZero() {
		return false
	}
	want := uint64(e.GetBitvectorSize()) - 1
	hv := h.DecimalValue()
	return hv == wideint.FromUint64(want)
}

// SX builds sx(k, e), except that extending by zero bits is a no-op
// identity and returns e itself rather than a new node.
func (c *Context) SX(k, e *astnodes.Node) (*astnodes.Node, error) {
	if isZeroExtendCount(k) {
		return e, nil
	}
	n, err := astnodes.NewSX(k, e)
	if err == nil {
		c.countConstruction(astnodes.KindSX)
	}
	return n, err
}

// ZX builds zx(k, e), except that extending by zero bits is a no-op
// identity and returns e itself rather than a new node.
func (c *Context) ZX(k, e *astnodes.Node) (*astnodes.Node, error) {
	if isZeroExtendCount(k) {
		return e, nil
	}
	n, err := astnodes.NewZX(k, e)
	if err == nil {
		c.countConstruction(astnodes.KindZX)
	}
	return n, err
}

func isZeroExtendCount(k *astnodes.Node) bool {
	return k.Kind() == astnodes.KindDecimal && k.DecimalValue().IsZero()
}
