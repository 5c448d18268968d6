package astcontext

import (
	"github.com/kschiffer/bvast/astnodes"
	"github.com/kschiffer/bvast/wideint"
)

// Decimal builds a decimal literal leaf, used to parameterize other
// operators (rotate counts, extract bounds, sx/zx widths, bv's value and
// width).
func (c *Context) Decimal(value wideint.U512) *astnodes.Node {
	c.countConstruction(astnodes.KindDecimal)
	return astnodes.NewDecimal(value)
}

// String builds a string literal leaf, used as the bound-name child of Let.
func (c *Context) String(value string) *astnodes.Node {
	c.countConstruction(astnodes.KindString)
	return astnodes.NewString(value)
}

// BV builds the bit-vector literal bv(value, size).
func (c *Context) BV(value wideint.U512, size uint32) (*astnodes.Node, error) {
	n, err := astnodes.NewBV(c.Decimal(value), c.Decimal(wideint.FromUint64(uint64(size))))
	if err != nil {
		return nil, err
	}
	c.countConstruction(astnodes.KindBV)
	return n, nil
}

// BVTrue returns bv(1,1), the conventional true constant.
func (c *Context) BVTrue() (*astnodes.Node, error) {
	return c.BV(wideint.FromUint64(1), 1)
}

// BVFalse returns bv(0,1), the conventional false constant.
func (c *Context) BVFalse() (*astnodes.Node, error) {
	return c.BV(wideint.Zero, 1)
}

func (c *Context) BVAdd(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVAdd(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVAdd)
	}
	return n, err
}

func (c *Context) BVSub(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVSub(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVSub)
	}
	return n, err
}

func (c *Context) BVMul(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVMul(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVMul)
	}
	return n, err
}

func (c *Context) BVNeg(a *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVNeg(a)
	if err == nil {
		c.countConstruction(astnodes.KindBVNeg)
	}
	return n, err
}

func (c *Context) BVNot(a *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVNot(a)
	if err == nil {
		c.countConstruction(astnodes.KindBVNot)
	}
	return n, err
}

func (c *Context) BVAnd(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVAnd(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVAnd)
	}
	return n, err
}

func (c *Context) BVOr(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVOr(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVOr)
	}
	return n, err
}

func (c *Context) BVXor(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVXor(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVXor)
	}
	return n, err
}

func (c *Context) BVNand(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVNand(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVNand)
	}
	return n, err
}

func (c *Context) BVNor(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVNor(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVNor)
	}
	return n, err
}

func (c *Context) BVXnor(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVXnor(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVXnor)
	}
	return n, err
}

func (c *Context) BVShl(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVShl(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVShl)
	}
	return n, err
}

func (c *Context) BVLshr(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVLshr(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVLshr)
	}
	return n, err
}

func (c *Context) BVAshr(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVAshr(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVAshr)
	}
	return n, err
}

// BVRol builds a rotate-left by count (a decimal literal) of value.
func (c *Context) BVRol(count, value *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVRol(count, value)
	if err == nil {
		c.countConstruction(astnodes.KindBVRol)
	}
	return n, err
}

// BVRor builds a rotate-right by count (a decimal literal) of value.
func (c *Context) BVRor(count, value *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVRor(count, value)
	if err == nil {
		c.countConstruction(astnodes.KindBVRor)
	}
	return n, err
}

func (c *Context) BVUdiv(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVUdiv(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVUdiv)
	}
	return n, err
}

func (c *Context) BVUrem(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVUrem(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVUrem)
	}
	return n, err
}

func (c *Context) BVSdiv(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVSdiv(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVSdiv)
	}
	return n, err
}

func (c *Context) BVSrem(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVSrem(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVSrem)
	}
	return n, err
}

func (c *Context) BVSmod(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVSmod(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVSmod)
	}
	return n, err
}

func (c *Context) BVUge(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVUge(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVUge)
	}
	return n, err
}

func (c *Context) BVUgt(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVUgt(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVUgt)
	}
	return n, err
}

func (c *Context) BVUle(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVUle(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVUle)
	}
	return n, err
}

func (c *Context) BVUlt(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVUlt(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVUlt)
	}
	return n, err
}

func (c *Context) BVSge(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVSge(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVSge)
	}
	return n, err
}

func (c *Context) BVSgt(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVSgt(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVSgt)
	}
	return n, err
}

func (c *Context) BVSle(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVSle(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVSle)
	}
	return n, err
}

func (c *Context) BVSlt(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewBVSlt(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindBVSlt)
	}
	return n, err
}

func (c *Context) Equal(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewEqual(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindEqual)
	}
	return n, err
}

func (c *Context) Distinct(a, b *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewDistinct(a, b)
	if err == nil {
		c.countConstruction(astnodes.KindDistinct)
	}
	return n, err
}

// Land builds the n-ary logical conjunction of operands (n >= 2).
func (c *Context) Land(operands ...*astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewLand(operands...)
	if err == nil {
		c.countConstruction(astnodes.KindLand)
	}
	return n, err
}

// Lor builds the n-ary logical disjunction of operands (n >= 2).
func (c *Context) Lor(operands ...*astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewLor(operands...)
	if err == nil {
		c.countConstruction(astnodes.KindLor)
	}
	return n, err
}

func (c *Context) LNot(a *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewLNot(a)
	if err == nil {
		c.countConstruction(astnodes.KindLNot)
	}
	return n, err
}

// Concat builds the n-ary concatenation of operands (n >= 2), high-order
// operand first.
func (c *Context) Concat(operands ...*astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewConcat(operands...)
	if err == nil {
		c.countConstruction(astnodes.KindConcat)
	}
	return n, err
}

// ITE builds the if-then-else node: cond must be a logical (or single-bit)
// node, and t/f must share a width.
func (c *Context) ITE(cond, t, f *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewITE(cond, t, f)
	if err == nil {
		c.countConstruction(astnodes.KindITE)
	}
	return n, err
}

// Let builds name := bound within body. name must be a string leaf (see
// Context.String).
func (c *Context) Let(name, bound, body *astnodes.Node) (*astnodes.Node, error) {
	n, err := astnodes.NewLet(name, bound, body)
	if err == nil {
		c.countConstruction(astnodes.KindLet)
	}
	return n, err
}

// Reference builds a stable-id handle to ast, used by the solver bridge to
// refer back into a tree without re-serializing it.
func (c *Context) Reference(ast *astnodes.Node, id uint64) (*astnodes.Node, error) {
	n, err := astnodes.NewReference(ast, id)
	if err == nil {
		c.countConstruction(astnodes.KindReference)
	}
	return n, err
}
