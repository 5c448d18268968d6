package astnodes

import (
	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/wideint"
)

// NewBVShl builds a logical left-shift node: (a << (b as u32)) masked.
func NewBVShl(a, b *Node) (*Node, error) { return construct(KindBVShl, a, b) }

// NewBVLshr builds a logical right-shift node.
func NewBVLshr(a, b *Node) (*Node, error) { return construct(KindBVLshr, a, b) }

// NewBVAshr builds an arithmetic right-shift node, sign-filling from a's top
// bit.
func NewBVAshr(a, b *Node) (*Node, error) { return construct(KindBVAshr, a, b) }

func (n *Node) initShift() error {
	if err := checkArity(n, 2); err != nil {
		return err
	}
	a, b := n.children[0], n.children[1]
	if err := checkWidthsEqual(a, b); err != nil {
		return err
	}
	n.size = a.size
	shiftAmt := uint32(b.eval.Uint64())
	switch n.kind {
	case KindBVShl:
		n.eval = wideint.MaskTo(wideint.Lsh(a.eval, uint(shiftAmt)), n.size)
	case KindBVLshr:
		n.eval = wideint.MaskTo(wideint.Rsh(a.eval, uint(shiftAmt)), n.size)
	case KindBVAshr:
		n.eval = arithShiftRight(a.eval, shiftAmt, n.size)
	}
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// arithShiftRight implements the detail-floor definition of bvashr: the
// vacated high bits are filled with the sign bit of a (interpreted at width
// size) rather than zero. Closed-formed from the iterative definition: each
// of the r shifted-out positions is replaced one at a time by the sign bit,
// which is equivalent to a logical shift by r followed by OR-ing in r
// sign-filled high bits.
func arithShiftRight(a wideint.U512, r, size uint32) wideint.U512 {
	sign := wideint.IsNegativeAt(a, size)
	if r >= size {
		if sign {
			return wideint.MaskLow(size)
		}
		return wideint.Zero
	}
	if r == 0 {
		return wideint.MaskTo(a, size)
	}
	shifted := wideint.Rsh(a, uint(r))
	if !sign {
		return wideint.MaskTo(shifted, size)
	}
	fill := wideint.Lsh(wideint.MaskLow(r), uint(size-r))
	return wideint.MaskTo(wideint.Or(shifted, fill), size)
}

// NewBVRol builds a rotate-left node. count must be a decimal literal giving
// the rotate amount (taken mod value.GetBitvectorSize()).
func NewBVRol(count, value *Node) (*Node, error) { return construct(KindBVRol, count, value) }

// NewBVRor builds a rotate-right node.
func NewBVRor(count, value *Node) (*Node, error) { return construct(KindBVRor, count, value) }

func (n *Node) initRotate() error {
	if err := checkArity(n, 2); err != nil {
		return err
	}
	count, value := n.children[0], n.children[1]
	if err := checkIsDecimal(count, "rotate count"); err != nil {
		return err
	}
	if value.size == 0 {
		return asterrors.New(asterrors.WidthError, "rotate: value operand has no bit-vector width")
	}
	n.size = value.size
	_, rem := wideint.DivMod(count.decimalValue, wideint.FromUint64(uint64(n.size)))
	r := uint32(rem.Uint64())
	switch n.kind {
	case KindBVRol:
		n.eval = rotateLeft(value.eval, r, n.size)
	case KindBVRor:
		n.eval = rotateRight(value.eval, r, n.size)
	}
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

func rotateLeft(x wideint.U512, r, size uint32) wideint.U512 {
	if r == 0 {
		return wideint.MaskTo(x, size)
	}
	return wideint.MaskTo(wideint.Or(wideint.Lsh(x, uint(r)), wideint.Rsh(x, uint(size-r))), size)
}

func rotateRight(x wideint.U512, r, size uint32) wideint.U512 {
	if r == 0 {
		return wideint.MaskTo(x, size)
	}
	return wideint.MaskTo(wideint.Or(wideint.Rsh(x, uint(r)), wideint.Lsh(x, uint(size-r))), size)
}
