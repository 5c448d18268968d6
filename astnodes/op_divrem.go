package astnodes

import "github.com/kschiffer/bvast/wideint"

// NewBVUdiv builds an unsigned division node. Division by zero is total per
// the SMT-LIB convention: it evaluates to the all-ones bit pattern rather
// than erroring.
func NewBVUdiv(a, b *Node) (*Node, error) { return construct(KindBVUdiv, a, b) }

// NewBVUrem builds an unsigned remainder node. Remainder by zero evaluates
// to the dividend.
func NewBVUrem(a, b *Node) (*Node, error) { return construct(KindBVUrem, a, b) }

func (n *Node) initUnsignedDivRem() error {
	if err := checkArity(n, 2); err != nil {
		return err
	}
	a, b := n.children[0], n.children[1]
	if err := checkWidthsEqual(a, b); err != nil {
		return err
	}
	n.size = a.size
	switch n.kind {
	case KindBVUdiv:
		if b.eval.IsZero() {
			n.eval = wideint.MaskLow(n.size)
		} else {
			q, _ := wideint.DivMod(a.eval, b.eval)
			n.eval = wideint.MaskTo(q, n.size)
		}
	case KindBVUrem:
		if b.eval.IsZero() {
			n.eval = a.eval
		} else {
			_, r := wideint.DivMod(a.eval, b.eval)
			n.eval = wideint.MaskTo(r, n.size)
		}
	}
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// NewBVSdiv builds a signed, truncating (round-towards-zero) division node.
func NewBVSdiv(a, b *Node) (*Node, error) { return construct(KindBVSdiv, a, b) }

// NewBVSrem builds a signed remainder node whose sign follows the dividend.
func NewBVSrem(a, b *Node) (*Node, error) { return construct(KindBVSrem, a, b) }

// NewBVSmod builds a signed modulo node whose sign follows the divisor.
func NewBVSmod(a, b *Node) (*Node, error) { return construct(KindBVSmod, a, b) }

func (n *Node) initSignedDivRem() error {
	if err := checkArity(n, 2); err != nil {
		return err
	}
	a, b := n.children[0], n.children[1]
	if err := checkWidthsEqual(a, b); err != nil {
		return err
	}
	n.size = a.size
	sa := wideint.ModularSignExtend(a.eval, n.size)
	sb := wideint.ModularSignExtend(b.eval, n.size)

	switch n.kind {
	case KindBVSdiv:
		if b.eval.IsZero() {
			if sa.IsNegative() {
				n.eval = wideint.One
			} else {
				n.eval = wideint.MaskLow(n.size)
			}
		} else {
			q, _ := sa.DivMod(sb)
			n.eval = wideint.MaskTo(q.U512(), n.size)
		}
	case KindBVSrem:
		if b.eval.IsZero() {
			n.eval = a.eval
		} else {
			_, r := sa.DivMod(sb)
			n.eval = wideint.MaskTo(r.U512(), n.size)
		}
	case KindBVSmod:
		if b.eval.IsZero() {
			n.eval = a.eval
		} else {
			n.eval = wideint.MaskTo(signFollowsDivisorMod(sa, sb).U512(), n.size)
		}
	}
	n.symbolized = n.symbolizedFromChildren()
	return nil
}

// signFollowsDivisorMod computes ((sa mod sb) + sb) mod sb: starting from the
// sign-follows-dividend remainder (what srem uses), adding the divisor back
// in and reducing once more yields the sign-follows-divisor convention bvsmod
// needs.
func signFollowsDivisorMod(sa, sb wideint.S512) wideint.S512 {
	_, r1 := sa.DivMod(sb)
	r2 := wideint.S512(wideint.Add(r1.U512(), sb.U512()))
	_, r3 := r2.DivMod(sb)
	return r3
}
