package astnodes

import "github.com/kschiffer/bvast/wideint"

// positionSensitiveKinds mix each child's hash by its position (pow(x, i+1))
// rather than folding every child in identically regardless of order.
// bvsub is not commutative (unlike bvadd/bvmul, which are explicitly
// position-insensitive) so it is grouped here with the rest of the
// order-matters operators rather than with the arithmetic kinds that are.
var positionSensitiveKinds = map[Kind]bool{
	KindBVSub:  true,
	KindBVShl:  true, KindBVLshr: true, KindBVAshr: true,
	KindBVRol: true, KindBVRor: true,
	KindBVUdiv: true, KindBVUrem: true,
	KindBVSdiv: true, KindBVSrem: true, KindBVSmod: true,
	KindBVUge: true, KindBVUgt: true, KindBVUle: true, KindBVUlt: true,
	KindBVSge: true, KindBVSgt: true, KindBVSle: true, KindBVSlt: true,
	KindConcat: true, KindExtract: true, KindITE: true, KindLet: true,
	KindSX: true, KindZX: true, KindBV: true,
}

// Hash returns n's structural hash at the given recursion depth, used by
// EqualTo and available to callers building their own memoization tables. It
// is recomputed on every call rather than cached on the node: a node's
// children can change under SetChild or variable propagation, and caching a
// value that is only ever consulted transiently would just add its own
// invalidation bookkeeping for no benefit.
func (n *Node) Hash(depth uint) wideint.U512 {
	switch n.kind {
	case KindDecimal:
		return wideint.Xor(wideint.FromUint64(uint64(n.kind)), n.decimalValue)
	case KindString, KindVariable:
		sum := wideint.Zero
		for i, b := range []byte(n.stringValue) {
			sum = wideint.Add(sum, wideint.Pow(wideint.FromUint64(uint64(b)), uint(i+1)))
		}
		mixed := wideint.Xor(wideint.FromUint64(uint64(n.kind)), sum)
		return wideint.RotL512(mixed, depth)
	case KindReference:
		return wideint.Xor(wideint.FromUint64(uint64(n.kind)), wideint.FromUint64(n.refID))
	}

	h := wideint.FromUint64(uint64(n.kind))
	if len(n.children) > 0 {
		h = wideint.Mul(h, wideint.FromUint64(uint64(len(n.children))))
	}
	positionSensitive := positionSensitiveKinds[n.kind]
	for i, c := range n.children {
		childHash := c.Hash(depth + 1)
		if positionSensitive {
			childHash = wideint.Pow(childHash, uint(i+1))
		}
		h = wideint.Mul(h, childHash)
	}
	return wideint.RotL512(h, depth)
}
