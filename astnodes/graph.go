package astnodes

import (
	"weak"

	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/internal/stack"
	"github.com/kschiffer/bvast/internal/utils"
)

var _ utils.Clonable[*Node] = (*Node)(nil)

// parentSet tracks a node's parents as weak back-edges, keyed by the
// parent's own identity. Go's standard library weak.Pointer is exactly the
// "collection of weak handles keyed by the parent's stable identity,
// pruned on read" that a DAG with owning child edges and non-owning parent
// edges calls for: a Node is kept alive only by being reachable through
// children (or the variable table), never merely by being someone's
// parent.
type parentSet struct {
	m map[weak.Pointer[Node]]struct{}
}

func newParentSet() *parentSet {
	return &parentSet{m: make(map[weak.Pointer[Node]]struct{})}
}

// add registers p as a parent. Idempotent: adding the same parent twice
// has no additional effect, matching setParent's idempotency requirement.
func (ps *parentSet) add(p *Node) {
	ps.m[weak.Make(p)] = struct{}{}
}

// remove drops p from the parent set. A no-op if p was never present (the
// spec requires this to not panic or otherwise misbehave on an absent key,
// unlike the reference implementation's end()-dereferencing bug).
func (ps *parentSet) remove(p *Node) {
	delete(ps.m, weak.Make(p))
}

// live returns every parent that is still reachable, pruning any expired
// weak handles it encounters along the way.
func (ps *parentSet) live() []*Node {
	result := make([]*Node, 0, len(ps.m))
	for wp := range ps.m {
		if n := wp.Value(); n != nil {
			result = append(result, n)
		} else {
			delete(ps.m, wp)
		}
	}
	return result
}

// GetParents returns the node's currently-live parents, upgrading each weak
// back-edge and silently dropping any that have expired.
func (n *Node) GetParents() []*Node {
	return n.parents.live()
}

// SetParent registers n as having parent p. Exposed primarily so Clone and
// the constructor protocol can maintain the invariant; ordinary clients
// build graphs through astcontext and AddChild/SetChild.
func (n *Node) SetParent(p *Node) {
	n.parents.add(p)
}

// RemoveParent removes p from n's parent set, a no-op if absent.
func (n *Node) RemoveParent(p *Node) {
	n.parents.remove(p)
}

// AddChild appends c as a new child of n, wiring the back-edge, without
// recomputing n's cached size/eval/symbolized. It is used only while a node
// is still under construction, before its first init(); after that, use
// SetChild to replace an existing slot, which does trigger propagation.
func (n *Node) AddChild(c *Node) error {
	if c == nil {
		return asterrors.New(asterrors.NullChildError, "AddChild: child must not be nil")
	}
	n.children = append(n.children, c)
	c.SetParent(n)
	return nil
}

// SetChild replaces the child at index i with c, rewiring parent back-edges
// on both the outgoing and incoming child, then re-running init() (which
// recomputes size/eval/symbolized and propagates to n's own parents).
func (n *Node) SetChild(i int, c *Node) error {
	if i < 0 || i >= len(n.children) {
		return asterrors.New(asterrors.RangeError, "SetChild: index out of range", "index", i, "numChildren", len(n.children))
	}
	if c == nil {
		return asterrors.New(asterrors.NullChildError, "SetChild: child must not be nil")
	}
	old := n.children[i]
	old.RemoveParent(n)
	n.children[i] = c
	c.SetParent(n)
	return n.init()
}

// updateParents walks n's currently-live parents and re-runs their init(),
// which in turn (transitively) calls updateParents on them. Termination is
// guaranteed because the graph is a DAG: no node can be its own descendant.
func (n *Node) updateParents() error {
	for _, p := range n.GetParents() {
		if err := p.init(); err != nil {
			return err
		}
	}
	return nil
}

// frame is one entry of the explicit work stack PostOrder walks instead of
// recursing, so that a deeply right-leaning tree (a long chain of nested
// lets or extracts, say) cannot blow the Go call stack.
type frame struct {
	n        *Node
	childIdx int
}

// PostOrder returns every node reachable from root exactly once, children
// before parents, and root last. Nodes reachable through more than one
// path (DAG sharing) are visited, and appear in the result, only the first
// time they are reached.
func PostOrder(root *Node) []*Node {
	if root == nil {
		return nil
	}
	visited := make(map[*Node]bool)
	var order []*Node

	st := stack.NewStack[frame]()
	st.Push(frame{n: root})
	for !st.IsEmpty() {
		top := st.Top()
		if top.childIdx < len(top.n.children) {
			c := top.n.children[top.childIdx]
			top.childIdx++
			if !visited[c] {
				st.Push(frame{n: c})
			}
			continue
		}
		f := st.Pop()
		if !visited[f.n] {
			visited[f.n] = true
			order = append(order, f.n)
		}
	}
	return order
}

// Clone returns a structurally identical but wholly independent copy of n:
// every reachable child is itself freshly cloned (recursively), dispatched
// by kind to copy the right payload fields. A cache keyed by the original
// node's identity preserves sharing within a single Clone call, so a DAG
// with diamond-shaped sharing does not blow up into a tree; this is an
// implementation refinement over a naively recursive copy, not a semantic
// difference, since the result is still structurally equal node-for-node.
//
// The clone is detached from any context (env is copied as-is, a
// non-owning reference) and has no parents of its own; callers re-attach it
// as a child via AddChild/SetChild as needed.
func (n *Node) Clone() *Node {
	return n.cloneWithCache(make(map[*Node]*Node))
}

func (n *Node) cloneWithCache(cache map[*Node]*Node) *Node {
	if existing, ok := cache[n]; ok {
		return existing
	}
	clone := &Node{
		kind:         n.kind,
		size:         n.size,
		eval:         n.eval,
		symbolized:   n.symbolized,
		env:          n.env,
		parents:      newParentSet(),
		decimalValue: n.decimalValue,
		stringValue:  n.stringValue,
		refID:        n.refID,
	}
	cache[n] = clone
	if len(n.children) > 0 {
		clone.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			cc := c.cloneWithCache(cache)
			clone.children[i] = cc
			cc.SetParent(clone)
		}
	}
	return clone
}
