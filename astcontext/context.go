// Package astcontext provides the single owning factory for astnodes.Node
// trees: every node is created through a Context, which also holds the
// variable environment a tree's variable nodes resolve their values
// against. Two contexts are entirely independent; nothing here is safe for
// concurrent use by design (see the package-level Concurrency note on
// Context).
package astcontext

import (
	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/astnodes"
	"github.com/kschiffer/bvast/internal/callcounters"
	"github.com/kschiffer/bvast/printer"
	"github.com/kschiffer/bvast/wideint"
)

// varBinding is the owning handle to a variable node plus its current
// concrete value, exactly as stored in Context.variables. The node, not a
// copy of it, is what a tree's variable leaves hold; UpdateVariable must
// mutate this same node for propagation to observe the change.
type varBinding struct {
	node  *astnodes.Node
	value wideint.U512
}

// Context is the builder/factory for a single, independent AST: it is the
// only way to construct nodes, owns the variable table, and selects which
// printer renders its trees. A Context and every node reachable from it
// form one logical ownership domain; as the single-threaded cooperative
// model (mirrored from the original core) states, it is mutated by one
// goroutine at a time; two Contexts never interact.
type Context struct {
	variables   map[string]*varBinding
	mode        printer.Mode
	diagnostics bool
}

// NewContext builds an empty Context, applying opts in order.
func NewContext(opts ...Option) *Context {
	c := &Context{
		variables: make(map[string]*varBinding),
		mode:      printer.SMT,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LookupVariable implements astnodes.Environment: it is how a variable
// node, at init() time, resolves its own current value.
func (c *Context) LookupVariable(name string) (wideint.U512, bool) {
	b, ok := c.variables[name]
	if !ok {
		return wideint.Zero, false
	}
	return b.value, true
}

// Print renders root using the Context's currently configured mode.
func (c *Context) Print(root *astnodes.Node) (string, error) {
	return printer.Print(root, c.mode)
}

// Nodes enumerates every node reachable from root exactly once, children
// before parents. Used by callers preparing a solver.Model that needs to
// walk a whole subtree (e.g. to collect every variable a constraint
// mentions) without re-deriving their own traversal.
func (c *Context) Nodes(root *astnodes.Node) []*astnodes.Node {
	return astnodes.PostOrder(root)
}

// SetRepresentationMode changes which printer subsequent Print calls use.
func (c *Context) SetRepresentationMode(mode printer.Mode) error {
	if mode != printer.SMT && mode != printer.Python {
		return asterrors.New(asterrors.RepresentationError, "astcontext: unknown representation mode", "mode", int(mode))
	}
	c.mode = mode
	return nil
}

// countConstruction increments the per-kind call counter for kind, a no-op
// unless diagnostics were enabled via WithDiagnostics.
func (c *Context) countConstruction(kind astnodes.Kind) {
	if !c.diagnostics {
		return
	}
	callcounters.Id(kind.String()).Increment()
}
