package astcontext

import (
	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/astnodes"
	"github.com/kschiffer/bvast/wideint"
)

// Variable returns the context's variable node named name, creating it
// (with an initial value of zero) if it does not already exist. If a
// binding with this name already exists, its declared size must match size
// exactly; a mismatch is a VariableError rather than silently returning the
// existing, differently-sized node.
func (c *Context) Variable(name string, size uint32) (*astnodes.Node, error) {
	if b, ok := c.variables[name]; ok {
		if b.node.GetBitvectorSize() != size {
			return nil, asterrors.New(asterrors.VariableError, "astcontext: variable redeclared with a different size",
				"name", name, "existingSize", b.node.GetBitvectorSize(), "requestedSize", size)
		}
		return b.node, nil
	}
	return c.InitVariable(name, size, wideint.Zero)
}

// InitVariable creates and registers a new variable node named name with
// the given declared size and initial value. It is an error for name to
// already be bound in this context.
func (c *Context) InitVariable(name string, size uint32, value wideint.U512) (*astnodes.Node, error) {
	if _, exists := c.variables[name]; exists {
		return nil, asterrors.New(asterrors.VariableError, "astcontext: variable already exists", "name", name)
	}
	b := &varBinding{value: wideint.MaskTo(value, size)}
	// Registered before NewVariable so the node's own init() can already see
	// its initial value via Context.LookupVariable.
	c.variables[name] = b
	node, err := astnodes.NewVariable(c, name, size)
	if err != nil {
		delete(c.variables, name)
		return nil, err
	}
	b.node = node
	c.countConstruction(astnodes.KindVariable)
	return node, nil
}

// UpdateVariable rebinds name's current value and re-runs init() on the one
// variable node the whole AST shares for that name, which propagates the
// change to every node that (transitively) depends on it.
func (c *Context) UpdateVariable(name string, value wideint.U512) error {
	b, ok := c.variables[name]
	if !ok {
		return asterrors.New(asterrors.VariableError, "astcontext: no such variable", "name", name)
	}
	b.value = wideint.MaskTo(value, b.node.GetBitvectorSize())
	return b.node.Reinit()
}

// GetValueForVariable returns the current concrete value bound to name.
func (c *Context) GetValueForVariable(name string) (wideint.U512, error) {
	b, ok := c.variables[name]
	if !ok {
		return wideint.Zero, asterrors.New(asterrors.VariableError, "astcontext: no such variable", "name", name)
	}
	return b.value, nil
}
