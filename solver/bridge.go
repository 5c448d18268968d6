// Package solver declares the narrow interface the core AST exposes to an
// external solver, without depending on any concrete solver implementation.
package solver

import (
	"github.com/kschiffer/bvast/astnodes"
	"github.com/kschiffer/bvast/wideint"
)

// Bridge is satisfied by anything able to simplify, ground-evaluate, and
// model-search an AST root. Implementations are total functions: the core
// does not assume completeness, only that every call returns (possibly a
// "could not do better" answer, or a SolverError).
type Bridge interface {
	// Simplify returns a structurally new root with the same logical
	// meaning as root.
	Simplify(root *astnodes.Node) (*astnodes.Node, error)
	// Evaluate ground-evaluates root via the external solver, for
	// cross-checking the core's own cached Evaluate().
	Evaluate(root *astnodes.Node) (wideint.U512, error)
	// GetModel returns one satisfying assignment (variable name -> value)
	// for constraint, a logical-typed root.
	GetModel(constraint *astnodes.Node) (map[string]wideint.U512, error)
	// GetModels returns up to limit distinct satisfying assignments.
	GetModels(constraint *astnodes.Node, limit int) ([]map[string]wideint.U512, error)
}
