package solver

import (
	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/astnodes"
	"github.com/kschiffer/bvast/wideint"
)

// NullBridge is a Bridge that never consults an actual solver: Simplify
// returns an independent clone of its input (a structurally-identical new
// root, satisfying the interface's contract trivially), Evaluate reads the
// core's own cached evaluation instead of cross-checking it, and the
// model-search operations report that no solver is attached. It exists so
// astcontext and its callers are exercisable in tests without wiring a real
// SMT solver.
type NullBridge struct{}

var _ Bridge = NullBridge{}

func (NullBridge) Simplify(root *astnodes.Node) (*astnodes.Node, error) {
	return root.Clone(), nil
}

func (NullBridge) Evaluate(root *astnodes.Node) (wideint.U512, error) {
	return root.Evaluate(), nil
}

func (NullBridge) GetModel(constraint *astnodes.Node) (map[string]wideint.U512, error) {
	return nil, asterrors.New(asterrors.SolverError, "NullBridge: no solver attached")
}

func (NullBridge) GetModels(constraint *astnodes.Node, limit int) ([]map[string]wideint.U512, error) {
	return nil, asterrors.New(asterrors.SolverError, "NullBridge: no solver attached")
}
