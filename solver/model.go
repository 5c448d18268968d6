package solver

import "github.com/kschiffer/bvast/astnodes"

// Model is the minimal record the core needs to hand a root expression to a
// bridge implementation together with enough metadata (id, kind, a
// free-form comment, and an origin tag) for a symbolic-execution engine to
// track where it came from. The engine that would populate richer metadata
// is an external collaborator, out of scope here.
type Model struct {
	ID      uint64
	Kind    string
	Comment string
	Origin  string
	Root    *astnodes.Node
}
