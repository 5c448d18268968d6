package astnodes

import "github.com/kschiffer/bvast/wideint"

// Environment is the narrow interface a variable node needs from the
// builder context that owns it. astcontext.Context satisfies this; astnodes
// depends only on the interface so the two packages do not import each
// other (astcontext already needs to import astnodes to construct nodes).
type Environment interface {
	// LookupVariable returns the current concrete value bound to name and
	// whether a binding exists at all. A variable node built through a
	// context is registered before it is constructed, so in practice this
	// returns ok==true for it; the variable node itself ignores ok and uses
	// the returned value (zero when there is no binding).
	LookupVariable(name string) (wideint.U512, bool)
}
