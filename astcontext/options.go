package astcontext

import "github.com/kschiffer/bvast/printer"

// Option configures a Context at construction time.
type Option func(*Context)

// WithRepresentationMode selects the printer mode a new Context starts
// with. Defaults to printer.SMT.
func WithRepresentationMode(mode printer.Mode) Option {
	return func(c *Context) {
		c.mode = mode
	}
}

// WithDiagnostics enables per-kind construction call counters
// (internal/callcounters), off by default so that ordinary use pays no
// bookkeeping cost.
func WithDiagnostics(enabled bool) Option {
	return func(c *Context) {
		c.diagnostics = enabled
	}
}
