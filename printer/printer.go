// Package printer renders an astnodes.Node tree as concrete surface syntax,
// dispatching between a closed set of output modes. It depends only on
// astnodes, never on astcontext, so a context can own a Mode and delegate
// printing without astnodes ever needing to know printer exists.
package printer

import (
	"strings"

	"github.com/kschiffer/bvast/asterrors"
	"github.com/kschiffer/bvast/astnodes"
)

// Mode selects which concrete syntax Print emits.
type Mode int

const (
	// SMT renders SMT-LIB 2 concrete syntax.
	SMT Mode = iota
	// Python renders a Python-like scripting expression surface.
	Python
)

func (m Mode) String() string {
	switch m {
	case SMT:
		return "smt"
	case Python:
		return "python"
	default:
		return "<invalid mode>"
	}
}

// Print renders root in the given mode, returning the concrete-syntax
// string. An unrecognized mode is a construction-time-style error, not a
// panic, since the mode usually arrives from context configuration rather
// than a compile-time constant.
func Print(root *astnodes.Node, mode Mode) (string, error) {
	var sb strings.Builder
	switch mode {
	case SMT:
		writeSMT(&sb, root)
	case Python:
		writePython(&sb, root)
	default:
		return "", asterrors.New(asterrors.RepresentationError, "printer: unknown mode", "mode", int(mode))
	}
	return sb.String(), nil
}

// CommentPrefix returns the line-comment marker for mode.
func CommentPrefix(mode Mode) string {
	switch mode {
	case Python:
		return "#"
	default:
		return ";"
	}
}

// Comment renders text as a single comment line in mode's surface syntax.
func Comment(mode Mode, text string) string {
	return CommentPrefix(mode) + " " + text
}
