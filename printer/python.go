package printer

import (
	"strconv"
	"strings"

	"github.com/kschiffer/bvast/astnodes"
)

func writePython(sb *strings.Builder, n *astnodes.Node) {
	switch n.Kind() {
	case astnodes.KindDecimal:
		sb.WriteString(n.DecimalValue().BigInt().String())
	case astnodes.KindString:
		sb.WriteString(n.Name())
	case astnodes.KindVariable:
		sb.WriteString(n.Name())
	case astnodes.KindReference:
		sb.WriteString("ref_")
		sb.WriteString(strconv.FormatUint(n.ReferenceID(), 10))
	case astnodes.KindBV:
		sb.WriteString(n.Evaluate().BigInt().String())

	case astnodes.KindBVAdd:
		writeMaskedBinary(sb, n, "+")
	case astnodes.KindBVSub:
		writeMaskedBinary(sb, n, "-")
	case astnodes.KindBVMul:
		writeMaskedBinary(sb, n, "*")
	case astnodes.KindBVAnd:
		writeBinary(sb, n, "&")
	case astnodes.KindBVOr:
		writeBinary(sb, n, "|")
	case astnodes.KindBVXor:
		writeBinary(sb, n, "^")
	case astnodes.KindBVNand:
		writeNegatedBinary(sb, n, "&")
	case astnodes.KindBVNor:
		writeNegatedBinary(sb, n, "|")
	case astnodes.KindBVXnor:
		writeNegatedBinary(sb, n, "^")
	case astnodes.KindBVNeg:
		writeMaskedUnary(sb, n, "-")
	case astnodes.KindBVNot:
		writeMaskedUnary(sb, n, "~")
	case astnodes.KindBVShl:
		writeMaskedBinary(sb, n, "<<")
	case astnodes.KindBVLshr:
		writeBinary(sb, n, ">>")
	case astnodes.KindBVAshr:
		writeHelperCallWithSize(sb, n, "ashr")
	case astnodes.KindBVRol:
		writeRotatePython(sb, n, "rotl")
	case astnodes.KindBVRor:
		writeRotatePython(sb, n, "rotr")
	case astnodes.KindBVUdiv:
		writeBinary(sb, n, "//")
	case astnodes.KindBVUrem:
		writeBinary(sb, n, "%")
	case astnodes.KindBVSdiv:
		writeHelperCallWithSize(sb, n, "sdiv")
	case astnodes.KindBVSrem:
		writeHelperCallWithSize(sb, n, "srem")
	case astnodes.KindBVSmod:
		writeHelperCallWithSize(sb, n, "smod")
	case astnodes.KindBVUge:
		writeBinary(sb, n, ">=")
	case astnodes.KindBVUgt:
		writeBinary(sb, n, ">")
	case astnodes.KindBVUle:
		writeBinary(sb, n, "<=")
	case astnodes.KindBVUlt:
		writeBinary(sb, n, "<")
	case astnodes.KindBVSge:
		writeHelperCallWithSize(sb, n, "sge")
	case astnodes.KindBVSgt:
		writeHelperCallWithSize(sb, n, "sgt")
	case astnodes.KindBVSle:
		writeHelperCallWithSize(sb, n, "sle")
	case astnodes.KindBVSlt:
		writeHelperCallWithSize(sb, n, "slt")
	case astnodes.KindEqual:
		writeBinary(sb, n, "==")
	case astnodes.KindDistinct:
		writeBinary(sb, n, "!=")

	case astnodes.KindConcat:
		sb.WriteString("concat(")
		writePythonChildren(sb, n.GetChildren())
		sb.WriteString(")")
	case astnodes.KindExtract:
		children := n.GetChildren()
		sb.WriteString("extract(")
		writePython(sb, children[2])
		sb.WriteString(", ")
		sb.WriteString(strconv.FormatUint(children[0].DecimalValue().Uint64(), 10))
		sb.WriteString(", ")
		sb.WriteString(strconv.FormatUint(children[1].DecimalValue().Uint64(), 10))
		sb.WriteString(")")
	case astnodes.KindSX:
		writeExtendPython(sb, n, "sx")
	case astnodes.KindZX:
		writeExtendPython(sb, n, "zx")
	case astnodes.KindITE:
		children := n.GetChildren()
		sb.WriteString("(")
		writePython(sb, children[1])
		sb.WriteString(" if ")
		writePython(sb, children[0])
		sb.WriteString(" else ")
		writePython(sb, children[2])
		sb.WriteString(")")
	case astnodes.KindLand:
		writeNaryBoolPython(sb, n, " and ")
	case astnodes.KindLor:
		writeNaryBoolPython(sb, n, " or ")
	case astnodes.KindLNot:
		sb.WriteString("(not ")
		writePython(sb, n.GetChildren()[0])
		sb.WriteString(")")
	case astnodes.KindLet:
		children := n.GetChildren()
		sb.WriteString("(lambda ")
		sb.WriteString(children[0].Name())
		sb.WriteString(": ")
		writePython(sb, children[2])
		sb.WriteString(")(")
		writePython(sb, children[1])
		sb.WriteString(")")
	}
}

func writeBinary(sb *strings.Builder, n *astnodes.Node, op string) {
	children := n.GetChildren()
	sb.WriteString("(")
	writePython(sb, children[0])
	sb.WriteString(" " + op + " ")
	writePython(sb, children[1])
	sb.WriteString(")")
}

func writeMaskedBinary(sb *strings.Builder, n *astnodes.Node, op string) {
	writeBinary(sb, n, op)
	sb.WriteString(" & ")
	sb.WriteString(maskLiteral(n))
}

func writeNegatedBinary(sb *strings.Builder, n *astnodes.Node, op string) {
	children := n.GetChildren()
	sb.WriteString("(~(")
	writePython(sb, children[0])
	sb.WriteString(" " + op + " ")
	writePython(sb, children[1])
	sb.WriteString(")) & ")
	sb.WriteString(maskLiteral(n))
}

func writeMaskedUnary(sb *strings.Builder, n *astnodes.Node, op string) {
	sb.WriteString("(" + op)
	writePython(sb, n.GetChildren()[0])
	sb.WriteString(") & ")
	sb.WriteString(maskLiteral(n))
}

// writeHelperCallWithSize covers operators whose Python rendering as a bare
// infix expression would not reproduce fixed-width signed/arithmetic
// semantics (arithmetic shift, signed division family, signed comparisons):
// these are emitted as calls into a small runtime helper library parameterized
// by bit width instead.
func writeHelperCallWithSize(sb *strings.Builder, n *astnodes.Node, fn string) {
	children := n.GetChildren()
	sb.WriteString(fn)
	sb.WriteString("(")
	writePython(sb, children[0])
	sb.WriteString(", ")
	writePython(sb, children[1])
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatUint(uint64(children[0].GetBitvectorSize()), 10))
	sb.WriteString(")")
}

func writeRotatePython(sb *strings.Builder, n *astnodes.Node, fn string) {
	children := n.GetChildren()
	sb.WriteString(fn)
	sb.WriteString("(")
	writePython(sb, children[1])
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatUint(children[0].DecimalValue().Uint64(), 10))
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatUint(uint64(n.GetBitvectorSize()), 10))
	sb.WriteString(")")
}

func writeExtendPython(sb *strings.Builder, n *astnodes.Node, fn string) {
	children := n.GetChildren()
	sb.WriteString(fn)
	sb.WriteString("(")
	writePython(sb, children[1])
	sb.WriteString(", ")
	sb.WriteString(strconv.FormatUint(children[0].DecimalValue().Uint64(), 10))
	sb.WriteString(")")
}

func writeNaryBoolPython(sb *strings.Builder, n *astnodes.Node, sep string) {
	sb.WriteString("(")
	for i, c := range n.GetChildren() {
		if i > 0 {
			sb.WriteString(sep)
		}
		writePython(sb, c)
	}
	sb.WriteString(")")
}

func writePythonChildren(sb *strings.Builder, children []*astnodes.Node) {
	for i, c := range children {
		if i > 0 {
			sb.WriteString(", ")
		}
		writePython(sb, c)
	}
}

func maskLiteral(n *astnodes.Node) string {
	return "0x" + n.GetBitvectorMask().BigInt().Text(16)
}
