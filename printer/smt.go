package printer

import (
	"strconv"
	"strings"

	"github.com/kschiffer/bvast/astnodes"
)

func writeSMT(sb *strings.Builder, n *astnodes.Node) {
	switch n.Kind() {
	case astnodes.KindDecimal:
		sb.WriteString(n.DecimalValue().BigInt().String())
	case astnodes.KindString:
		sb.WriteString(n.Name())
	case astnodes.KindVariable:
		sb.WriteString(n.Name())
	case astnodes.KindReference:
		sb.WriteString("ref!")
		sb.WriteString(strconv.FormatUint(n.ReferenceID(), 10))
	case astnodes.KindBV:
		children := n.GetChildren()
		sb.WriteString("(_ bv")
		sb.WriteString(children[0].DecimalValue().BigInt().String())
		sb.WriteString(" ")
		sb.WriteString(strconv.FormatUint(uint64(n.GetBitvectorSize()), 10))
		sb.WriteString(")")
	case astnodes.KindExtract:
		children := n.GetChildren()
		sb.WriteString("((_ extract ")
		sb.WriteString(strconv.FormatUint(children[0].DecimalValue().Uint64(), 10))
		sb.WriteString(" ")
		sb.WriteString(strconv.FormatUint(children[1].DecimalValue().Uint64(), 10))
		sb.WriteString(") ")
		writeSMT(sb, children[2])
		sb.WriteString(")")
	case astnodes.KindSX:
		writeExtendSMT(sb, n, "sign_extend")
	case astnodes.KindZX:
		writeExtendSMT(sb, n, "zero_extend")
	case astnodes.KindBVRol:
		writeRotateSMT(sb, n, "rotate_left")
	case astnodes.KindBVRor:
		writeRotateSMT(sb, n, "rotate_right")
	case astnodes.KindITE:
		sb.WriteString("(ite ")
		writeSMTChildren(sb, n.GetChildren())
		sb.WriteString(")")
	case astnodes.KindLet:
		children := n.GetChildren()
		sb.WriteString("(let ((")
		sb.WriteString(children[0].Name())
		sb.WriteString(" ")
		writeSMT(sb, children[1])
		sb.WriteString(")) ")
		writeSMT(sb, children[2])
		sb.WriteString(")")
	case astnodes.KindLand:
		sb.WriteString("(and ")
		writeSMTChildren(sb, n.GetChildren())
		sb.WriteString(")")
	case astnodes.KindLor:
		sb.WriteString("(or ")
		writeSMTChildren(sb, n.GetChildren())
		sb.WriteString(")")
	case astnodes.KindLNot:
		sb.WriteString("(not ")
		writeSMTChildren(sb, n.GetChildren())
		sb.WriteString(")")
	case astnodes.KindEqual:
		sb.WriteString("(= ")
		writeSMTChildren(sb, n.GetChildren())
		sb.WriteString(")")
	case astnodes.KindConcat:
		sb.WriteString("(concat ")
		writeSMTChildren(sb, n.GetChildren())
		sb.WriteString(")")
	default:
		// Every remaining kind (bvadd, bvsub, bvand, ..., distinct) shares
		// the AST's own kind name with its SMT-LIB operator symbol.
		sb.WriteString("(")
		sb.WriteString(n.Kind().String())
		sb.WriteString(" ")
		writeSMTChildren(sb, n.GetChildren())
		sb.WriteString(")")
	}
}

func writeExtendSMT(sb *strings.Builder, n *astnodes.Node, op string) {
	children := n.GetChildren()
	sb.WriteString("((_ ")
	sb.WriteString(op)
	sb.WriteString(" ")
	sb.WriteString(strconv.FormatUint(children[0].DecimalValue().Uint64(), 10))
	sb.WriteString(") ")
	writeSMT(sb, children[1])
	sb.WriteString(")")
}

func writeRotateSMT(sb *strings.Builder, n *astnodes.Node, op string) {
	children := n.GetChildren()
	sb.WriteString("((_ ")
	sb.WriteString(op)
	sb.WriteString(" ")
	sb.WriteString(strconv.FormatUint(children[0].DecimalValue().Uint64(), 10))
	sb.WriteString(") ")
	writeSMT(sb, children[1])
	sb.WriteString(")")
}

func writeSMTChildren(sb *strings.Builder, children []*astnodes.Node) {
	for i, c := range children {
		if i > 0 {
			sb.WriteString(" ")
		}
		writeSMT(sb, c)
	}
}
