package parser

import "fmt"

// OpType identifies an operator carried by an operator node.
// Names follow the source grammar's operator node names.
type OpType int

const (
	OP_ILLEGAL OpType = iota

	// Binary and augmented-assignment operators
	OP_ADD      // +
	OP_SUB      // -
	OP_MULT     // *
	OP_DIV      // /
	OP_FLOORDIV // //
	OP_MOD      // %
	OP_POW      // **
	OP_LSHIFT   // <<
	OP_RSHIFT   // >>
	OP_BITOR    // |
	OP_BITXOR   // ^
	OP_BITAND   // &
	OP_MATMULT  // @

	// Comparison operators
	OP_EQ    // ==
	OP_NOTEQ // !=
	OP_LT    // <
	OP_LTE   // <=
	OP_GT    // >
	OP_GTE   // >=
	OP_IS    // is
	OP_ISNOT // is not
	OP_IN    // in
	OP_NOTIN // not in

	// Boolean operators
	OP_AND // and
	OP_OR  // or

	// Unary operators
	OP_NOT    // not
	OP_USUB   // -x
	OP_UADD   // +x
	OP_INVERT // ~x
)

var opNames = [...]string{
	OP_ILLEGAL:  "ILLEGAL",
	OP_ADD:      "Add",
	OP_SUB:      "Sub",
	OP_MULT:     "Mult",
	OP_DIV:      "Div",
	OP_FLOORDIV: "FloorDiv",
	OP_MOD:      "Mod",
	OP_POW:      "Pow",
	OP_LSHIFT:   "LShift",
	OP_RSHIFT:   "RShift",
	OP_BITOR:    "BitOr",
	OP_BITXOR:   "BitXor",
	OP_BITAND:   "BitAnd",
	OP_MATMULT:  "MatMult",
	OP_EQ:       "Eq",
	OP_NOTEQ:    "NotEq",
	OP_LT:       "Lt",
	OP_LTE:      "LtE",
	OP_GT:       "Gt",
	OP_GTE:      "GtE",
	OP_IS:       "Is",
	OP_ISNOT:    "IsNot",
	OP_IN:       "In",
	OP_NOTIN:    "NotIn",
	OP_AND:      "And",
	OP_OR:       "Or",
	OP_NOT:      "Not",
	OP_USUB:     "USub",
	OP_UADD:     "UAdd",
	OP_INVERT:   "Invert",
}

// String returns the operator's node name (e.g. "Add", "NotEq")
func (op OpType) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("OpType(%d)", int(op))
}

// LookupOp maps an operator node name to its OpType
func LookupOp(name string) (OpType, bool) {
	for i, n := range opNames {
		if n == name && OpType(i) != OP_ILLEGAL {
			return OpType(i), true
		}
	}
	return OP_ILLEGAL, false
}

// IsBinary reports whether op may appear in a BinOp or AugAssign
func (op OpType) IsBinary() bool { return op >= OP_ADD && op <= OP_MATMULT }

// IsCompare reports whether op may appear in a Compare
func (op OpType) IsCompare() bool { return op >= OP_EQ && op <= OP_NOTIN }

// IsBool reports whether op may appear in a BoolOp
func (op OpType) IsBool() bool { return op == OP_AND || op == OP_OR }

// IsUnary reports whether op may appear in a UnaryOp
func (op OpType) IsUnary() bool { return op >= OP_NOT && op <= OP_INVERT }

// Position represents a position in the source program
type Position struct {
	Line   int
	Column int
}

// String renders the position as line:col
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
