package lua

import (
	"strings"

	"pylua/parser"
	"pylua/types"
)

// Lua operator precedence levels (higher = tighter binding)
const (
	precedenceLowest = iota
	precedenceOr          // or
	precedenceAnd         // and
	precedenceComparison  // < > <= >= ~= ==
	precedenceBitOr       // |
	precedenceBitXor      // ~
	precedenceBitAnd      // &
	precedenceShift       // << >>
	precedenceConcat      // .. (right associative)
	precedenceAdditive    // + -
	precedenceMultiply    // * / // %
	precedenceUnary       // not # - ~
	precedenceExponent    // ^ (right associative)
	precedenceProperty    // names, calls, constructors
)

type binaryOp struct {
	text       string
	precedence int
	rightAssoc bool
}

var binaryOps = map[parser.OpType]binaryOp{
	parser.OP_ADD:      {"+", precedenceAdditive, false},
	parser.OP_SUB:      {"-", precedenceAdditive, false},
	parser.OP_MULT:     {"*", precedenceMultiply, false},
	parser.OP_DIV:      {"/", precedenceMultiply, false},
	parser.OP_FLOORDIV: {"//", precedenceMultiply, false},
	parser.OP_MOD:      {"%", precedenceMultiply, false},
	parser.OP_POW:      {"^", precedenceExponent, true},
	parser.OP_LSHIFT:   {"<<", precedenceShift, false},
	parser.OP_RSHIFT:   {">>", precedenceShift, false},
	parser.OP_BITOR:    {"|", precedenceBitOr, false},
	parser.OP_BITXOR:   {"~", precedenceBitXor, false},
	parser.OP_BITAND:   {"&", precedenceBitAnd, false},
}

var concatOp = binaryOp{"..", precedenceConcat, true}

var compareOps = map[parser.OpType]string{
	parser.OP_EQ:    "==",
	parser.OP_NOTEQ: "~=",
	parser.OP_LT:    "<",
	parser.OP_LTE:   "<=",
	parser.OP_GT:    ">",
	parser.OP_GTE:   ">=",
	parser.OP_IS:    "==",
	parser.OP_ISNOT: "~=",
}

var unaryOps = map[parser.OpType]string{
	parser.OP_NOT:    "not ",
	parser.OP_USUB:   "-",
	parser.OP_INVERT: "~",
	parser.OP_UADD:   "",
}

// expr emits a single-line expression. Comprehensions inside x write their
// preamble to the output before the caller writes its own line.
func (e *emitter) expr(x parser.Expr) (string, error) {
	return e.exprPrec(x, precedenceLowest)
}

// multiExpr emits x where Lua accepts a value list: a tuple is flattened
// into its comma-joined elements.
func (e *emitter) multiExpr(x parser.Expr) (string, error) {
	if t, ok := x.(*parser.Tuple); ok {
		return e.exprList(t.Elts)
	}
	return e.expr(x)
}

func (e *emitter) exprList(xs []parser.Expr) (string, error) {
	parts := make([]string, 0, len(xs))
	for _, x := range xs {
		s, err := e.expr(x)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", "), nil
}

func wrap(s string, prec, parent int) string {
	if prec < parent {
		return "(" + s + ")"
	}
	return s
}

func (e *emitter) exprPrec(x parser.Expr, parent int) (string, error) {
	switch x := x.(type) {
	case *parser.Name:
		return x.ID, nil

	case *parser.Constant:
		s := x.Value.String()
		if isNegativeNumber(x.Value) {
			return wrap(s, precedenceUnary, parent), nil
		}
		return s, nil

	case *parser.Attribute:
		base, err := e.prefixExpr(x.Value)
		if err != nil {
			return "", err
		}
		return base + "." + x.Attr, nil

	case *parser.Call:
		return e.call(x)

	case *parser.List:
		return e.constructor(x.Elts)

	case *parser.Set:
		return e.constructor(x.Elts)

	case *parser.Tuple:
		// Lua has no tuples; a nested tuple becomes a table
		return e.constructor(x.Elts)

	case *parser.Dict:
		parts := make([]string, 0, len(x.Keys))
		for i, k := range x.Keys {
			if k == nil {
				return "", e.unsupported(x, "dictionary unpacking")
			}
			if overriddenKey(x.Keys, i) {
				// the later entry wins; Lua leaves repeated keys in a constructor unordered
				switch x.Values[i].(type) {
				case *parser.Constant, *parser.Name:
					continue
				}
				return "", e.unsupported(x, "repeated key %s with a computed value", k.(*parser.Constant).Value)
			}
			key, err := e.expr(k)
			if err != nil {
				return "", err
			}
			val, err := e.expr(x.Values[i])
			if err != nil {
				return "", err
			}
			parts = append(parts, "["+key+"] = "+val)
		}
		return "{" + strings.Join(parts, ", ") + "}", nil

	case *parser.BinOp:
		return e.binOp(x, parent)

	case *parser.UnaryOp:
		return e.unaryOp(x, parent)

	case *parser.BoolOp:
		word := " and "
		prec := precedenceAnd
		if x.Op == parser.OP_OR {
			word = " or "
			prec = precedenceOr
		}
		parts := make([]string, 0, len(x.Values))
		for i, v := range x.Values {
			saved := e.lines
			if i > 0 {
				e.lines = nil
			}
			s, err := e.exprPrec(v, prec+1)
			if i > 0 {
				pre := e.lines
				e.lines = saved
				// a preamble would run even when the operand is skipped
				if err == nil && len(pre) > 0 {
					return "", e.unsupported(x, "comprehension in short-circuit operand")
				}
			}
			if err != nil {
				return "", err
			}
			parts = append(parts, s)
		}
		return "(" + strings.Join(parts, word) + ")", nil

	case *parser.Compare:
		return e.compare(x, parent)

	case *parser.Lambda:
		params, err := e.params(x, x.Args)
		if err != nil {
			return "", err
		}
		pre, body, err := e.captureExpr(x.Body, 0)
		if err != nil {
			return "", err
		}
		if len(pre) > 0 {
			return "", e.unsupported(x, "comprehension in lambda body")
		}
		return "function(" + strings.Join(params, ", ") + ") return " + body + " end", nil

	case *parser.Await:
		call, err := e.resume(x)
		if err != nil {
			return "", err
		}
		// resume yields a status flag first; keep only the value
		return "select(2, " + call + ")", nil

	case *parser.ListComp, *parser.SetComp, *parser.DictComp, *parser.GeneratorExp:
		return e.comprehension(x)

	case *parser.Starred:
		return "", e.unsupported(x, "starred expression")

	default:
		return "", e.unsupported(x, "no translation rule for expression")
	}
}

// prefixExpr emits x so that it can be indexed or called
func (e *emitter) prefixExpr(x parser.Expr) (string, error) {
	s, err := e.exprPrec(x, precedenceProperty)
	if err != nil {
		return "", err
	}
	switch x.(type) {
	case *parser.Constant, *parser.List, *parser.Set, *parser.Tuple, *parser.Dict, *parser.Lambda:
		if !strings.HasPrefix(s, "(") {
			return "(" + s + ")", nil
		}
	}
	return s, nil
}

// overriddenKey reports whether keys[i] is a constant repeated later on
func overriddenKey(keys []parser.Expr, i int) bool {
	c, ok := keys[i].(*parser.Constant)
	if !ok {
		return false
	}
	for _, k := range keys[i+1:] {
		if later, ok := k.(*parser.Constant); ok && later.Value.Equal(c.Value) {
			return true
		}
	}
	return false
}

func (e *emitter) constructor(elts []parser.Expr) (string, error) {
	items, err := e.exprList(elts)
	if err != nil {
		return "", err
	}
	return "{" + items + "}", nil
}

func isNegativeNumber(v types.Value) bool {
	switch v.Type() {
	case types.TYPE_INT, types.TYPE_FLOAT:
		return strings.HasPrefix(v.String(), "-")
	}
	return false
}

// isStringy reports whether x is known to produce a string, which turns +
// into concatenation
func isStringy(x parser.Expr) bool {
	switch x := x.(type) {
	case *parser.Constant:
		return x.Value.Type() == types.TYPE_STR
	case *parser.BinOp:
		return x.Op == parser.OP_ADD && (isStringy(x.Left) || isStringy(x.Right))
	}
	return false
}

func (e *emitter) binOp(x *parser.BinOp, parent int) (string, error) {
	op, ok := binaryOps[x.Op]
	if !ok {
		return "", e.unsupported(x, "operator %s", x.Op)
	}
	if x.Op == parser.OP_ADD && (isStringy(x.Left) || isStringy(x.Right)) {
		op = concatOp
	}

	leftPrec, rightPrec := op.precedence, op.precedence+1
	if op.rightAssoc {
		leftPrec, rightPrec = op.precedence+1, op.precedence
	}
	left, err := e.exprPrec(x.Left, leftPrec)
	if err != nil {
		return "", err
	}
	right, err := e.exprPrec(x.Right, rightPrec)
	if err != nil {
		return "", err
	}
	return wrap(left+" "+op.text+" "+right, op.precedence, parent), nil
}

func (e *emitter) unaryOp(x *parser.UnaryOp, parent int) (string, error) {
	text, ok := unaryOps[x.Op]
	if !ok {
		return "", e.unsupported(x, "operator %s", x.Op)
	}
	if x.Op == parser.OP_UADD {
		return e.exprPrec(x.Operand, parent)
	}
	operand, err := e.exprPrec(x.Operand, precedenceUnary)
	if err != nil {
		return "", err
	}
	// "--" would start a comment
	if x.Op == parser.OP_USUB && strings.HasPrefix(operand, "-") {
		operand = "(" + operand + ")"
	}
	return wrap(text+operand, precedenceUnary, parent), nil
}

func (e *emitter) compare(x *parser.Compare, parent int) (string, error) {
	if len(x.Ops) == 0 || len(x.Ops) != len(x.Comparators) {
		return "", e.unsupported(x, "malformed comparison")
	}
	operands := make([]string, 0, len(x.Comparators)+1)
	for _, c := range append([]parser.Expr{x.Left}, x.Comparators...) {
		s, err := e.exprPrec(c, precedenceComparison+1)
		if err != nil {
			return "", err
		}
		operands = append(operands, s)
	}

	parts := make([]string, 0, len(x.Ops))
	for i, op := range x.Ops {
		text, ok := compareOps[op]
		if !ok {
			return "", e.unsupported(x, "operator %s", op)
		}
		parts = append(parts, operands[i]+" "+text+" "+operands[i+1])
	}
	if len(parts) == 1 {
		return wrap(parts[0], precedenceComparison, parent), nil
	}
	// a < b < c holds pairwise
	return "(" + strings.Join(parts, " and ") + ")", nil
}

// call emits a call; a truthy method marker keyword selects receiver:method()
func (e *emitter) call(c *parser.Call) (string, error) {
	p, err := e.callParts(c)
	if err != nil {
		return "", err
	}
	callee := p.fn
	if p.recv != "" {
		callee = p.recv + ":" + p.method
	}
	return callee + "(" + strings.Join(p.args, ", ") + ")", nil
}

// callShape is a call split into callee and arguments. recv and method are
// set for method calls, in which case fn is unused.
type callShape struct {
	fn     string
	recv   string
	method string
	args   []string
}

func (e *emitter) callParts(c *parser.Call) (callShape, error) {
	var p callShape
	method := false
	for _, kw := range c.Keywords {
		if kw.Arg == "" {
			return p, e.unsupported(c, "keyword argument unpacking")
		}
		if !e.cfg.isMethodMarker(kw.Arg) {
			return p, e.unsupported(c, "keyword argument %q", kw.Arg)
		}
		flag, ok := kw.Value.(*parser.Constant)
		if !ok {
			return p, e.unsupported(c, "method marker %q must be a constant", kw.Arg)
		}
		method = flag.Value.Truthy()
	}

	if attr, ok := c.Func.(*parser.Attribute); ok && method {
		recv, err := e.prefixExpr(attr.Value)
		if err != nil {
			return p, err
		}
		p.recv, p.method = recv, attr.Attr
	} else {
		switch c.Func.(type) {
		case *parser.Name, *parser.Attribute, *parser.Call:
		default:
			return p, e.unsupported(c.Func, "callee %s", c.Func.Kind())
		}
		fn, err := e.prefixExpr(c.Func)
		if err != nil {
			return p, err
		}
		p.fn = fn
	}

	p.args = make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		s, err := e.expr(a)
		if err != nil {
			return p, err
		}
		p.args = append(p.args, s)
	}
	return p, nil
}
