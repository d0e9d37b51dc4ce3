package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"pylua/types"
)

// typeKey names the node kind in a tree document mapping
const typeKey = "_type"

// LoadModule reads and decodes a tree document from disk
func LoadModule(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	mod, err := DecodeModule(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mod, nil
}

// DecodeModule decodes a YAML or JSON tree document.
// The root is a Module mapping, a single statement mapping, or a
// sequence of statements.
func DecodeModule(data []byte) (*Module, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("tree document: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return &Module{}, nil
	}
	return DecodeNode(doc.Content[0])
}

// DecodeNode decodes an already-parsed YAML node into a Module
func DecodeNode(n *yaml.Node) (*Module, error) {
	n = resolve(n)
	if n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		n = resolve(n.Content[0])
	}
	if n.Kind == yaml.SequenceNode {
		body, err := decodeStmts(n)
		if err != nil {
			return nil, err
		}
		return &Module{Body: body}, nil
	}
	if n.Kind != yaml.MappingNode {
		return nil, newDecodeError(n, "expected a mapping or sequence at document root")
	}
	if nodeType(n) == "Module" {
		body, err := decodeStmts(field(n, "body"))
		if err != nil {
			return nil, err
		}
		return &Module{Pos: position(n), Body: body}, nil
	}
	stmt, err := decodeStmt(n)
	if err != nil {
		return nil, err
	}
	return &Module{Pos: stmt.Position(), Body: []Stmt{stmt}}, nil
}

// DecodeExpr decodes a single expression mapping
func DecodeExpr(n *yaml.Node) (Expr, error) {
	return decodeExpr(resolve(n))
}

func newDecodeError(n *yaml.Node, msg string) *DecodeError {
	if n == nil {
		return &DecodeError{Msg: msg}
	}
	return &DecodeError{Line: n.Line, Column: n.Column, Msg: msg}
}

func resolve(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// field returns the value of key in mapping n, or nil when absent or null
func field(n *yaml.Node, key string) *yaml.Node {
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			v := resolve(n.Content[i+1])
			if v.Kind == yaml.ScalarNode && v.Tag == "!!null" {
				return nil
			}
			return v
		}
	}
	return nil
}

func nodeType(n *yaml.Node) string {
	if t := field(n, typeKey); t != nil && t.Kind == yaml.ScalarNode {
		return t.Value
	}
	return ""
}

func stringField(n *yaml.Node, key string) string {
	if v := field(n, key); v != nil && v.Kind == yaml.ScalarNode {
		return v.Value
	}
	return ""
}

func intField(n *yaml.Node, key string) (int, error) {
	v := field(n, key)
	if v == nil {
		return 0, nil
	}
	var i int
	if err := v.Decode(&i); err != nil {
		return 0, newDecodeError(v, fmt.Sprintf("%s: expected an integer", key))
	}
	return i, nil
}

func boolField(n *yaml.Node, key string) bool {
	v := field(n, key)
	if v == nil {
		return false
	}
	var b bool
	if err := v.Decode(&b); err != nil {
		// Source grammar dumps sometimes encode flags as 0/1
		var i int
		if v.Decode(&i) == nil {
			return i != 0
		}
		return false
	}
	return b
}

func position(n *yaml.Node) Position {
	line, _ := intField(n, "lineno")
	col, _ := intField(n, "col_offset")
	return Position{Line: line, Column: col}
}

func decodeStmts(n *yaml.Node) ([]Stmt, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, newDecodeError(n, "expected a statement list")
	}
	stmts := make([]Stmt, 0, len(n.Content))
	for _, c := range n.Content {
		s, err := decodeStmt(resolve(c))
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func decodeExprs(n *yaml.Node) ([]Expr, error) {
	if n == nil {
		return nil, nil
	}
	if n.Kind != yaml.SequenceNode {
		return nil, newDecodeError(n, "expected an expression list")
	}
	exprs := make([]Expr, 0, len(n.Content))
	for _, c := range n.Content {
		c = resolve(c)
		// Dict keys use null for **mapping entries
		if c.Kind == yaml.ScalarNode && c.Tag == "!!null" {
			exprs = append(exprs, nil)
			continue
		}
		e, err := decodeExpr(c)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

// optExpr decodes an optional expression field
func optExpr(n *yaml.Node, key string) (Expr, error) {
	v := field(n, key)
	if v == nil {
		return nil, nil
	}
	return decodeExpr(v)
}

// reqExpr decodes a mandatory expression field
func reqExpr(n *yaml.Node, key string) (Expr, error) {
	v := field(n, key)
	if v == nil {
		return nil, newDecodeError(n, fmt.Sprintf("%s: missing %q", nodeType(n), key))
	}
	return decodeExpr(v)
}

func decodeOp(n *yaml.Node, key string) (OpType, error) {
	v := field(n, key)
	if v == nil {
		return OP_ILLEGAL, newDecodeError(n, fmt.Sprintf("%s: missing %q", nodeType(n), key))
	}
	name := v.Value
	if v.Kind == yaml.MappingNode {
		name = nodeType(v)
	}
	op, ok := LookupOp(name)
	if !ok {
		return OP_ILLEGAL, newDecodeError(v, fmt.Sprintf("unknown operator %q%s", name, didYouMean(name, opNameList())))
	}
	return op, nil
}

func decodeStmt(n *yaml.Node) (Stmt, error) {
	if n.Kind != yaml.MappingNode {
		return nil, newDecodeError(n, "expected a statement mapping")
	}
	pos := position(n)
	kind := nodeType(n)

	switch kind {
	case "Assign":
		targets, err := decodeExprs(field(n, "targets"))
		if err != nil {
			return nil, err
		}
		value, err := reqExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &Assign{Pos: pos, Targets: targets, Value: value}, nil

	case "AugAssign":
		target, err := reqExpr(n, "target")
		if err != nil {
			return nil, err
		}
		op, err := decodeOp(n, "op")
		if err != nil {
			return nil, err
		}
		value, err := reqExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &AugAssign{Pos: pos, Target: target, Op: op, Value: value}, nil

	case "AnnAssign":
		target, err := reqExpr(n, "target")
		if err != nil {
			return nil, err
		}
		ann, err := optExpr(n, "annotation")
		if err != nil {
			return nil, err
		}
		value, err := optExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &AnnAssign{Pos: pos, Target: target, Annotation: ann, Value: value}, nil

	case "For":
		target, err := reqExpr(n, "target")
		if err != nil {
			return nil, err
		}
		iter, err := reqExpr(n, "iter")
		if err != nil {
			return nil, err
		}
		body, orelse, err := decodeBodies(n)
		if err != nil {
			return nil, err
		}
		return &For{Pos: pos, Target: target, Iter: iter, Body: body, Orelse: orelse}, nil

	case "While", "If":
		test, err := reqExpr(n, "test")
		if err != nil {
			return nil, err
		}
		body, orelse, err := decodeBodies(n)
		if err != nil {
			return nil, err
		}
		if kind == "While" {
			return &While{Pos: pos, Test: test, Body: body, Orelse: orelse}, nil
		}
		return &If{Pos: pos, Test: test, Body: body, Orelse: orelse}, nil

	case "Try":
		body, orelse, err := decodeBodies(n)
		if err != nil {
			return nil, err
		}
		final, err := decodeStmts(field(n, "finalbody"))
		if err != nil {
			return nil, err
		}
		var handlers []*ExceptHandler
		if hs := field(n, "handlers"); hs != nil {
			for _, h := range hs.Content {
				handler, err := decodeHandler(resolve(h))
				if err != nil {
					return nil, err
				}
				handlers = append(handlers, handler)
			}
		}
		return &Try{Pos: pos, Body: body, Handlers: handlers, Orelse: orelse, Finalbody: final}, nil

	case "Raise":
		exc, err := optExpr(n, "exc")
		if err != nil {
			return nil, err
		}
		cause, err := optExpr(n, "cause")
		if err != nil {
			return nil, err
		}
		return &Raise{Pos: pos, Exc: exc, Cause: cause}, nil

	case "Return":
		value, err := optExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &Return{Pos: pos, Value: value}, nil

	case "Break":
		return &Break{Pos: pos}, nil
	case "Continue":
		return &Continue{Pos: pos}, nil
	case "Pass":
		return &Pass{Pos: pos}, nil

	case "FunctionDef", "AsyncFunctionDef":
		args, err := decodeArguments(field(n, "args"))
		if err != nil {
			return nil, err
		}
		body, err := decodeStmts(field(n, "body"))
		if err != nil {
			return nil, err
		}
		decorators, err := decodeExprs(field(n, "decorator_list"))
		if err != nil {
			return nil, err
		}
		returns, err := optExpr(n, "returns")
		if err != nil {
			return nil, err
		}
		name := stringField(n, "name")
		if kind == "AsyncFunctionDef" {
			return &AsyncFunctionDef{Pos: pos, Name: name, Args: args, Body: body, Decorators: decorators, Returns: returns}, nil
		}
		return &FunctionDef{Pos: pos, Name: name, Args: args, Body: body, Decorators: decorators, Returns: returns}, nil

	case "Import":
		names, err := decodeAliases(field(n, "names"))
		if err != nil {
			return nil, err
		}
		return &Import{Pos: pos, Names: names}, nil

	case "ImportFrom":
		names, err := decodeAliases(field(n, "names"))
		if err != nil {
			return nil, err
		}
		level, err := intField(n, "level")
		if err != nil {
			return nil, err
		}
		return &ImportFrom{Pos: pos, Module: stringField(n, "module"), Names: names, Level: level}, nil

	case "Expr":
		value, err := reqExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ExprStmt{Pos: pos, Value: value}, nil

	case "Global", "Nonlocal":
		var names []string
		if ns := field(n, "names"); ns != nil {
			for _, c := range ns.Content {
				names = append(names, resolve(c).Value)
			}
		}
		if kind == "Global" {
			return &Global{Pos: pos, Names: names}, nil
		}
		return &Nonlocal{Pos: pos, Names: names}, nil

	case "":
		return nil, newDecodeError(n, "statement mapping has no "+typeKey)

	default:
		return &UnknownStmt{Pos: pos, Type: kind}, nil
	}
}

func decodeBodies(n *yaml.Node) (body, orelse []Stmt, err error) {
	body, err = decodeStmts(field(n, "body"))
	if err != nil {
		return nil, nil, err
	}
	orelse, err = decodeStmts(field(n, "orelse"))
	if err != nil {
		return nil, nil, err
	}
	return body, orelse, nil
}

func decodeHandler(n *yaml.Node) (*ExceptHandler, error) {
	typ, err := optExpr(n, "type")
	if err != nil {
		return nil, err
	}
	body, err := decodeStmts(field(n, "body"))
	if err != nil {
		return nil, err
	}
	return &ExceptHandler{Pos: position(n), Type: typ, Name: stringField(n, "name"), Body: body}, nil
}

func decodeAliases(n *yaml.Node) ([]*Alias, error) {
	if n == nil {
		return nil, nil
	}
	var aliases []*Alias
	for _, c := range n.Content {
		c = resolve(c)
		if c.Kind == yaml.ScalarNode {
			aliases = append(aliases, &Alias{Name: c.Value})
			continue
		}
		name := stringField(c, "name")
		if name == "" {
			return nil, newDecodeError(c, "alias: missing \"name\"")
		}
		aliases = append(aliases, &Alias{Pos: position(c), Name: name, AsName: stringField(c, "asname")})
	}
	return aliases, nil
}

func decodeArg(n *yaml.Node) (*Arg, error) {
	if n == nil {
		return nil, nil
	}
	ann, err := optExpr(n, "annotation")
	if err != nil {
		return nil, err
	}
	return &Arg{Pos: position(n), Name: stringField(n, "arg"), Annotation: ann}, nil
}

func decodeArgList(n *yaml.Node) ([]*Arg, error) {
	if n == nil {
		return nil, nil
	}
	var args []*Arg
	for _, c := range n.Content {
		a, err := decodeArg(resolve(c))
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	return args, nil
}

func decodeArguments(n *yaml.Node) (*Arguments, error) {
	args := &Arguments{}
	if n == nil {
		return args, nil
	}
	var err error
	if args.PosOnly, err = decodeArgList(field(n, "posonlyargs")); err != nil {
		return nil, err
	}
	if args.Args, err = decodeArgList(field(n, "args")); err != nil {
		return nil, err
	}
	if args.Vararg, err = decodeArg(field(n, "vararg")); err != nil {
		return nil, err
	}
	if args.KwOnly, err = decodeArgList(field(n, "kwonlyargs")); err != nil {
		return nil, err
	}
	if args.KwDefaults, err = decodeExprs(field(n, "kw_defaults")); err != nil {
		return nil, err
	}
	if args.Kwarg, err = decodeArg(field(n, "kwarg")); err != nil {
		return nil, err
	}
	if args.Defaults, err = decodeExprs(field(n, "defaults")); err != nil {
		return nil, err
	}
	return args, nil
}

func decodeGenerators(n *yaml.Node) ([]*Comprehension, error) {
	gens := field(n, "generators")
	if gens == nil {
		return nil, newDecodeError(n, nodeType(n)+": missing \"generators\"")
	}
	var out []*Comprehension
	for _, c := range gens.Content {
		c = resolve(c)
		target, err := reqExpr(c, "target")
		if err != nil {
			return nil, err
		}
		iter, err := reqExpr(c, "iter")
		if err != nil {
			return nil, err
		}
		ifs, err := decodeExprs(field(c, "ifs"))
		if err != nil {
			return nil, err
		}
		out = append(out, &Comprehension{
			Pos:     target.Position(),
			Target:  target,
			Iter:    iter,
			Ifs:     ifs,
			IsAsync: boolField(c, "is_async"),
		})
	}
	return out, nil
}

// decodeConstant converts a scalar payload by its resolved YAML tag
func decodeConstant(v *yaml.Node) (types.Value, error) {
	if v == nil {
		return types.None, nil
	}
	if v.Kind != yaml.ScalarNode {
		return nil, newDecodeError(v, "constant value must be a scalar")
	}
	switch v.Tag {
	case "!!null":
		return types.None, nil
	case "!!bool":
		var b bool
		if err := v.Decode(&b); err != nil {
			return nil, newDecodeError(v, err.Error())
		}
		return types.NewBool(b), nil
	case "!!int":
		var i int64
		if err := v.Decode(&i); err == nil {
			return types.NewInt(i), nil
		}
		// Out of int64 range: keep the magnitude as a float
		var f float64
		if err := v.Decode(&f); err != nil {
			return nil, newDecodeError(v, "integer constant out of range")
		}
		return types.NewFloat(f), nil
	case "!!float":
		var f float64
		if err := v.Decode(&f); err != nil {
			return nil, newDecodeError(v, err.Error())
		}
		return types.NewFloat(f), nil
	default:
		return types.NewStr(v.Value), nil
	}
}

func decodeExpr(n *yaml.Node) (Expr, error) {
	if n.Kind != yaml.MappingNode {
		return nil, newDecodeError(n, "expected an expression mapping")
	}
	pos := position(n)
	kind := nodeType(n)

	switch kind {
	case "Name":
		return &Name{Pos: pos, ID: stringField(n, "id")}, nil

	case "Attribute":
		value, err := reqExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &Attribute{Pos: pos, Value: value, Attr: stringField(n, "attr")}, nil

	case "Call":
		fn, err := reqExpr(n, "func")
		if err != nil {
			return nil, err
		}
		args, err := decodeExprs(field(n, "args"))
		if err != nil {
			return nil, err
		}
		var keywords []*Keyword
		if kws := field(n, "keywords"); kws != nil {
			for _, c := range kws.Content {
				c = resolve(c)
				value, err := reqExpr(c, "value")
				if err != nil {
					return nil, err
				}
				keywords = append(keywords, &Keyword{Pos: position(c), Arg: stringField(c, "arg"), Value: value})
			}
		}
		return &Call{Pos: pos, Func: fn, Args: args, Keywords: keywords}, nil

	case "Starred":
		value, err := reqExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &Starred{Pos: pos, Value: value}, nil

	case "Constant", "NameConstant":
		value, err := decodeConstant(field(n, "value"))
		if err != nil {
			return nil, err
		}
		return &Constant{Pos: pos, Value: value}, nil

	case "Num":
		value, err := decodeConstant(field(n, "n"))
		if err != nil {
			return nil, err
		}
		return &Constant{Pos: pos, Value: value}, nil

	case "Str":
		return &Constant{Pos: pos, Value: types.NewStr(stringField(n, "s"))}, nil

	case "List", "Set", "Tuple":
		elts, err := decodeExprs(field(n, "elts"))
		if err != nil {
			return nil, err
		}
		switch kind {
		case "List":
			return &List{Pos: pos, Elts: elts}, nil
		case "Set":
			return &Set{Pos: pos, Elts: elts}, nil
		}
		return &Tuple{Pos: pos, Elts: elts}, nil

	case "Dict":
		keys, err := decodeExprs(field(n, "keys"))
		if err != nil {
			return nil, err
		}
		values, err := decodeExprs(field(n, "values"))
		if err != nil {
			return nil, err
		}
		if len(keys) != len(values) {
			return nil, newDecodeError(n, "Dict: keys and values differ in length")
		}
		return &Dict{Pos: pos, Keys: keys, Values: values}, nil

	case "Compare":
		left, err := reqExpr(n, "left")
		if err != nil {
			return nil, err
		}
		comparators, err := decodeExprs(field(n, "comparators"))
		if err != nil {
			return nil, err
		}
		var ops []OpType
		if opsNode := field(n, "ops"); opsNode != nil {
			for _, c := range opsNode.Content {
				c = resolve(c)
				name := c.Value
				if c.Kind == yaml.MappingNode {
					name = nodeType(c)
				}
				op, ok := LookupOp(name)
				if !ok || !op.IsCompare() {
					return nil, newDecodeError(c, fmt.Sprintf("unknown comparison operator %q%s", name, didYouMean(name, compareOpNames())))
				}
				ops = append(ops, op)
			}
		}
		if len(ops) == 0 || len(ops) != len(comparators) {
			return nil, newDecodeError(n, "Compare: ops and comparators differ in length")
		}
		return &Compare{Pos: pos, Left: left, Ops: ops, Comparators: comparators}, nil

	case "BoolOp":
		op, err := decodeOp(n, "op")
		if err != nil {
			return nil, err
		}
		values, err := decodeExprs(field(n, "values"))
		if err != nil {
			return nil, err
		}
		return &BoolOp{Pos: pos, Op: op, Values: values}, nil

	case "UnaryOp":
		op, err := decodeOp(n, "op")
		if err != nil {
			return nil, err
		}
		operand, err := reqExpr(n, "operand")
		if err != nil {
			return nil, err
		}
		return &UnaryOp{Pos: pos, Op: op, Operand: operand}, nil

	case "BinOp":
		left, err := reqExpr(n, "left")
		if err != nil {
			return nil, err
		}
		op, err := decodeOp(n, "op")
		if err != nil {
			return nil, err
		}
		right, err := reqExpr(n, "right")
		if err != nil {
			return nil, err
		}
		return &BinOp{Pos: pos, Left: left, Op: op, Right: right}, nil

	case "Lambda":
		args, err := decodeArguments(field(n, "args"))
		if err != nil {
			return nil, err
		}
		body, err := reqExpr(n, "body")
		if err != nil {
			return nil, err
		}
		return &Lambda{Pos: pos, Args: args, Body: body}, nil

	case "Await":
		value, err := reqExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &Await{Pos: pos, Value: value}, nil

	case "ListComp", "SetComp", "GeneratorExp":
		elt, err := reqExpr(n, "elt")
		if err != nil {
			return nil, err
		}
		gens, err := decodeGenerators(n)
		if err != nil {
			return nil, err
		}
		switch kind {
		case "ListComp":
			return &ListComp{Pos: pos, Elt: elt, Generators: gens}, nil
		case "SetComp":
			return &SetComp{Pos: pos, Elt: elt, Generators: gens}, nil
		}
		return &GeneratorExp{Pos: pos, Elt: elt, Generators: gens}, nil

	case "DictComp":
		key, err := reqExpr(n, "key")
		if err != nil {
			return nil, err
		}
		value, err := reqExpr(n, "value")
		if err != nil {
			return nil, err
		}
		gens, err := decodeGenerators(n)
		if err != nil {
			return nil, err
		}
		return &DictComp{Pos: pos, Key: key, Value: value, Generators: gens}, nil

	case "":
		return nil, newDecodeError(n, "expression mapping has no "+typeKey)

	default:
		return &UnknownExpr{Pos: pos, Type: kind}, nil
	}
}
