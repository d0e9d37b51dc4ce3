package lua

import (
	"strings"
	"testing"

	"pylua/parser"
	"pylua/types"
)

func name(id string) *parser.Name { return &parser.Name{ID: id} }

func num(v int64) *parser.Constant { return &parser.Constant{Value: types.NewInt(v)} }

func str(s string) *parser.Constant { return &parser.Constant{Value: types.NewStr(s)} }

func constant(v types.Value) *parser.Constant { return &parser.Constant{Value: v} }

func attr(v parser.Expr, a string) *parser.Attribute {
	return &parser.Attribute{Value: v, Attr: a}
}

func call(fn parser.Expr, args ...parser.Expr) *parser.Call {
	return &parser.Call{Func: fn, Args: args}
}

func kwcall(fn parser.Expr, kw string, v parser.Expr, args ...parser.Expr) *parser.Call {
	c := call(fn, args...)
	c.Keywords = []*parser.Keyword{{Arg: kw, Value: v}}
	return c
}

func binop(l parser.Expr, op parser.OpType, r parser.Expr) *parser.BinOp {
	return &parser.BinOp{Left: l, Op: op, Right: r}
}

func cmp(l parser.Expr, op parser.OpType, r parser.Expr) *parser.Compare {
	return &parser.Compare{Left: l, Ops: []parser.OpType{op}, Comparators: []parser.Expr{r}}
}

func tuple(elts ...parser.Expr) *parser.Tuple { return &parser.Tuple{Elts: elts} }

func gen(target, iter parser.Expr, ifs ...parser.Expr) *parser.Comprehension {
	return &parser.Comprehension{Target: target, Iter: iter, Ifs: ifs}
}

func listComp(elt parser.Expr, gens ...*parser.Comprehension) *parser.ListComp {
	return &parser.ListComp{Elt: elt, Generators: gens}
}

func args(names ...string) *parser.Arguments {
	a := &parser.Arguments{}
	for _, n := range names {
		a.Args = append(a.Args, &parser.Arg{Name: n})
	}
	return a
}

func assign(target, value parser.Expr) *parser.Assign {
	return &parser.Assign{Targets: []parser.Expr{target}, Value: value}
}

func expr(x parser.Expr) *parser.ExprStmt { return &parser.ExprStmt{Value: x} }

func body(stmts ...parser.Stmt) []parser.Stmt { return stmts }

func lines(ls ...string) string { return strings.Join(ls, "\n") + "\n" }

// mustTranslate translates without a header and fails the test on error
func mustTranslate(t *testing.T, block ...parser.Stmt) string {
	t.Helper()
	got, err := Translate(block)
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	return got
}
