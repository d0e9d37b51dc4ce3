package parser

import (
	"strings"
	"testing"

	"pylua/types"
)

func TestDump(t *testing.T) {
	tests := []struct {
		name string
		node any
		want string
	}{
		{"name", &Name{Pos: Position{Line: 1}, ID: "x"}, "Name(\n  id='x')"},
		{"constant", &Constant{Value: types.NewStr("hi")}, "Constant(\n  value=\"hi\")"},
		{
			"binop",
			&BinOp{Left: &Name{ID: "a"}, Op: OP_ADD, Right: &Constant{Value: types.NewInt(1)}},
			"BinOp(\n  left=Name(\n    id='a'),\n  op=Add,\n  right=Constant(\n    value=1))",
		},
		{"empty fields skipped", &Return{}, "Return()"},
		{"statement kind name", &ExprStmt{Value: &Name{ID: "f"}}, "Expr(\n  value=Name(\n    id='f'))"},
		{"empty block", []Stmt{}, "[]"},
		{"block", []Stmt{&Pass{}, &Break{}}, "[\n  Pass(),\n  Break()]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Dump(tt.node); got != tt.want {
				t.Errorf("Dump() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestDumpIgnoresPositions(t *testing.T) {
	a := []Stmt{&Assign{Pos: Position{Line: 1}, Targets: []Expr{&Name{Pos: Position{Line: 1}, ID: "x"}}, Value: &Constant{Value: types.NewInt(1)}}}
	b := []Stmt{&Assign{Pos: Position{Line: 9, Column: 3}, Targets: []Expr{&Name{ID: "x"}}, Value: &Constant{Value: types.NewInt(1)}}}
	if DumpBlock(a) != DumpBlock(b) {
		t.Errorf("dumps differ by position:\n%s\n%s", DumpBlock(a), DumpBlock(b))
	}

	c := []Stmt{&Assign{Targets: []Expr{&Name{ID: "x"}}, Value: &Constant{Value: types.NewInt(2)}}}
	if DumpBlock(a) == DumpBlock(c) {
		t.Error("different values dump identically")
	}
}

func TestDumpNestedFunction(t *testing.T) {
	fn := &FunctionDef{
		Name: "main",
		Args: &Arguments{Args: []*Arg{{Name: "x"}}},
		Body: []Stmt{&Return{Value: &Name{ID: "x"}}},
	}
	got := Dump(fn)
	for _, want := range []string{"FunctionDef(", "name='main'", "Arg(", "name='x'", "Return("} {
		if !strings.Contains(got, want) {
			t.Errorf("Dump() missing %q:\n%s", want, got)
		}
	}
}
