package parser

import (
	"testing"

	"pylua/types"
)

func TestASTNodes(t *testing.T) {
	var _ Expr = &Name{}
	var _ Expr = &Attribute{}
	var _ Expr = &Call{}
	var _ Expr = &Starred{}
	var _ Expr = &Constant{}
	var _ Expr = &List{}
	var _ Expr = &Set{}
	var _ Expr = &Dict{}
	var _ Expr = &Tuple{}
	var _ Expr = &Compare{}
	var _ Expr = &BoolOp{}
	var _ Expr = &UnaryOp{}
	var _ Expr = &BinOp{}
	var _ Expr = &Lambda{}
	var _ Expr = &Await{}
	var _ Expr = &ListComp{}
	var _ Expr = &SetComp{}
	var _ Expr = &DictComp{}
	var _ Expr = &GeneratorExp{}
	var _ Expr = &UnknownExpr{}

	var _ Stmt = &Assign{}
	var _ Stmt = &AugAssign{}
	var _ Stmt = &AnnAssign{}
	var _ Stmt = &For{}
	var _ Stmt = &While{}
	var _ Stmt = &If{}
	var _ Stmt = &Try{}
	var _ Stmt = &Raise{}
	var _ Stmt = &Return{}
	var _ Stmt = &Break{}
	var _ Stmt = &Continue{}
	var _ Stmt = &Pass{}
	var _ Stmt = &FunctionDef{}
	var _ Stmt = &AsyncFunctionDef{}
	var _ Stmt = &Import{}
	var _ Stmt = &ImportFrom{}
	var _ Stmt = &ExprStmt{}
	var _ Stmt = &Global{}
	var _ Stmt = &Nonlocal{}
	var _ Stmt = &UnknownStmt{}
}

func TestNodeKindAndPosition(t *testing.T) {
	pos := Position{Line: 4, Column: 8}
	tests := []struct {
		node Node
		kind string
	}{
		{&Name{Pos: pos, ID: "x"}, "Name"},
		{&Constant{Pos: pos, Value: types.NewInt(42)}, "Constant"},
		{&BinOp{Pos: pos, Left: &Name{ID: "a"}, Op: OP_ADD, Right: &Name{ID: "b"}}, "BinOp"},
		{&GeneratorExp{Pos: pos}, "GeneratorExp"},
		{&ExprStmt{Pos: pos}, "Expr"},
		{&AsyncFunctionDef{Pos: pos, Name: "f"}, "AsyncFunctionDef"},
		{&UnknownStmt{Pos: pos, Type: "With"}, "With"},
		{&UnknownExpr{Pos: pos, Type: "JoinedStr"}, "JoinedStr"},
		{&Module{Pos: pos}, "Module"},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			if got := tt.node.Kind(); got != tt.kind {
				t.Errorf("Kind() = %q, want %q", got, tt.kind)
			}
			if got := tt.node.Position(); got != pos {
				t.Errorf("Position() = %v, want %v", got, pos)
			}
		})
	}
}

func TestLookupOp(t *testing.T) {
	tests := []struct {
		name   string
		want   OpType
		binary bool
		cmp    bool
	}{
		{"Add", OP_ADD, true, false},
		{"FloorDiv", OP_FLOORDIV, true, false},
		{"MatMult", OP_MATMULT, true, false},
		{"IsNot", OP_ISNOT, false, true},
		{"NotIn", OP_NOTIN, false, true},
		{"Eq", OP_EQ, false, true},
		{"And", OP_AND, false, false},
		{"Invert", OP_INVERT, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op, ok := LookupOp(tt.name)
			if !ok || op != tt.want {
				t.Fatalf("LookupOp(%q) = %v, %v; want %v", tt.name, op, ok, tt.want)
			}
			if op.String() != tt.name {
				t.Errorf("String() = %q, want %q", op.String(), tt.name)
			}
			if op.IsBinary() != tt.binary || op.IsCompare() != tt.cmp {
				t.Errorf("IsBinary/IsCompare = %v/%v, want %v/%v", op.IsBinary(), op.IsCompare(), tt.binary, tt.cmp)
			}
		})
	}

	for _, bad := range []string{"", "ILLEGAL", "add", "Spaceship"} {
		if op, ok := LookupOp(bad); ok {
			t.Errorf("LookupOp(%q) = %v, want not found", bad, op)
		}
	}
}

func TestPositionString(t *testing.T) {
	if got := (Position{Line: 3, Column: 7}).String(); got != "3:7" {
		t.Errorf("String() = %q, want 3:7", got)
	}
}
