package parser

import "testing"

func TestEntryBlock(t *testing.T) {
	helper := &FunctionDef{Name: "helper", Body: []Stmt{&Break{}}}
	main := &FunctionDef{Name: "main", Body: []Stmt{&Pass{}, &Pass{}}}
	worker := &AsyncFunctionDef{Name: "worker", Body: []Stmt{&Continue{}}}
	loose := &Assign{Targets: []Expr{&Name{ID: "x"}}, Value: &Name{ID: "y"}}

	tests := []struct {
		name  string
		body  []Stmt
		entry string
		want  int
		first string
	}{
		{"named function", []Stmt{helper, main}, "main", 2, "Pass"},
		{"named async function", []Stmt{helper, worker}, "worker", 1, "Continue"},
		{"first function by default", []Stmt{helper, main}, "", 1, "Break"},
		{"module body otherwise", []Stmt{loose, main}, "", 2, "Assign"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block, err := EntryBlock(&Module{Body: tt.body}, tt.entry)
			if err != nil {
				t.Fatalf("EntryBlock() error = %v", err)
			}
			if len(block) != tt.want || block[0].Kind() != tt.first {
				t.Errorf("EntryBlock() = %d statements starting with %s, want %d starting with %s",
					len(block), block[0].Kind(), tt.want, tt.first)
			}
		})
	}

	if _, err := EntryBlock(&Module{Body: []Stmt{helper}}, "missing"); err == nil {
		t.Error("EntryBlock() with unknown name succeeded, want error")
	}
	if block, err := EntryBlock(&Module{}, ""); err != nil || len(block) != 0 {
		t.Errorf("EntryBlock(empty) = %v, %v", block, err)
	}
}
