package parser

import (
	"strings"
	"testing"
)

func TestClosestMatch(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		want       string
	}{
		{"Mul", opNameList(), "Mult"},
		{"FloorDv", opNameList(), "FloorDiv"},
		{"lte", []string{"Lt", "LtE", "Gt"}, "LtE"},
		{"Spaceship", opNameList(), ""},
		{"", opNameList(), ""},
		{"man", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := closestMatch(tt.name, tt.candidates); got != tt.want {
				t.Errorf("closestMatch(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestSuggestionsInErrors(t *testing.T) {
	_, err := DecodeModule([]byte("[{_type: Expr, value: {_type: BinOp, left: {_type: Name, id: a}, op: Mul, right: {_type: Name, id: b}}}]"))
	if err == nil || !strings.Contains(err.Error(), "did you mean Mult?") {
		t.Errorf("DecodeModule() error = %v, want a suggestion", err)
	}

	mod := &Module{Body: []Stmt{&FunctionDef{Name: "helper"}, &FunctionDef{Name: "main"}}}
	_, err = EntryBlock(mod, "man")
	if err == nil || !strings.Contains(err.Error(), "did you mean main?") {
		t.Errorf("EntryBlock() error = %v, want a suggestion", err)
	}
}
