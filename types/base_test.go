package types

import (
	"math"
	"testing"
)

func TestLuaLiterals(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"int", NewInt(42), "42"},
		{"negative int", NewInt(-7), "-7"},
		{"float", NewFloat(1.5), "1.5"},
		{"whole float", NewFloat(3), "3.0"},
		{"exponent float", NewFloat(1e100), "1e+100"},
		{"inf", NewFloat(math.Inf(1)), "math.huge"},
		{"negative inf", NewFloat(math.Inf(-1)), "-math.huge"},
		{"nan", NewFloat(math.NaN()), "(0/0)"},
		{"true", NewBool(true), "true"},
		{"false", NewBool(false), "false"},
		{"none", None, "nil"},
		{"string", NewStr("hello"), `"hello"`},
		{"quote", NewStr(`say "hi"`), `"say \"hi\""`},
		{"backslash", NewStr(`a\b`), `"a\\b"`},
		{"newline", NewStr("a\nb\tc"), `"a\nb\tc"`},
		{"control byte", NewStr("a\x01" + "1"), `"a\0011"`},
		{"utf8", NewStr("é"), `"\195\169"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.value.String(); got != tt.want {
				t.Errorf("String() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value Value
		want  bool
	}{
		{NewInt(0), false},
		{NewInt(1), true},
		{NewFloat(0), false},
		{NewFloat(0.5), true},
		{NewStr(""), false},
		{NewStr("x"), true},
		{NewBool(true), true},
		{NewBool(false), false},
		{None, false},
	}

	for _, tt := range tests {
		if got := tt.value.Truthy(); got != tt.want {
			t.Errorf("%s (%s).Truthy() = %v, want %v", tt.value, tt.value.Type(), got, tt.want)
		}
	}
}

func TestEqual(t *testing.T) {
	if !NewInt(3).Equal(NewInt(3)) {
		t.Error("equal ints should compare equal")
	}
	if NewInt(3).Equal(NewFloat(3)) {
		t.Error("int and float must not compare equal")
	}
	if !NewStr("a").Equal(NewStr("a")) || NewStr("a").Equal(NewStr("A")) {
		t.Error("string equality must be exact")
	}
	if NewFloat(math.NaN()).Equal(NewFloat(math.NaN())) {
		t.Error("NaN must not equal NaN")
	}
	if !None.Equal(None) || None.Equal(NewBool(false)) {
		t.Error("None equals only None")
	}
}
