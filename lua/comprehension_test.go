package lua

import (
	"fmt"
	"strings"
	"testing"

	"pylua/parser"
	"pylua/types"
)

func TestComprehensions(t *testing.T) {
	y := name("y")

	tests := []struct {
		name  string
		block []parser.Stmt
		want  string
	}{
		{
			name: "filtered list",
			block: body(assign(name("z"), listComp(y, gen(y, name("items"), cmp(y, parser.OP_GT, num(0)))))),
			want: lines(
				"local __list_comp_0 = {}",
				"for _, y in pairs(items) do",
				"    if y > 0 then",
				"        table.insert(__list_comp_0, y)",
				"    end",
				"end",
				"local z = __list_comp_0",
			),
		},
		{
			name: "two clauses nest",
			block: body(assign(name("r"), listComp(
				binop(name("a"), parser.OP_MULT, name("b")),
				gen(name("a"), name("xs")),
				gen(name("b"), call(name("range"), num(2))),
			))),
			want: lines(
				"local __list_comp_0 = {}",
				"for _, a in pairs(xs) do",
				"    for b = 1, 2 do",
				"        table.insert(__list_comp_0, a * b)",
				"    end",
				"end",
				"local r = __list_comp_0",
			),
		},
		{
			name: "later filters are innermost",
			block: body(assign(name("r"), listComp(y, gen(y, name("xs"), name("p"), name("q"))))),
			want: lines(
				"local __list_comp_0 = {}",
				"for _, y in pairs(xs) do",
				"    if p then",
				"        if q then",
				"            table.insert(__list_comp_0, y)",
				"        end",
				"    end",
				"end",
				"local r = __list_comp_0",
			),
		},
		{
			name: "enumerate clause",
			block: body(assign(name("r"), listComp(name("i"), gen(tuple(name("i"), name("v")), call(name("enumerate"), name("xs")))))),
			want: lines(
				"local __list_comp_0 = {}",
				"for i, v in ipairs(xs) do",
				"    table.insert(__list_comp_0, i)",
				"end",
				"local r = __list_comp_0",
			),
		},
		{
			name: "set",
			block: body(assign(name("s"), &parser.SetComp{Elt: y, Generators: []*parser.Comprehension{gen(y, name("xs"))}})),
			want: lines(
				"local __list_comp_0 = {}",
				"for _, y in pairs(xs) do",
				"    __list_comp_0[y] = true",
				"end",
				"local s = __list_comp_0",
			),
		},
		{
			name: "dict",
			block: body(assign(name("d"), &parser.DictComp{Key: name("k"), Value: num(0), Generators: []*parser.Comprehension{gen(name("k"), name("keys"))}})),
			want: lines(
				"local __list_comp_0 = {}",
				"for _, k in pairs(keys) do",
				"    __list_comp_0[k] = 0",
				"end",
				"local d = __list_comp_0",
			),
		},
		{
			name: "generator argument",
			block: body(expr(call(name("sum"), &parser.GeneratorExp{Elt: y, Generators: []*parser.Comprehension{gen(y, name("xs"))}}))),
			want: lines(
				"local __list_comp_0 = {}",
				"for _, y in pairs(xs) do",
				"    table.insert(__list_comp_0, y)",
				"end",
				"sum(__list_comp_0)",
			),
		},
		{
			name: "nested comprehension in element",
			block: body(assign(name("m"), listComp(
				listComp(name("c"), gen(name("c"), name("row"))),
				gen(name("row"), name("rows")),
			))),
			want: lines(
				"local __list_comp_0 = {}",
				"for _, row in pairs(rows) do",
				"    local __list_comp_1 = {}",
				"    for _, c in pairs(row) do",
				"        table.insert(__list_comp_1, c)",
				"    end",
				"    table.insert(__list_comp_0, __list_comp_1)",
				"end",
				"local m = __list_comp_0",
			),
		},
		{
			name: "preamble inside a block",
			block: body(&parser.If{Test: name("ok"), Body: body(
				expr(call(name("show"), listComp(y, gen(y, name("xs"))))),
			)}),
			want: lines(
				"if ok then",
				"    local __list_comp_0 = {}",
				"    for _, y in pairs(xs) do",
				"        table.insert(__list_comp_0, y)",
				"    end",
				"    show(__list_comp_0)",
				"end",
			),
		},
		{
			name: "elseif condition with preamble",
			block: body(&parser.If{
				Test: name("a"), Body: body(expr(call(name("f")))),
				Orelse: body(&parser.If{
					Test: call(name("any"), listComp(y, gen(y, name("xs")))),
					Body: body(expr(call(name("g")))),
				}),
			}),
			want: lines(
				"if a then",
				"    f()",
				"else",
				"    local __list_comp_0 = {}",
				"    for _, y in pairs(xs) do",
				"        table.insert(__list_comp_0, y)",
				"    end",
				"    if any(__list_comp_0) then",
				"        g()",
				"    end",
				"end",
			),
		},
		{
			name: "while condition with preamble",
			block: body(&parser.While{
				Test: call(name("any"), listComp(y, gen(y, name("xs")))),
				Body: body(expr(call(name("step")))),
			}),
			want: lines(
				"while true do",
				"    local __list_comp_0 = {}",
				"    for _, y in pairs(xs) do",
				"        table.insert(__list_comp_0, y)",
				"    end",
				"    if not (any(__list_comp_0)) then break end",
				"    step()",
				"end",
			),
		},
		{
			name: "return of comprehension",
			block: body(&parser.FunctionDef{Name: "f", Args: args("xs"), Body: body(
				&parser.Return{Value: listComp(y, gen(y, name("xs")))},
			)}),
			want: lines(
				"function f(xs)",
				"    local __list_comp_0 = {}",
				"    for _, y in pairs(xs) do",
				"        table.insert(__list_comp_0, y)",
				"    end",
				"    return __list_comp_0",
				"end",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustTranslate(t, tt.block...)
			if got != tt.want {
				t.Errorf("Translate() =\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestComprehensionTemporariesDistinct(t *testing.T) {
	var block []parser.Stmt
	for i := 0; i < 5; i++ {
		comp := listComp(name("v"), gen(name("v"), name("xs")))
		block = append(block, assign(name(fmt.Sprintf("r%d", i)), comp))
	}
	got := mustTranslate(t, block...)

	seen := map[string]bool{}
	for _, l := range strings.Split(got, "\n") {
		if strings.HasPrefix(l, "local __list_comp_") {
			tmp := strings.Fields(l)[1]
			if seen[tmp] {
				t.Errorf("temporary %s declared twice", tmp)
			}
			seen[tmp] = true
		}
	}
	if len(seen) != 5 {
		t.Errorf("got %d temporaries, want 5:\n%s", len(seen), got)
	}
}

func TestComprehensionLoopVariablesStayInside(t *testing.T) {
	block := body(
		assign(name("r"), listComp(name("v"), gen(name("v"), name("xs")))),
		assign(name("v"), constant(types.NewBool(false))),
	)
	got := mustTranslate(t, block...)
	if !strings.HasSuffix(got, "local v = false\n") {
		t.Errorf("loop variable leaked out of the comprehension:\n%s", got)
	}
}
