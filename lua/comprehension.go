package lua

import (
	"fmt"

	"pylua/parser"
	"pylua/trace"
)

// comprehension lowers a list, set, dict or generator comprehension into
// loops that fill a fresh temporary table. The loops are written to the output
// immediately; the returned text is the temporary's name.
func (e *emitter) comprehension(x parser.Expr) (string, error) {
	var gens []*parser.Comprehension
	var insert func(tmp string) (string, error)

	switch c := x.(type) {
	case *parser.ListComp:
		gens = c.Generators
		insert = e.appendTo(c.Elt)
	case *parser.GeneratorExp:
		gens = c.Generators
		insert = e.appendTo(c.Elt)
	case *parser.SetComp:
		gens = c.Generators
		insert = func(tmp string) (string, error) {
			elt, err := e.expr(c.Elt)
			if err != nil {
				return "", err
			}
			return tmp + "[" + elt + "] = true", nil
		}
	case *parser.DictComp:
		gens = c.Generators
		insert = func(tmp string) (string, error) {
			key, err := e.expr(c.Key)
			if err != nil {
				return "", err
			}
			val, err := e.expr(c.Value)
			if err != nil {
				return "", err
			}
			return tmp + "[" + key + "] = " + val, nil
		}
	default:
		return "", e.unsupported(x, "not a comprehension")
	}
	if len(gens) == 0 {
		return "", e.unsupported(x, "comprehension without clauses")
	}

	tmp := fmt.Sprintf("__list_comp_%d", e.comps)
	e.comps++
	trace.Comprehension(x.Kind(), tmp)

	e.line("local " + tmp + " = {}")
	if err := e.clause(x, gens, tmp, insert); err != nil {
		return "", err
	}
	return tmp, nil
}

func (e *emitter) appendTo(elt parser.Expr) func(string) (string, error) {
	return func(tmp string) (string, error) {
		s, err := e.expr(elt)
		if err != nil {
			return "", err
		}
		return "table.insert(" + tmp + ", " + s + ")", nil
	}
}

// clause emits the loop for gens[0] with its filters, nesting the remaining
// clauses inside it; the insertion sits in the innermost position
func (e *emitter) clause(x parser.Expr, gens []*parser.Comprehension, tmp string, insert func(string) (string, error)) error {
	if len(gens) == 0 {
		stmt, err := insert(tmp)
		if err != nil {
			return err
		}
		e.line(stmt)
		return nil
	}

	g := gens[0]
	if g.IsAsync {
		return e.unsupported(x, "asynchronous comprehension clause")
	}
	header, names, err := e.loopHeader(x, g.Target, g.Iter)
	if err != nil {
		return err
	}
	e.line(header)
	e.depth++
	e.pushScope()
	for _, n := range names {
		e.declare(n)
	}

	opened := 0
	for _, cond := range g.Ifs {
		text, err := e.expr(cond)
		if err != nil {
			return err
		}
		e.line("if " + text + " then")
		e.depth++
		opened++
	}

	if err := e.clause(x, gens[1:], tmp, insert); err != nil {
		return err
	}

	for ; opened > 0; opened-- {
		e.depth--
		e.line("end")
	}
	e.popScope()
	e.depth--
	e.line("end")
	return nil
}
