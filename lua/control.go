package lua

import (
	"fmt"
	"strings"

	"pylua/parser"
)

// loopHeader picks the Lua loop form for "for target in iter". It returns the
// header line and the loop variable names. Iterable preamble, if any, is
// written before the header.
//
//	x in range(n)          for x = 1, n do
//	x in range(a, b[, s])  for x = a, b[, s] do
//	a, b in enumerate(xs)  for a, b in ipairs(xs) do
//	a, b in xs             for a, b in pairs(xs) do
//	x in xs                for _, x in pairs(xs) do
func (e *emitter) loopHeader(node parser.Node, target, iter parser.Expr) (string, []string, error) {
	switch t := target.(type) {
	case *parser.Name:
		if args, ok := builtinCall(iter, "range"); ok && len(args) >= 1 && len(args) <= 3 {
			bounds, err := e.exprList(args)
			if err != nil {
				return "", nil, err
			}
			if len(args) == 1 {
				bounds = "1, " + bounds
			}
			return fmt.Sprintf("for %s = %s do", t.ID, bounds), []string{t.ID}, nil
		}
		it, err := e.expr(iter)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("for _, %s in pairs(%s) do", t.ID, it), []string{t.ID}, nil

	case *parser.Tuple:
		names, ok := nameList(t.Elts)
		if !ok || len(names) < 2 {
			return "", nil, e.unsupported(t, "loop target must be names")
		}
		vars := strings.Join(names, ", ")
		if args, ok := builtinCall(iter, "enumerate"); ok && len(args) == 1 {
			it, err := e.expr(args[0])
			if err != nil {
				return "", nil, err
			}
			return fmt.Sprintf("for %s in ipairs(%s) do", vars, it), names, nil
		}
		it, err := e.expr(iter)
		if err != nil {
			return "", nil, err
		}
		return fmt.Sprintf("for %s in pairs(%s) do", vars, it), names, nil

	default:
		return "", nil, e.unsupported(node, "loop target %s", target.Kind())
	}
}

// builtinCall matches name(args...) with plain positional arguments
func builtinCall(x parser.Expr, name string) ([]parser.Expr, bool) {
	c, ok := x.(*parser.Call)
	if !ok || len(c.Keywords) > 0 {
		return nil, false
	}
	fn, ok := c.Func.(*parser.Name)
	if !ok || fn.ID != name {
		return nil, false
	}
	for _, a := range c.Args {
		if _, starred := a.(*parser.Starred); starred {
			return nil, false
		}
	}
	return c.Args, true
}

func nameList(xs []parser.Expr) ([]string, bool) {
	names := make([]string, 0, len(xs))
	for _, x := range xs {
		n, ok := x.(*parser.Name)
		if !ok {
			return nil, false
		}
		names = append(names, n.ID)
	}
	return names, true
}

func (e *emitter) forStmt(s *parser.For) error {
	if len(s.Orelse) > 0 {
		return e.unsupported(s, "for loop with else clause")
	}
	header, names, err := e.loopHeader(s, s.Target, s.Iter)
	if err != nil {
		return err
	}
	e.line(header)
	return e.loopBody(s.Body, names, nil)
}

func (e *emitter) whileStmt(s *parser.While) error {
	if len(s.Orelse) > 0 {
		return e.unsupported(s, "while loop with else clause")
	}
	pre, cond, err := e.captureExpr(s.Test, 1)
	if err != nil {
		return err
	}
	if len(pre) == 0 {
		e.line("while " + cond + " do")
		return e.loopBody(s.Body, nil, nil)
	}

	// The condition needs statements of its own, so it is re-evaluated at
	// the top of every iteration.
	e.line("while true do")
	return e.loopBody(s.Body, nil, func() {
		e.lines = append(e.lines, pre...)
		e.line("if not (" + cond + ") then break end")
	})
}

// loopBody emits a loop body and its closing "end". A body that continues is
// wrapped in its own block followed by the continue label.
func (e *emitter) loopBody(body []parser.Stmt, names []string, prelude func()) error {
	saved := e.loop
	e.loop = &loopState{parent: saved}
	if saved != nil {
		e.loop.level = saved.level + 1
	}
	defer func() { e.loop = saved }()

	if hasContinue(body) {
		e.loop.label = "continue"
		if e.loop.level > 0 {
			// an enclosing loop's label is still visible here
			e.loop.label = fmt.Sprintf("continue_%d", e.loop.level)
		}
	}

	e.depth++
	e.pushScope()
	for _, n := range names {
		e.declare(n)
	}
	if prelude != nil {
		prelude()
	}

	var err error
	if e.loop.label != "" {
		e.line("do")
		err = e.block(body)
		e.line("end")
		e.line("::" + e.loop.label + "::")
	} else {
		err = e.emitBlock(body)
	}

	e.popScope()
	e.depth--
	if err != nil {
		return err
	}
	e.line("end")
	return nil
}

// hasContinue reports whether a continue in body targets this loop. Nested
// loops and function bodies own their own continues; a protected try body is
// a function, its handlers and finally body are not.
func hasContinue(body []parser.Stmt) bool {
	for _, s := range body {
		switch s := s.(type) {
		case *parser.Continue:
			return true
		case *parser.If:
			if hasContinue(s.Body) || hasContinue(s.Orelse) {
				return true
			}
		case *parser.Try:
			if hasContinue(s.Finalbody) {
				return true
			}
			for _, h := range s.Handlers {
				if hasContinue(h.Body) {
					return true
				}
			}
		}
	}
	return false
}

func (e *emitter) breakStmt(s *parser.Break) error {
	if e.loop == nil {
		return e.unsupported(s, "break outside loop")
	}
	e.line("break")
	return nil
}

func (e *emitter) continueStmt(s *parser.Continue) error {
	if e.loop == nil || e.loop.label == "" {
		return e.unsupported(s, "continue outside loop")
	}
	e.line("goto " + e.loop.label)
	return nil
}

// ifStmt emits if/elseif/else with a single closing "end"
func (e *emitter) ifStmt(s *parser.If) error {
	cond, err := e.expr(s.Test)
	if err != nil {
		return err
	}
	e.line("if " + cond + " then")
	if err := e.block(s.Body); err != nil {
		return err
	}
	if err := e.ifTail(s.Orelse); err != nil {
		return err
	}
	e.line("end")
	return nil
}

func (e *emitter) ifTail(orelse []parser.Stmt) error {
	for len(orelse) > 0 {
		elif, ok := orelse[0].(*parser.If)
		if !ok || len(orelse) != 1 {
			e.line("else")
			return e.block(orelse)
		}

		e.pushFrame(elif)
		pre, cond, err := e.captureExpr(elif.Test, 1)
		if err != nil {
			e.popFrame()
			return err
		}
		if len(pre) > 0 {
			// no room for statements before an elseif condition
			e.line("else")
			e.depth++
			e.pushScope()
			e.lines = append(e.lines, pre...)
			e.line("if " + cond + " then")
			err = e.block(elif.Body)
			if err == nil {
				err = e.ifTail(elif.Orelse)
			}
			if err == nil {
				e.line("end")
			}
			e.popScope()
			e.depth--
			e.popFrame()
			return err
		}

		e.line("elseif " + cond + " then")
		err = e.block(elif.Body)
		e.popFrame()
		if err != nil {
			return err
		}
		orelse = elif.Orelse
	}
	return nil
}
