package lua

import (
	"strings"

	"pylua/parser"
	"pylua/trace"
	"pylua/types"
)

// emitBlock emits each statement in order
func (e *emitter) emitBlock(stmts []parser.Stmt) error {
	for i, s := range stmts {
		if err := e.stmt(s, i == len(stmts)-1); err != nil {
			return err
		}
	}
	return nil
}

// stmt dispatches s to its translation rule. last is set when s ends its block.
func (e *emitter) stmt(s parser.Stmt, last bool) error {
	trace.Enter(s.Kind(), s.Position(), e.depth)
	e.pushFrame(s)
	defer e.popFrame()

	switch s := s.(type) {
	case *parser.ExprStmt:
		return e.exprStmt(s)
	case *parser.Assign:
		return e.assign(s)
	case *parser.AugAssign:
		return e.augAssign(s)
	case *parser.AnnAssign:
		return e.annAssign(s)
	case *parser.Return:
		return e.returnStmt(s, last)
	case *parser.Pass:
		return nil
	case *parser.Break:
		return e.breakStmt(s)
	case *parser.Continue:
		return e.continueStmt(s)
	case *parser.If:
		return e.ifStmt(s)
	case *parser.For:
		return e.forStmt(s)
	case *parser.While:
		return e.whileStmt(s)
	case *parser.FunctionDef:
		return e.functionDef(s)
	case *parser.AsyncFunctionDef:
		return e.asyncFunctionDef(s)
	case *parser.Import:
		return e.importStmt(s)
	case *parser.ImportFrom:
		return e.importFrom(s)
	case *parser.Global:
		e.declareAll(s.Names)
		return nil
	case *parser.Nonlocal:
		e.declareAll(s.Names)
		return nil
	case *parser.Try:
		return e.tryStmt(s)
	case *parser.Raise:
		return e.raise(s)
	default:
		return e.unsupported(s, "no translation rule for statement")
	}
}

func (e *emitter) exprStmt(s *parser.ExprStmt) error {
	switch v := s.Value.(type) {
	case *parser.Constant:
		if str, ok := v.Value.(types.StrValue); ok {
			e.docstring(str.Value())
			return nil
		}
	case *parser.Await:
		call, err := e.resume(v)
		if err != nil {
			return err
		}
		e.line(call)
		return nil
	case *parser.Call:
		call, err := e.call(v)
		if err != nil {
			return err
		}
		e.line(call)
		return nil
	}

	// Lua rejects bare expressions as statements
	text, err := e.expr(s.Value)
	if err != nil {
		return err
	}
	e.line("local _ = " + text)
	return nil
}

// docstring writes a string statement as line comments
func (e *emitter) docstring(text string) {
	for _, l := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		l = strings.TrimRight(l, " \t")
		if l == "" {
			e.line("--")
			continue
		}
		e.line("-- " + l)
	}
}

func (e *emitter) returnStmt(s *parser.Return, last bool) error {
	if e.protected {
		return e.unsupported(s, "return inside protected try body")
	}
	text := "return"
	if s.Value != nil {
		value, err := e.multiExpr(s.Value)
		if err != nil {
			return err
		}
		text += " " + value
	}
	if !last {
		// return must end a Lua block
		text = "do " + text + " end"
	}
	e.line(text)
	return nil
}

func (e *emitter) declareAll(names []string) {
	for _, n := range names {
		e.declare(n)
	}
}
