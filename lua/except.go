package lua

import (
	"fmt"
	"strings"

	"pylua/parser"
	"pylua/trace"
)

// tryStmt runs the try body as a protected call. A single handler that only
// passes swallows errors with pcall. Otherwise the first handler runs after
// the call when it failed, with the error bound to its variable. A finally
// body runs after both, and a handler failure still reaches it.
func (e *emitter) tryStmt(s *parser.Try) error {
	if len(s.Orelse) > 0 {
		return e.unsupported(s, "try statement with else clause")
	}

	if len(s.Handlers) == 0 {
		return e.tryFinally(s.Body, s.Finalbody)
	}

	if len(s.Handlers) == 1 && onlyPass(s.Handlers[0].Body) {
		e.line("pcall(function()")
		if err := e.functionBody(s.Body, nil, true); err != nil {
			return err
		}
		e.line("end)")
		return e.emitBlock(s.Finalbody)
	}

	if len(s.Finalbody) > 0 {
		// try/except/finally is try/finally around try/except
		inner := &parser.Try{Pos: s.Pos, Body: s.Body, Handlers: s.Handlers}
		return e.tryFinally([]parser.Stmt{inner}, s.Finalbody)
	}

	h := s.Handlers[0]
	if len(s.Handlers) > 1 {
		trace.Warn(s.Kind(), s.Pos, fmt.Sprintf("only the first of %d handlers is translated", len(s.Handlers)))
	}
	if h.Type != nil {
		trace.Warn(s.Kind(), h.Pos, "handler exception type is not checked")
	}
	name := h.Name
	if name == "" {
		name = "err"
	}

	e.line("do")
	e.depth++
	e.pushScope()
	e.line("local __ok, __err = pcall(function()")
	err := e.functionBody(s.Body, nil, true)
	if err == nil {
		e.line("end)")
		e.line("if not __ok then")
		err = e.handlerBody(h.Body, name)
	}
	if err == nil {
		e.line("end")
	}
	e.popScope()
	e.depth--
	if err != nil {
		return err
	}
	e.line("end")
	return nil
}

// tryFinally runs the finally body whether or not the protected body fails,
// then re-raises the failure
func (e *emitter) tryFinally(body, final []parser.Stmt) error {
	e.line("do")
	e.depth++
	e.pushScope()
	e.line("local __ok, __err = pcall(function()")
	err := e.functionBody(body, nil, true)
	if err == nil {
		e.line("end)")
		err = e.emitBlock(final)
	}
	if err == nil {
		e.line("if not __ok then error(__err, 0) end")
	}
	e.popScope()
	e.depth--
	if err != nil {
		return err
	}
	e.line("end")
	return nil
}

// handlerBody emits a handler inside the "if not __ok" block. The handler is
// plain code of the enclosing function, so return, break and continue keep
// their meaning.
func (e *emitter) handlerBody(body []parser.Stmt, name string) error {
	e.depth++
	e.pushScope()
	e.declare(name)
	e.line("local " + name + " = __err")
	saved := e.handler
	e.handler = name
	err := e.emitBlock(body)
	e.handler = saved
	e.popScope()
	e.depth--
	return err
}

func onlyPass(body []parser.Stmt) bool {
	if len(body) == 0 {
		return false
	}
	for _, s := range body {
		if _, ok := s.(*parser.Pass); !ok {
			return false
		}
	}
	return true
}

func (e *emitter) raise(s *parser.Raise) error {
	if s.Cause != nil {
		return e.unsupported(s, "exception chaining with from")
	}
	if s.Exc == nil {
		// re-raise the error caught by the enclosing handler, unchanged
		if e.handler == "" {
			e.line("error()")
			return nil
		}
		e.line("error(" + e.handler + ", 0)")
		return nil
	}
	exc, err := e.expr(s.Exc)
	if err != nil {
		return err
	}
	e.line("error(" + exc + ")")
	return nil
}

// asyncFunctionDef binds a coroutine wrapping the function body
func (e *emitter) asyncFunctionDef(s *parser.AsyncFunctionDef) error {
	local, _, err := e.modifiers(s.Decorators)
	if err != nil {
		return err
	}
	params, err := e.params(s, s.Args)
	if err != nil {
		return err
	}
	header := fmt.Sprintf("%s = coroutine.create(function(%s)", s.Name, strings.Join(params, ", "))
	if local {
		header = "local " + header
	}
	e.line(header)
	if err := e.functionBody(s.Body, params, false); err != nil {
		return err
	}
	e.line("end)")
	if local {
		e.declare(s.Name)
	}
	return nil
}

// resume emits the coroutine.resume call for await. Arguments of an awaited
// call are passed to resume after the coroutine; a method receiver goes first.
func (e *emitter) resume(a *parser.Await) (string, error) {
	c, ok := a.Value.(*parser.Call)
	if !ok {
		co, err := e.expr(a.Value)
		if err != nil {
			return "", err
		}
		return "coroutine.resume(" + co + ")", nil
	}

	p, err := e.callParts(c)
	if err != nil {
		return "", err
	}
	parts := append([]string{p.fn}, p.args...)
	if p.recv != "" {
		parts = append([]string{p.recv + "." + p.method, p.recv}, p.args...)
	}
	return "coroutine.resume(" + strings.Join(parts, ", ") + ")", nil
}
