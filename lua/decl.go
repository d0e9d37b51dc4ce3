package lua

import (
	"fmt"
	"strings"

	"pylua/parser"
	"pylua/types"
)

// assign handles t1 = t2 = ... = value. The value is bound to the first
// target; each later target is assigned from the first.
func (e *emitter) assign(s *parser.Assign) error {
	if len(s.Targets) == 0 {
		return e.unsupported(s, "assignment without target")
	}
	value, err := e.assignedValue(s.Targets[0], s.Value)
	if err != nil {
		return err
	}
	first, err := e.assignTo(s, s.Targets[0], value)
	if err != nil {
		return err
	}
	for _, t := range s.Targets[1:] {
		if _, err := e.assignTo(s, t, first); err != nil {
			return err
		}
	}
	return nil
}

// assignedValue emits the right-hand side for target. A tuple value feeds a
// multi-target as a value list and a single target as a table. Any other
// value unpacks into a multi-target with table.unpack, except calls, whose
// multiple results are assigned as they are.
func (e *emitter) assignedValue(target, value parser.Expr) (string, error) {
	switch target.(type) {
	case *parser.Tuple, *parser.List:
	default:
		return e.expr(value)
	}
	switch value.(type) {
	case *parser.Tuple:
		return e.multiExpr(value)
	case *parser.Call, *parser.Await:
		return e.expr(value)
	}
	text, err := e.expr(value)
	if err != nil {
		return "", err
	}
	return "table.unpack(" + text + ")", nil
}

// assignTo emits target = value and returns the target's text
func (e *emitter) assignTo(s parser.Stmt, target parser.Expr, value string) (string, error) {
	switch t := target.(type) {
	case *parser.Name:
		if e.declare(t.ID) {
			e.line("local " + t.ID + " = " + value)
		} else {
			e.line(t.ID + " = " + value)
		}
		return t.ID, nil

	case *parser.Attribute:
		text, err := e.expr(t)
		if err != nil {
			return "", err
		}
		e.line(text + " = " + value)
		return text, nil

	case *parser.Tuple:
		return e.assignMulti(s, t.Elts, value)

	case *parser.List:
		return e.assignMulti(s, t.Elts, value)

	default:
		return "", e.unsupported(target, "assignment target")
	}
}

// assignMulti emits a, b = value. New names are declared local first: all
// at once when every target is new, on a line of their own otherwise.
func (e *emitter) assignMulti(s parser.Stmt, elts []parser.Expr, value string) (string, error) {
	if len(elts) == 0 {
		return "", e.unsupported(s, "empty assignment target")
	}
	texts := make([]string, 0, len(elts))
	var fresh []string
	allNames := true
	for _, x := range elts {
		switch x := x.(type) {
		case *parser.Name:
			texts = append(texts, x.ID)
			if !e.scope.IsDeclared(x.ID) && !contains(fresh, x.ID) {
				fresh = append(fresh, x.ID)
			}
		case *parser.Attribute:
			allNames = false
			text, err := e.expr(x)
			if err != nil {
				return "", err
			}
			texts = append(texts, text)
		default:
			return "", e.unsupported(x, "assignment target")
		}
	}
	for _, n := range fresh {
		e.declare(n)
	}

	joined := strings.Join(texts, ", ")
	switch {
	case len(fresh) == 0:
		e.line(joined + " = " + value)
	case allNames && len(fresh) == len(texts):
		e.line("local " + joined + " = " + value)
	default:
		e.line("local " + strings.Join(fresh, ", "))
		e.line(joined + " = " + value)
	}
	return joined, nil
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

// augAssign rewrites x op= v as x = x op v
func (e *emitter) augAssign(s *parser.AugAssign) error {
	switch s.Target.(type) {
	case *parser.Name, *parser.Attribute:
	default:
		return e.unsupported(s.Target, "augmented assignment target")
	}
	target, err := e.expr(s.Target)
	if err != nil {
		return err
	}
	value, err := e.expr(&parser.BinOp{Pos: s.Pos, Left: s.Target, Op: s.Op, Right: s.Value})
	if err != nil {
		return err
	}
	e.line(target + " = " + value)
	return nil
}

func (e *emitter) annAssign(s *parser.AnnAssign) error {
	if s.Value != nil {
		value, err := e.expr(s.Value)
		if err != nil {
			return err
		}
		_, err = e.assignTo(s, s.Target, value)
		return err
	}
	switch t := s.Target.(type) {
	case *parser.Name:
		if e.declare(t.ID) {
			e.line("local " + t.ID)
		}
		return nil
	case *parser.Attribute:
		return nil
	default:
		return e.unsupported(s.Target, "annotated assignment target")
	}
}

// modifiers reads the "local" and "anonymous" decorators
func (e *emitter) modifiers(decorators []parser.Expr) (local, anonymous bool, err error) {
	for _, d := range decorators {
		n, ok := d.(*parser.Name)
		if !ok {
			return false, false, e.unsupported(d, "decorator")
		}
		switch n.ID {
		case "local":
			local = true
		case "anonymous":
			anonymous = true
		default:
			return false, false, e.unsupported(d, "decorator %q", n.ID)
		}
	}
	return local, anonymous, nil
}

// params lists positional parameter names, positional-only first
func (e *emitter) params(node parser.Node, args *parser.Arguments) ([]string, error) {
	if args == nil {
		return nil, nil
	}
	switch {
	case args.Vararg != nil:
		return nil, e.unsupported(node, "variadic parameter *%s", args.Vararg.Name)
	case args.Kwarg != nil:
		return nil, e.unsupported(node, "keyword parameter **%s", args.Kwarg.Name)
	case len(args.KwOnly) > 0:
		return nil, e.unsupported(node, "keyword-only parameter %s", args.KwOnly[0].Name)
	case len(args.Defaults) > 0 || len(args.KwDefaults) > 0:
		return nil, e.unsupported(node, "parameter default value")
	}
	names := make([]string, 0, len(args.PosOnly)+len(args.Args))
	for _, a := range args.PosOnly {
		names = append(names, a.Name)
	}
	for _, a := range args.Args {
		names = append(names, a.Name)
	}
	return names, nil
}

// functionBody emits a function body one level deeper, with the parameters
// declared. Loops and handlers of the enclosing code are not visible inside.
// A protected body is the closure of a pcall, where return cannot reach the
// enclosing function.
func (e *emitter) functionBody(body []parser.Stmt, params []string, protected bool) error {
	savedLoop, savedHandler, savedProtected := e.loop, e.handler, e.protected
	e.loop, e.handler, e.protected = nil, "", protected
	defer func() { e.loop, e.handler, e.protected = savedLoop, savedHandler, savedProtected }()

	e.depth++
	e.pushScope()
	for _, p := range params {
		e.declare(p)
	}
	err := e.emitBlock(body)
	e.popScope()
	e.depth--
	return err
}

//	def f           function f(p) ... end
//	@local          local function f(p) ... end
//	@anonymous      f = function(p) ... end
//	@local @anonymous  local f = function(p) ... end
func (e *emitter) functionDef(s *parser.FunctionDef) error {
	local, anonymous, err := e.modifiers(s.Decorators)
	if err != nil {
		return err
	}
	params, err := e.params(s, s.Args)
	if err != nil {
		return err
	}
	list := strings.Join(params, ", ")

	switch {
	case local && anonymous:
		e.line(fmt.Sprintf("local %s = function(%s)", s.Name, list))
	case local:
		// visible to its own body for recursion
		e.declare(s.Name)
		e.line(fmt.Sprintf("local function %s(%s)", s.Name, list))
	case anonymous:
		e.line(fmt.Sprintf("%s = function(%s)", s.Name, list))
	default:
		e.line(fmt.Sprintf("function %s(%s)", s.Name, list))
	}
	if err := e.functionBody(s.Body, params, false); err != nil {
		return err
	}
	e.line("end")
	if local && anonymous {
		e.declare(s.Name)
	}
	return nil
}

func (e *emitter) importStmt(s *parser.Import) error {
	for _, a := range s.Names {
		name := a.AsName
		if name == "" {
			if strings.Contains(a.Name, ".") {
				return e.unsupported(s, "dotted import %q needs an alias", a.Name)
			}
			name = a.Name
		}
		e.bind(name, "require("+quote(a.Name)+")")
	}
	return nil
}

func (e *emitter) importFrom(s *parser.ImportFrom) error {
	if s.Level > 0 {
		return e.unsupported(s, "relative import")
	}
	if s.Module == "" {
		return e.unsupported(s, "import without module")
	}
	module := "require(" + quote(s.Module) + ")"
	for _, a := range s.Names {
		if a.Name == "*" {
			e.line("for name, value in pairs(" + module + ") do")
			e.depth++
			e.line("_G[name] = value")
			e.depth--
			e.line("end")
			continue
		}
		name := a.AsName
		if name == "" {
			name = a.Name
		}
		e.bind(name, module+"."+a.Name)
	}
	return nil
}

// bind emits name = value, declaring name local when it is new
func (e *emitter) bind(name, value string) {
	if e.declare(name) {
		e.line("local " + name + " = " + value)
		return
	}
	e.line(name + " = " + value)
}

func quote(s string) string {
	return types.NewStr(s).String()
}
