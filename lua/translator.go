package lua

import (
	"fmt"
	"io"
	"strings"

	"pylua/parser"
	"pylua/scope"
	"pylua/task"
	"pylua/trace"
)

// Translator turns statement blocks into Lua text. A Translator holds only
// configuration; every Translate call starts from fresh state.
type Translator struct {
	cfg Config
}

// New creates a translator with the given configuration. The configuration is
// validated by every Translate call.
func New(cfg Config) *Translator {
	return &Translator{cfg: cfg}
}

// Output is the ordered list of emitted lines
type Output struct {
	Fragments []string
}

// String joins the fragments with newlines
func (o *Output) String() string {
	if len(o.Fragments) == 0 {
		return ""
	}
	return strings.Join(o.Fragments, "\n") + "\n"
}

// WriteTo writes the joined text to w
func (o *Output) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, o.String())
	return int64(n), err
}

// Translate emits the Lua text for block. Translation is all or nothing: on
// error no partial output is returned.
func (t *Translator) Translate(block []parser.Stmt) (*Output, error) {
	if err := t.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	e := newEmitter(t.cfg)
	if err := e.emitBlock(block); err != nil {
		return nil, err
	}

	out := &Output{}
	if t.cfg.Header {
		out.Fragments = append(out.Fragments, t.cfg.headerLines(block)...)
	}
	out.Fragments = append(out.Fragments, e.lines...)
	return out, nil
}

// Translate runs a translator with the default configuration, minus the header
func Translate(block []parser.Stmt) (string, error) {
	cfg := DefaultConfig()
	cfg.Header = false
	out, err := New(cfg).Translate(block)
	if err != nil {
		return "", err
	}
	return out.String(), nil
}

// loopState tracks the innermost loop for break and continue
type loopState struct {
	label  string // continue label; empty when the body has no continue
	parent *loopState
	level  int
}

// emitter is the per-run translation state
type emitter struct {
	cfg       Config
	scope     *scope.Scope
	comps     int          // next comprehension temporary number
	lines     []string     // output accumulator, append-only
	depth     int          // indentation depth of the next line
	frames    []task.Frame // enclosing statements, outermost first
	loop      *loopState   // nil outside loops and at function boundaries
	handler   string       // error variable of the innermost handler
	protected bool         // inside the closure of a protected try body
}

func newEmitter(cfg Config) *emitter {
	return &emitter{cfg: cfg, scope: scope.New()}
}

// line appends text at the current depth
func (e *emitter) line(text string) {
	e.lines = append(e.lines, strings.Repeat(" ", e.depth*e.cfg.IndentWidth)+text)
}

func (e *emitter) pushScope() {
	e.scope = scope.NewNested(e.scope)
}

func (e *emitter) popScope() {
	e.scope = e.scope.Parent()
}

// declare records name in the current scope. It reports whether the name
// was new, i.e. whether a local declaration must be emitted.
func (e *emitter) declare(name string) bool {
	if !e.scope.Declare(name) {
		return false
	}
	trace.Declare(name, e.scope.Depth())
	return true
}

// block emits stmts one level deeper inside a fresh scope
func (e *emitter) block(stmts []parser.Stmt) error {
	e.depth++
	e.pushScope()
	err := e.emitBlock(stmts)
	e.popScope()
	e.depth--
	return err
}

// captureExpr emits x with the output redirected. Preamble lines are returned
// separately, indented offset levels deeper than the current depth.
func (e *emitter) captureExpr(x parser.Expr, offset int) ([]string, string, error) {
	saved := e.lines
	e.lines = nil
	e.depth += offset
	text, err := e.expr(x)
	e.depth -= offset
	captured := e.lines
	e.lines = saved
	return captured, text, err
}

func (e *emitter) pushFrame(s parser.Stmt) {
	pos := s.Position()
	f := task.Frame{Kind: s.Kind(), Line: pos.Line, Column: pos.Column}
	switch s := s.(type) {
	case *parser.FunctionDef:
		f.Name = s.Name
	case *parser.AsyncFunctionDef:
		f.Name = s.Name
	}
	e.frames = append(e.frames, f)
}

func (e *emitter) popFrame() {
	e.frames = e.frames[:len(e.frames)-1]
}

// unsupported builds the error for node, recording the enclosing statements
func (e *emitter) unsupported(node parser.Node, format string, args ...any) error {
	detail := fmt.Sprintf(format, args...)
	pos := node.Position()
	path := append([]task.Frame(nil), e.frames...)
	if n := len(path); n > 0 {
		last := path[n-1]
		if last.Kind == node.Kind() && last.Line == pos.Line && last.Column == pos.Column {
			path = path[:n-1]
		}
	}
	trace.Fail(node.Kind(), pos, detail)
	return &UnsupportedConstruct{Kind: node.Kind(), Pos: pos, Detail: detail, Path: path}
}
